package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelatorioStore_TotaisVazio(t *testing.T) {
	relatorios := NewRelatorioStore(newTestDB(t))

	totais, err := relatorios.Totais()
	require.NoError(t, err)
	assert.Zero(t, totais.GastoTotal)
	assert.Zero(t, totais.GastoPecas)
	assert.Zero(t, totais.GastoServicos)
	assert.Zero(t, totais.CountTotal)
	assert.Zero(t, totais.CountPreventivas)
	assert.Zero(t, totais.CountCorretivas)
}

func TestRelatorioStore_TotaisContagens(t *testing.T) {
	gdb := newTestDB(t)
	equipamentos := NewEquipamentoStore(gdb)
	servicos := NewServicoStore(gdb)
	relatorios := NewRelatorioStore(gdb)

	eq, err := equipamentos.Create(EquipamentoInput{MarcaModelo: "X", LocalInstalado: "Sala"})
	require.NoError(t, err)

	for _, tipo := range []string{"Preventivo", "Preventivo", "Corretivo", "Instalação"} {
		_, err := servicos.Create(ServicoInput{
			EquipamentoID: eq.ID,
			DataExecucao:  mustDate(t, "2026-05-01"),
			TipoServico:   tipo,
		})
		require.NoError(t, err)
	}

	totais, err := relatorios.Totais()
	require.NoError(t, err)
	// Tipos fora do vocabulário contam no total mas em nenhuma categoria.
	assert.Equal(t, int64(4), totais.CountTotal)
	assert.Equal(t, int64(2), totais.CountPreventivas)
	assert.Equal(t, int64(1), totais.CountCorretivas)
}

func TestRelatorioStore_CenarioTelhado(t *testing.T) {
	gdb := newTestDB(t)
	equipamentos := NewEquipamentoStore(gdb)
	servicos := NewServicoStore(gdb)
	relatorios := NewRelatorioStore(gdb)

	eq, err := equipamentos.Create(EquipamentoInput{MarcaModelo: "LG Dual", LocalInstalado: "Telhado"})
	require.NoError(t, err)

	_, err = servicos.Create(ServicoInput{
		EquipamentoID: eq.ID,
		DataExecucao:  mustDate(t, "2026-01-10"),
		TipoServico:   "Corretivo",
		ValorServico:  100,
		ValorPecas:    20,
	})
	require.NoError(t, err)
	_, err = servicos.Create(ServicoInput{
		EquipamentoID: eq.ID,
		DataExecucao:  mustDate(t, "2026-02-10"),
		TipoServico:   "Preventivo",
		ValorServico:  50,
	})
	require.NoError(t, err)

	totais, err := relatorios.Totais()
	require.NoError(t, err)
	assert.Equal(t, 170.0, totais.GastoTotal)
	assert.Equal(t, int64(2), totais.CountTotal)

	require.NoError(t, equipamentos.Delete(eq.ID))

	totais, err = relatorios.Totais()
	require.NoError(t, err)
	assert.Zero(t, totais.GastoTotal)
	assert.Zero(t, totais.CountTotal)
}

func TestRelatorioStore_PorEquipamento(t *testing.T) {
	gdb := newTestDB(t)
	equipamentos := NewEquipamentoStore(gdb)
	servicos := NewServicoStore(gdb)
	relatorios := NewRelatorioStore(gdb)

	telhado, err := equipamentos.Create(EquipamentoInput{MarcaModelo: "A", LocalInstalado: "Telhado"})
	require.NoError(t, err)
	porao, err := equipamentos.Create(EquipamentoInput{MarcaModelo: "B", LocalInstalado: "Porão"})
	require.NoError(t, err)

	t.Run("equipamentos sem serviço aparecem com contagem zero", func(t *testing.T) {
		rows, err := relatorios.PorEquipamento()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Zero(t, row.ContagemServicos)
		}
		// Ordenado por local instalado.
		assert.Equal(t, "Porão", rows[0].LocalInstalado)
		assert.Equal(t, "Telhado", rows[1].LocalInstalado)
	})

	t.Run("contagem acompanha os serviços", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := servicos.Create(ServicoInput{
				EquipamentoID: telhado.ID,
				DataExecucao:  mustDate(t, "2026-06-01"),
				TipoServico:   "Preventivo",
			})
			require.NoError(t, err)
		}

		rows, err := relatorios.PorEquipamento()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		byID := map[uint]int64{}
		for _, row := range rows {
			byID[row.ID] = row.ContagemServicos
		}
		assert.Equal(t, int64(3), byID[telhado.ID])
		assert.Equal(t, int64(0), byID[porao.ID])
	})
}

func TestRelatorioStore_ServicosComPecas(t *testing.T) {
	gdb := newTestDB(t)
	equipamentos := NewEquipamentoStore(gdb)
	servicos := NewServicoStore(gdb)
	relatorios := NewRelatorioStore(gdb)

	eq, err := equipamentos.Create(EquipamentoInput{MarcaModelo: "X", LocalInstalado: "Sala"})
	require.NoError(t, err)

	_, err = servicos.Create(ServicoInput{
		EquipamentoID:       eq.ID,
		DataExecucao:        mustDate(t, "2026-01-01"),
		TipoServico:         "Corretivo",
		HouveReposicaoPecas: true,
		QuaisPecas:          "Filtro",
	})
	require.NoError(t, err)
	_, err = servicos.Create(ServicoInput{
		EquipamentoID: eq.ID,
		DataExecucao:  mustDate(t, "2026-02-01"),
		TipoServico:   "Preventivo",
	})
	require.NoError(t, err)
	_, err = servicos.Create(ServicoInput{
		EquipamentoID:       eq.ID,
		DataExecucao:        mustDate(t, "2026-03-01"),
		TipoServico:         "Corretivo",
		HouveReposicaoPecas: true,
		QuaisPecas:          "Compressor",
	})
	require.NoError(t, err)

	rows, err := relatorios.ServicosComPecas()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Mais recentes primeiro.
	assert.Equal(t, "Compressor", rows[0].QuaisPecas)
	assert.Equal(t, "Filtro", rows[1].QuaisPecas)
}
