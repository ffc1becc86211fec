package store

import (
	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/models"
)

// Totais agrega os custos e contagens de todos os serviços. Somas
// sobre tabela vazia valem 0, nunca nulo.
type Totais struct {
	GastoTotal       float64
	GastoPecas       float64
	GastoServicos    float64
	CountTotal       int64
	CountPreventivas int64
	CountCorretivas  int64
}

// EquipamentoContagem é uma linha do relatório por equipamento.
// Equipamentos sem serviço aparecem com contagem 0.
type EquipamentoContagem struct {
	ID               uint
	MarcaModelo      string
	LocalInstalado   string
	ContagemServicos int64
}

// RelatorioStore executa as consultas agregadas da página de
// relatórios. Somente leitura.
type RelatorioStore struct {
	db *gorm.DB
}

func NewRelatorioStore(gdb *gorm.DB) *RelatorioStore {
	return &RelatorioStore{db: gdb}
}

// Totais calcula os somatórios e contagens sobre todo o conjunto.
func (s *RelatorioStore) Totais() (*Totais, error) {
	var t Totais
	err := s.db.Model(&models.Servico{}).
		Select("COALESCE(SUM(valor_total), 0) AS gasto_total, COALESCE(SUM(valor_pecas), 0) AS gasto_pecas, COALESCE(SUM(valor_servico), 0) AS gasto_servicos").
		Scan(&t).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Servico{}).Count(&t.CountTotal).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Servico{}).Where("tipo_servico = ?", "Preventivo").Count(&t.CountPreventivas).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Servico{}).Where("tipo_servico = ?", "Corretivo").Count(&t.CountCorretivas).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// PorEquipamento lista cada equipamento com a contagem dos seus
// serviços (LEFT JOIN: zero aparece como 0), ordenado por local.
func (s *RelatorioStore) PorEquipamento() ([]EquipamentoContagem, error) {
	var rows []EquipamentoContagem
	err := s.db.Model(&models.Equipamento{}).
		Select("equipamentos.id, equipamentos.marca_modelo, equipamentos.local_instalado, COUNT(servicos.id) AS contagem_servicos").
		Joins("LEFT JOIN servicos ON servicos.equipamento_id = equipamentos.id").
		Group("equipamentos.id, equipamentos.marca_modelo, equipamentos.local_instalado").
		Order("equipamentos.local_instalado").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ServicosComPecas lista os serviços com reposição de peças, mais
// recentes primeiro.
func (s *RelatorioStore) ServicosComPecas() ([]models.Servico, error) {
	var servicos []models.Servico
	err := s.db.Where("houve_reposicao_pecas = ?", true).
		Order("data_execucao DESC").
		Find(&servicos).Error
	if err != nil {
		return nil, err
	}
	return servicos, nil
}
