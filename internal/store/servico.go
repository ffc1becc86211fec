package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/models"
)

// ServicoInput são os campos aceitos em create/update de um serviço.
type ServicoInput struct {
	EquipamentoID       uint
	DataExecucao        time.Time
	TipoServico         string
	PrestadorServico    string
	Descricao           string
	HouveReposicaoPecas bool
	QuaisPecas          string
	ValorServico        float64
	ValorPecas          float64
}

func (in ServicoInput) validate() error {
	if in.DataExecucao.IsZero() || strings.TrimSpace(in.TipoServico) == "" {
		return ErrValidation
	}
	return nil
}

// ServicoStore gerencia os serviços de manutenção.
type ServicoStore struct {
	db *gorm.DB
}

func NewServicoStore(gdb *gorm.DB) *ServicoStore {
	return &ServicoStore{db: gdb}
}

// Create grava um novo serviço. ValorTotal é calculado aqui e
// persistido.
func (s *ServicoStore) Create(in ServicoInput) (*models.Servico, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var eq models.Equipamento
	if err := s.db.First(&eq, in.EquipamentoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	sv := &models.Servico{
		EquipamentoID:       in.EquipamentoID,
		DataExecucao:        in.DataExecucao,
		TipoServico:         in.TipoServico,
		PrestadorServico:    in.PrestadorServico,
		Descricao:           in.Descricao,
		HouveReposicaoPecas: in.HouveReposicaoPecas,
		QuaisPecas:          in.QuaisPecas,
		ValorServico:        in.ValorServico,
		ValorPecas:          in.ValorPecas,
		ValorTotal:          in.ValorServico + in.ValorPecas,
	}
	if err := s.db.Create(sv).Error; err != nil {
		return nil, err
	}
	return sv, nil
}

// Get busca um serviço pelo id.
func (s *ServicoStore) Get(id uint) (*models.Servico, error) {
	var sv models.Servico
	if err := s.db.First(&sv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sv, nil
}

// Update sobrescreve os campos do serviço e recalcula ValorTotal a
// partir dos valores novos. O equipamento dono não muda.
func (s *ServicoStore) Update(id uint, in ServicoInput) (*models.Servico, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	sv, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	sv.DataExecucao = in.DataExecucao
	sv.TipoServico = in.TipoServico
	sv.PrestadorServico = in.PrestadorServico
	sv.Descricao = in.Descricao
	sv.HouveReposicaoPecas = in.HouveReposicaoPecas
	sv.QuaisPecas = in.QuaisPecas
	sv.ValorServico = in.ValorServico
	sv.ValorPecas = in.ValorPecas
	sv.ValorTotal = in.ValorServico + in.ValorPecas
	if err := s.db.Model(sv).Select(
		"DataExecucao", "TipoServico", "PrestadorServico", "Descricao",
		"HouveReposicaoPecas", "QuaisPecas", "ValorServico", "ValorPecas", "ValorTotal",
	).Updates(sv).Error; err != nil {
		return nil, err
	}
	return sv, nil
}

// Delete apaga um único serviço (folha, sem cascata).
func (s *ServicoStore) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Servico{}, id).Error
}
