package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/models"
)

// EquipamentoInput são os campos aceitos em create/update. Campos
// opcionais ausentes ficam nulos; update sobrescreve tudo, sem
// semântica de atualização parcial.
type EquipamentoInput struct {
	MarcaModelo       string
	LocalInstalado    string
	CapacidadeBTU     *int
	ProximaManutencao *time.Time
}

func (in EquipamentoInput) validate() error {
	if strings.TrimSpace(in.MarcaModelo) == "" || strings.TrimSpace(in.LocalInstalado) == "" {
		return ErrValidation
	}
	return nil
}

// EquipamentoStore gerencia os equipamentos.
type EquipamentoStore struct {
	db *gorm.DB
}

func NewEquipamentoStore(gdb *gorm.DB) *EquipamentoStore {
	return &EquipamentoStore{db: gdb}
}

// List retorna todos os equipamentos ordenados por local instalado.
func (s *EquipamentoStore) List() ([]models.Equipamento, error) {
	var equipamentos []models.Equipamento
	if err := s.db.Order("local_instalado").Find(&equipamentos).Error; err != nil {
		return nil, err
	}
	return equipamentos, nil
}

// Create grava um novo equipamento.
func (s *EquipamentoStore) Create(in EquipamentoInput) (*models.Equipamento, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	eq := &models.Equipamento{
		MarcaModelo:       in.MarcaModelo,
		LocalInstalado:    in.LocalInstalado,
		CapacidadeBTU:     in.CapacidadeBTU,
		ProximaManutencao: in.ProximaManutencao,
	}
	if err := s.db.Create(eq).Error; err != nil {
		return nil, err
	}
	return eq, nil
}

// Get busca um equipamento pelo id.
func (s *EquipamentoStore) Get(id uint) (*models.Equipamento, error) {
	var eq models.Equipamento
	if err := s.db.First(&eq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// GetComServicos busca um equipamento com seus serviços, mais recentes
// primeiro.
func (s *EquipamentoStore) GetComServicos(id uint) (*models.Equipamento, error) {
	var eq models.Equipamento
	err := s.db.Preload("Servicos", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("data_execucao DESC")
	}).First(&eq, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// Update sobrescreve todos os campos do equipamento.
func (s *EquipamentoStore) Update(id uint, in EquipamentoInput) (*models.Equipamento, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	eq, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	eq.MarcaModelo = in.MarcaModelo
	eq.LocalInstalado = in.LocalInstalado
	eq.CapacidadeBTU = in.CapacidadeBTU
	eq.ProximaManutencao = in.ProximaManutencao
	// Select força a escrita dos opcionais mesmo quando viram nulos.
	if err := s.db.Model(eq).Select("MarcaModelo", "LocalInstalado", "CapacidadeBTU", "ProximaManutencao").Updates(eq).Error; err != nil {
		return nil, err
	}
	return eq, nil
}

// Delete apaga o equipamento e todos os seus serviços numa única
// transação: primeiro as linhas filhas, depois a linha pai.
func (s *EquipamentoStore) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipamento_id = ?", id).Delete(&models.Servico{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Equipamento{}, id).Error
	})
}
