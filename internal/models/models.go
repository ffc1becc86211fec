package models

import "time"

// User representa um usuário local autenticado por senha (bcrypt).
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string    `gorm:"size:150;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Equipamento representa uma unidade de ar-condicionado em manutenção.
type Equipamento struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	MarcaModelo       string     `gorm:"size:200;not null" json:"marcaModelo"`
	CapacidadeBTU     *int       `json:"capacidadeBtu"`
	LocalInstalado    string     `gorm:"size:200;not null" json:"localInstalado"`
	ProximaManutencao *time.Time `json:"proximaManutencao"`
	Servicos          []Servico  `gorm:"foreignKey:EquipamentoID" json:"servicos,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Servico representa um evento de manutenção executado num equipamento.
// ValorTotal é calculado na escrita (ValorServico + ValorPecas) e
// persistido; nunca é derivado na leitura.
type Servico struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	EquipamentoID       uint      `gorm:"not null;index" json:"equipamentoId"`
	DataExecucao        time.Time `gorm:"not null" json:"dataExecucao"`
	Descricao           string    `gorm:"type:text" json:"descricao"`
	TipoServico         string    `gorm:"size:100;not null" json:"tipoServico"` // Preventivo, Corretivo
	PrestadorServico    string    `gorm:"size:200" json:"prestadorServico"`
	HouveReposicaoPecas bool      `json:"houveReposicaoPecas"`
	QuaisPecas          string    `gorm:"type:text" json:"quaisPecas"`
	ValorServico        float64   `json:"valorServico"`
	ValorPecas          float64   `json:"valorPecas"`
	ValorTotal          float64   `json:"valorTotal"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Session é o estado de login guardado no servidor; o cookie carrega
// apenas um token assinado apontando para a linha.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
