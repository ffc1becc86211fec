package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/config"
	"github.com/example/manutencao-ar/internal/models"
)

// Init abre a conexão conforme o driver configurado. O padrão é um
// arquivo SQLite local; PostgreSQL fica disponível via DB_DRIVER.
func Init(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.DBDriver)
	}
}

// AutoMigrate executa as migrações automáticas dos modelos principais.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Equipamento{},
		&models.Servico{},
		&models.Session{},
	)
}

// Close fecha a conexão com o banco (usado em testes / shutdown).
func Close(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	sqlDB, err := gdb.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
