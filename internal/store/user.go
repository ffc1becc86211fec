package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/models"
)

// UserStore gerencia os usuários locais.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(gdb *gorm.DB) *UserStore {
	return &UserStore{db: gdb}
}

// Create registra um novo usuário. Devolve ErrDuplicateUser se o
// username já estiver em uso.
func (s *UserStore) Create(username, passwordHash string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return nil, ErrValidation
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: passwordHash}
	if err := s.db.Create(user).Error; err != nil {
		// Corrida entre o check e o insert: o índice único decide.
		return nil, ErrDuplicateUser
	}
	return user, nil
}

// FindByUsername busca um usuário pelo nome.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
