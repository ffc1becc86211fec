package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/example/manutencao-ar/internal/models"
)

// ErrSessionNotFound indica sessão ausente, expirada ou revogada.
var ErrSessionNotFound = errors.New("sessão não encontrada")

// SessionStore gerencia as sessões persistidas no banco.
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore cria um SessionStore sobre a conexão dada.
func NewSessionStore(gdb *gorm.DB) *SessionStore {
	return &SessionStore{db: gdb}
}

// Create abre uma nova sessão para o usuário com a validade dada.
func (s *SessionStore) Create(userID uint, ttl time.Duration) (*models.Session, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	sess := &models.Session{
		ID:        hex.EncodeToString(raw),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// Get retorna a sessão viva com o id dado.
func (s *SessionStore) Get(id string) (*models.Session, error) {
	var sess models.Session
	if err := s.db.First(&sess, "id = ?", id).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.db.Delete(&models.Session{}, "id = ?", id).Error
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

// Delete revoga a sessão (logout).
func (s *SessionStore) Delete(id string) error {
	return s.db.Delete(&models.Session{}, "id = ?", id).Error
}
