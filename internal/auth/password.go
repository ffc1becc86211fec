package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials é devolvido tanto para usuário inexistente
// quanto para senha errada, sem distinguir os dois casos.
var ErrInvalidCredentials = errors.New("credenciais inválidas")

// HashPassword gera o hash bcrypt de uma senha.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifica uma senha contra o hash armazenado.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
