package store

import "errors"

var (
	// ErrNotFound indica que o registro referenciado não existe.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrDuplicateUser indica tentativa de registrar um username já usado.
	ErrDuplicateUser = errors.New("nome de utilizador já existe")
	// ErrValidation indica campo obrigatório ausente ou malformado.
	ErrValidation = errors.New("dados inválidos")
)
