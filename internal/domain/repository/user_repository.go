package repository

import "github.com/konverse/konverse-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	// Create persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el email ya existe.
	Create(user *entity.User) error
	// FindByEmail busca por email. Devuelve nil (sin error) si no existe.
	FindByEmail(email string) (*entity.User, error)
	// GetByID busca por ID. Devuelve nil (sin error) si no existe.
	GetByID(id string) (*entity.User, error)
}
