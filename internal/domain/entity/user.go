package entity

import "time"

// User representa un usuario del sistema. Es el dueño directo de sus
// tiendas y de sus productos (los productos referencian al usuario además
// de a la tienda).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
