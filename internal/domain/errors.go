package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrForbidden cubre tanto "el recurso no existe" como "no te pertenece":
	// no se distinguen para no confirmar la existencia de recursos ajenos.
	ErrForbidden = errors.New("acceso denegado")
)
