package repository

import "github.com/konverse/konverse-api/internal/domain/entity"

// StoreRepository puerto de persistencia para tiendas.
type StoreRepository interface {
	// Create persiste una nueva tienda. Devuelve domain.ErrDuplicate si el
	// nombre ya está tomado (constraint único en la DB).
	Create(store *entity.Store) error
	// GetByIDAndOwner busca una tienda por (id, owner_id). Devuelve nil si la
	// tienda no existe o no pertenece a ese usuario; los dos casos no se
	// distinguen a propósito.
	GetByIDAndOwner(id, ownerID string) (*entity.Store, error)
	// ListByOwner lista las tiendas de un usuario ordenadas por creación ascendente.
	ListByOwner(ownerID string) ([]*entity.Store, error)
}
