package dto

import "time"

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreSummary versión mínima usada por GET /api/user/:userId/stores.
type StoreSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
