package entity

import "time"

// Store representa una tienda (superficie de venta) de un usuario.
// El nombre es único a nivel global; la unicidad la garantiza la DB.
type Store struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

// StoreWithCounts tienda con conteos agregados de productos y órdenes,
// usada por el dashboard extendido.
type StoreWithCounts struct {
	Store
	ProductCount int
	OrderCount   int
}
