package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral fijo por debajo del cual un producto se considera
// con stock bajo en el dashboard.
const LowStockThreshold = 5

// Product representa un producto publicado en una tienda.
// Pertenece a un usuario y a una tienda; el user_id del producto siempre
// coincide con el owner_id de la tienda (se verifica al crear).
type Product struct {
	ID          string
	UserID      string
	StoreID     string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Stock       int             // unidades disponibles, nunca negativo
	Category    *string         // opcional
	ImageURL    *string         // opcional
	CreatedAt   time.Time
}

// IsLowStock indica si el producto está por debajo del umbral de stock bajo.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductWithOrderCount producto con su número de órdenes asociadas,
// usado en listados y en el dashboard extendido.
type ProductWithOrderCount struct {
	Product
	OrderCount int
}
