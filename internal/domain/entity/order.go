package entity

import "time"

// Estados conocidos de una orden. El dashboard solo filtra por "pending"
// (comparación literal); otros valores cuentan como totales.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de compra. En esta API las órdenes son de solo
// lectura: su creación ocurre fuera de este servicio y aquí únicamente se
// cuentan para el dashboard.
type Order struct {
	ID        string
	UserID    string
	StoreID   string
	Status    string
	CreatedAt time.Time
}
