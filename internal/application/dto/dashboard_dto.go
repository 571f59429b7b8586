package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/data.
// Todos los campos están acotados a los datos del usuario autenticado; las
// consultas no comparten snapshot transaccional (vista de reporte).
type DashboardSummaryDTO struct {
	TotalProducts     int `json:"totalProducts"`
	TotalUnitsInStock int `json:"totalUnitsInStock"`
	LowStockItems     int `json:"lowStockItems"` // productos con stock < 5
	TotalOrders       int `json:"totalOrders"`
	PendingOrders     int `json:"pendingOrders"` // status == "pending"

	// Desglose extendido para la vista completa del dashboard
	UserStores         []DashboardStoreDTO `json:"userStores"`
	ProductsWithOrders []ProductListItem   `json:"productsWithOrders"`
}

// DashboardStoreDTO tienda con conteos anidados para el widget de tiendas.
type DashboardStoreDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int       `json:"productCount"`
	OrderCount   int       `json:"orderCount"`
}
