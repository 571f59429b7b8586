package repository

import (
	"context"

	"github.com/konverse/konverse-api/internal/domain/entity"
)

// DashboardRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos). No se garantiza un
// snapshot transaccional entre consultas: el dashboard es una vista de
// reporte y tolera lecturas levemente desfasadas entre sí.
type DashboardRepository interface {
	// CountProducts cuenta los productos del usuario.
	CountProducts(ctx context.Context, userID string) (int, error)

	// ListProductStocks devuelve solo la columna stock de los productos del
	// usuario; la suma y el filtro de stock bajo se calculan en aplicación.
	ListProductStocks(ctx context.Context, userID string) ([]int, error)

	// CountOrders cuenta todas las órdenes del usuario.
	CountOrders(ctx context.Context, userID string) (int, error)

	// CountOrdersByStatus cuenta las órdenes del usuario con el estado dado
	// (igualdad literal de strings).
	CountOrdersByStatus(ctx context.Context, userID, status string) (int, error)

	// ListStoresWithCounts devuelve las tiendas del usuario con conteos
	// anidados de productos y órdenes.
	ListStoresWithCounts(ctx context.Context, userID string) ([]entity.StoreWithCounts, error)

	// ListProductsWithOrderCounts devuelve los productos completos del usuario
	// con su número de órdenes, ordenados por creación descendente.
	ListProductsWithOrderCounts(ctx context.Context, userID string) ([]entity.ProductWithOrderCount, error)
}
