package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard del usuario.
// Cada método es una consulta independiente; el use case las lanza en
// paralelo, por lo que este adaptador usa el pool directamente (las
// conexiones se reparten entre goroutines).
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountProducts cuenta los productos del usuario.
func (r *DashboardRepo) CountProducts(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// ListProductStocks devuelve solo la columna stock de los productos del usuario.
// La suma y el conteo de stock bajo se hacen en el use case, una sola pasada.
func (r *DashboardRepo) ListProductStocks(ctx context.Context, userID string) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT stock FROM products WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list product stocks: %w", err)
	}
	defer rows.Close()
	var stocks []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

// CountOrders cuenta todas las órdenes del usuario.
func (r *DashboardRepo) CountOrders(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// CountOrdersByStatus cuenta las órdenes del usuario con el estado dado (igualdad literal).
func (r *DashboardRepo) CountOrdersByStatus(ctx context.Context, userID, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = $2`, userID, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// ListStoresWithCounts devuelve las tiendas del usuario con conteos anidados
// de productos y órdenes, ordenadas por creación ascendente.
func (r *DashboardRepo) ListStoresWithCounts(ctx context.Context, userID string) ([]entity.StoreWithCounts, error) {
	const query = `
		SELECT s.id, s.name, s.owner_id, s.created_at,
		       (SELECT COUNT(*) FROM products p WHERE p.store_id = s.id) AS product_count,
		       (SELECT COUNT(*) FROM orders o WHERE o.store_id = s.id)   AS order_count
		FROM stores s
		WHERE s.owner_id = $1
		ORDER BY s.created_at ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stores with counts: %w", err)
	}
	defer rows.Close()
	var list []entity.StoreWithCounts
	for rows.Next() {
		var s entity.StoreWithCounts
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerID, &s.CreatedAt, &s.ProductCount, &s.OrderCount); err != nil {
			return nil, fmt.Errorf("scan store with counts: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListProductsWithOrderCounts devuelve los productos completos del usuario con
// su número de órdenes, ordenados por creación descendente.
func (r *DashboardRepo) ListProductsWithOrderCounts(ctx context.Context, userID string) ([]entity.ProductWithOrderCount, error) {
	const query = `
		SELECT p.id, p.user_id, p.store_id, p.name, p.description, p.price, p.stock,
		       p.category, p.image_url, p.created_at,
		       (SELECT COUNT(*) FROM orders o
		        JOIN order_products op ON op.order_id = o.id
		        WHERE op.product_id = p.id) AS order_count
		FROM products p
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products with orders: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductWithOrderCount
	for rows.Next() {
		var p entity.ProductWithOrderCount
		if err := rows.Scan(&p.ID, &p.UserID, &p.StoreID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.OrderCount); err != nil {
			return nil, fmt.Errorf("scan product with orders: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
