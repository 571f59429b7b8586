package postgres

import (
	"context"
	"fmt"

	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto ya validado (name no vacío, price y stock no negativos).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, store_id, name, description, price, stock, category, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserID, product.StoreID, product.Name, product.Description,
		product.Price, product.Stock, product.Category, product.ImageURL, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List lista los productos de un usuario con su conteo de órdenes.
// search filtra con ILIKE sobre name O description; category con igualdad
// exacta; ambos componen con AND. Los filtros vacíos no aplican gracias al
// patrón ($n = '' OR ...). Orden: created_at DESC.
func (r *ProductRepo) List(userID string, filter repository.ProductFilter) ([]*entity.ProductWithOrderCount, error) {
	query := `
		SELECT p.id, p.user_id, p.store_id, p.name, p.description, p.price, p.stock,
		       p.category, p.image_url, p.created_at,
		       (SELECT COUNT(*) FROM orders o
		        JOIN order_products op ON op.order_id = o.id
		        WHERE op.product_id = p.id) AS order_count
		FROM products p
		WHERE p.user_id = $1
		  AND ($2 = '' OR p.name ILIKE '%' || $2 || '%' OR p.description ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR p.category = $3)
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, filter.Search, filter.Category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithOrderCount
	for rows.Next() {
		var p entity.ProductWithOrderCount
		if err := rows.Scan(&p.ID, &p.UserID, &p.StoreID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.Category, &p.ImageURL, &p.CreatedAt, &p.OrderCount); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteOwned elimina el producto en una sola sentencia condicionada por
// (id, user_id): no hay ventana entre verificar propiedad y borrar. Devuelve
// false si no se eliminó fila alguna.
func (r *ProductRepo) DeleteOwned(id, userID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
