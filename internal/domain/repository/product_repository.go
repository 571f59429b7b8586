package repository

import "github.com/konverse/konverse-api/internal/domain/entity"

// ProductFilter filtros opcionales del listado de productos.
// Search vacío = sin filtro de texto; Category vacío = sin filtro de categoría.
type ProductFilter struct {
	Search   string // substring case-insensitive sobre name O description
	Category string // igualdad exacta
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	// Create persiste un nuevo producto ya validado.
	Create(product *entity.Product) error
	// List lista los productos de un usuario con su conteo de órdenes,
	// aplicando los filtros con AND entre sí, ordenados por creación descendente.
	List(userID string, filter ProductFilter) ([]*entity.ProductWithOrderCount, error)
	// DeleteOwned elimina el producto solo si (id, user_id) coinciden, en una
	// sola sentencia condicional. Devuelve false si no se eliminó nada
	// (no existe o pertenece a otro usuario).
	DeleteOwned(id, userID string) (bool, error)
}
