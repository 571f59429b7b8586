package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/konverse/konverse-api/internal/domain"
	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda. El nombre tiene constraint único global;
// la violación se traduce a domain.ErrDuplicate.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.OwnerID, store.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene una tienda por (id, owner_id). Devuelve nil tanto si
// no existe como si pertenece a otro usuario.
func (r *StoreRepo) GetByIDAndOwner(id, ownerID string) (*entity.Store, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM stores WHERE id = $1 AND owner_id = $2`
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id, ownerID).Scan(
		&s.ID, &s.Name, &s.OwnerID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by owner: %w", err)
	}
	return &s, nil
}

// ListByOwner lista las tiendas de un usuario ordenadas por creación ascendente.
func (r *StoreRepo) ListByOwner(ownerID string) ([]*entity.Store, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM stores WHERE owner_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
