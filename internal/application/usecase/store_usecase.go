package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/konverse/konverse-api/internal/application/analytics"
	"github.com/konverse/konverse-api/internal/application/dto"
	"github.com/konverse/konverse-api/internal/domain"
	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

// StoreUseCase casos de uso para tiendas: creación y listados.
// Las tiendas no tienen ruta de borrado.
type StoreUseCase struct {
	repo  repository.StoreRepository
	cache analytics.SummaryCache // opcional; se invalida al crear una tienda
}

// NewStoreUseCase construye el caso de uso. cache puede ser nil.
func NewStoreUseCase(repo repository.StoreRepository, cache analytics.SummaryCache) *StoreUseCase {
	return &StoreUseCase{repo: repo, cache: cache}
}

// Create crea una tienda para el usuario. El nombre se recorta antes de
// validar; devuelve ErrInvalidInput si queda vacío y ErrDuplicate si el
// nombre ya está tomado (único a nivel global).
func (uc *StoreUseCase) Create(ctx context.Context, userID string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, userID)
	}
	return toStoreResponse(store), nil
}

// List lista las tiendas del usuario ordenadas por creación ascendente.
func (uc *StoreUseCase) List(userID string) ([]dto.StoreResponse, error) {
	stores, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *toStoreResponse(s))
	}
	return out, nil
}

// ListSummaries devuelve la versión mínima {id, name} de las tiendas del usuario.
func (uc *StoreUseCase) ListSummaries(userID string) ([]dto.StoreSummary, error) {
	stores, err := uc.repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreSummary, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreSummary{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}
