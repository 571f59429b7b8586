package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/konverse/konverse-api/internal/application/analytics"
	"github.com/konverse/konverse-api/internal/application/dto"
	"github.com/konverse/konverse-api/internal/domain"
	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// Toda operación recibe el userID resuelto de la sesión; nunca se confía en
// un id de usuario que venga del request.
type ProductUseCase struct {
	repo      repository.ProductRepository
	storeRepo repository.StoreRepository
	cache     analytics.SummaryCache // opcional; se invalida en creates/deletes
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, storeRepo repository.StoreRepository, cache analytics.SummaryCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, storeRepo: storeRepo, cache: cache}
}

// Create crea un producto en la tienda indicada.
//
// Validación: name no vacío, price >= 0, stock >= 0, storeId presente
// (ErrInvalidInput). Guard de propiedad: la tienda se re-consulta por
// (id, owner_id) antes de escribir; si no aparece —no existe o es de otro
// usuario— se devuelve ErrForbidden sin distinguir los casos.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.StoreID == "" || in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByIDAndOwner(in.StoreID, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrForbidden
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		UserID:      userID,
		StoreID:     store.ID,
		Name:        in.Name,
		Description: in.Description, // ausente -> string vacío
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category, // ausente -> NULL
		ImageURL:    in.ImageURL, // ausente -> NULL
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, userID)
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario con su conteo de órdenes, aplicando
// los filtros opcionales de búsqueda (substring sobre name O description,
// case-insensitive) y categoría (igualdad exacta), combinados con AND.
func (uc *ProductUseCase) List(userID, search, category string) ([]dto.ProductListItem, error) {
	list, err := uc.repo.List(userID, repository.ProductFilter{Search: search, Category: category})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListItem, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
			ImageURL:    p.ImageURL,
			CreatedAt:   p.CreatedAt,
			OrderCount:  p.OrderCount,
		})
	}
	return items, nil
}

// Delete elimina el producto del usuario en una sola sentencia condicional
// (id + user_id), sin ventana entre verificación y borrado. Si no se eliminó
// nada el producto no existe o es ajeno: ErrForbidden en ambos casos.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, productID string) error {
	deleted, err := uc.repo.DeleteOwned(productID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrForbidden
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, userID)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}
