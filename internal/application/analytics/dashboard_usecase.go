// Package analytics contiene el caso de uso del Dashboard: los agregados por
// usuario que alimentan la vista principal (totales de productos, stock,
// órdenes y el desglose por tienda).
package analytics

import (
	"context"
	"fmt"

	"github.com/konverse/konverse-api/internal/application/dto"
	"github.com/konverse/konverse-api/internal/domain/entity"
	"github.com/konverse/konverse-api/internal/domain/repository"
)

// DashboardUseCase calcula el resumen del dashboard para un usuario.
//
// Fuente de datos: DashboardRepository (consultas read-only). Las consultas
// independientes se lanzan en paralelo y se combinan al final; no hay
// snapshot transaccional entre ellas (es una vista de reporte, no un ledger).
//
// El userID debe venir de la sesión ya resuelta por el middleware, nunca de
// un parámetro del request.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache SummaryCache // opcional; nil = sin caché
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(repo repository.DashboardRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

// GetSummary construye el DashboardSummaryDTO del usuario indicado.
//
// Cinco consultas en paralelo:
//  1. CountProducts               → TotalProducts
//  2. ListProductStocks           → TotalUnitsInStock + LowStockItems (reducción en memoria)
//  3. CountOrders                 → TotalOrders
//  4. CountOrdersByStatus pending → PendingOrders
//  5. ListStoresWithCounts + ListProductsWithOrderCounts → desglose extendido
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetSummary(ctx, userID); err == nil && ok {
			return cached, nil
		}
		// un fallo del caché no interrumpe: se recalcula contra la DB
	}

	type countResult struct {
		n   int
		err error
	}
	type stocksResult struct {
		stocks []int
		err    error
	}
	type storesResult struct {
		stores []entity.StoreWithCounts
		err    error
	}
	type productsResult struct {
		products []entity.ProductWithOrderCount
		err      error
	}

	productCountCh := make(chan countResult, 1)
	stocksCh := make(chan stocksResult, 1)
	orderCountCh := make(chan countResult, 1)
	pendingCountCh := make(chan countResult, 1)
	storesCh := make(chan storesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		n, err := uc.repo.CountProducts(ctx, userID)
		productCountCh <- countResult{n, err}
	}()
	go func() {
		stocks, err := uc.repo.ListProductStocks(ctx, userID)
		stocksCh <- stocksResult{stocks, err}
	}()
	go func() {
		n, err := uc.repo.CountOrders(ctx, userID)
		orderCountCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountOrdersByStatus(ctx, userID, entity.OrderStatusPending)
		pendingCountCh <- countResult{n, err}
	}()
	go func() {
		stores, err := uc.repo.ListStoresWithCounts(ctx, userID)
		storesCh <- storesResult{stores, err}
	}()
	go func() {
		products, err := uc.repo.ListProductsWithOrderCounts(ctx, userID)
		productsCh <- productsResult{products, err}
	}()

	productCount := <-productCountCh
	stocks := <-stocksCh
	orderCount := <-orderCountCh
	pendingCount := <-pendingCountCh
	stores := <-storesCh
	products := <-productsCh

	if productCount.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", productCount.err)
	}
	if stocks.err != nil {
		return nil, fmt.Errorf("dashboard: stocks de productos: %w", stocks.err)
	}
	if orderCount.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de órdenes: %w", orderCount.err)
	}
	if pendingCount.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes pendientes: %w", pendingCount.err)
	}
	if stores.err != nil {
		return nil, fmt.Errorf("dashboard: tiendas del usuario: %w", stores.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos con órdenes: %w", products.err)
	}

	// Reducción en memoria: una sola pasada sobre los stocks
	totalUnits := 0
	lowStock := 0
	for _, s := range stocks.stocks {
		totalUnits += s
		if s < entity.LowStockThreshold {
			lowStock++
		}
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:      productCount.n,
		TotalUnitsInStock:  totalUnits,
		LowStockItems:      lowStock,
		TotalOrders:        orderCount.n,
		PendingOrders:      pendingCount.n,
		UserStores:         toDashboardStores(stores.stores),
		ProductsWithOrders: toProductListItems(products.products),
	}

	if uc.cache != nil {
		// best effort: el resumen sigue siendo válido aunque no se pueda cachear
		_ = uc.cache.SetSummary(ctx, userID, summary)
	}

	return summary, nil
}

func toDashboardStores(stores []entity.StoreWithCounts) []dto.DashboardStoreDTO {
	out := make([]dto.DashboardStoreDTO, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.DashboardStoreDTO{
			ID:           s.ID,
			Name:         s.Name,
			CreatedAt:    s.CreatedAt,
			ProductCount: s.ProductCount,
			OrderCount:   s.OrderCount,
		})
	}
	return out
}

func toProductListItems(products []entity.ProductWithOrderCount) []dto.ProductListItem {
	out := make([]dto.ProductListItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductListItem{
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
	return out
}
