package analytics

import (
	"context"

	"github.com/konverse/konverse-api/internal/application/dto"
)

// SummaryCache caché opcional del resumen del dashboard, con TTL corto.
// Las implementaciones deben ser seguras para uso concurrente. Un error del
// caché nunca debe tumbar la petición: los llamadores lo registran y siguen
// contra la DB.
type SummaryCache interface {
	// GetSummary devuelve el resumen cacheado del usuario y true si había entrada.
	GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, bool, error)
	// SetSummary guarda el resumen del usuario con el TTL configurado.
	SetSummary(ctx context.Context, userID string, summary *dto.DashboardSummaryDTO) error
	// Invalidate elimina la entrada del usuario (tras crear/eliminar productos o tiendas).
	Invalidate(ctx context.Context, userID string) error
}
