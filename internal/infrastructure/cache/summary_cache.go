// Package cache implementa el caché Redis del resumen del dashboard.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/konverse/konverse-api/internal/application/analytics"
	"github.com/konverse/konverse-api/internal/application/dto"
)

const summaryKeyPrefix = "dashboard:summary:"

var _ analytics.SummaryCache = (*RedisSummaryCache)(nil)

// RedisSummaryCache guarda el DashboardSummaryDTO serializado como JSON bajo
// una clave por usuario, con TTL corto. La invalidación explícita en
// creates/deletes acota la ventana de datos desfasados; el TTL cubre las
// escrituras que ocurren fuera de esta API (órdenes).
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache construye el adaptador sobre un cliente ya conectado.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

// GetSummary devuelve el resumen cacheado del usuario y true si había entrada.
func (c *RedisSummaryCache) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, bool, error) {
	raw, err := c.client.Get(ctx, summaryKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal(raw, &summary); err != nil {
		// entrada corrupta: tratarla como miss y dejar que el TTL la limpie
		return nil, false, nil
	}
	return &summary, true, nil
}

// SetSummary guarda el resumen del usuario con el TTL configurado.
func (c *RedisSummaryCache) SetSummary(ctx context.Context, userID string, summary *dto.DashboardSummaryDTO) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, summaryKeyPrefix+userID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate elimina la entrada del usuario.
func (c *RedisSummaryCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, summaryKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}
