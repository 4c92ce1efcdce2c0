package services

import (
	"context"

	"github.com/desprit/geoparse/internal/geo"
)

// CacheStats is the common counter snapshot every backend reports.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService is the parse-result cache contract. Keys are normalized
// lowercased inputs; values are finished parse results. A miss is not an
// error: Get reports it through the bool.
type ICacheService interface {
	Get(ctx context.Context, key string) (*geo.Location, bool, error)
	Set(ctx context.Context, key string, loc *geo.Location) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Exists(ctx context.Context, key string) (bool, error)
	GetStats(ctx context.Context) (*CacheStats, error)
	Close() error
}

func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
