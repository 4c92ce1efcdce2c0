package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/desprit/geoparse/internal/geo"
)

// MemoryCacheService is the default single-process cache: a bounded LRU
// with per-entry expiry. Zero external dependencies, lost on restart.
type MemoryCacheService struct {
	lru    *expirable.LRU[string, *geo.Location]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoryCacheService builds an in-memory cache holding at most maxItems
// entries for at most ttl each.
func NewMemoryCacheService(maxItems int, ttl time.Duration) *MemoryCacheService {
	return &MemoryCacheService{
		lru: expirable.NewLRU[string, *geo.Location](maxItems, nil, ttl),
	}
}

func (m *MemoryCacheService) Get(ctx context.Context, key string) (*geo.Location, bool, error) {
	if loc, ok := m.lru.Get(key); ok {
		m.hits.Add(1)
		return loc, true, nil
	}
	m.misses.Add(1)
	return nil, false, nil
}

func (m *MemoryCacheService) Set(ctx context.Context, key string, loc *geo.Location) error {
	m.lru.Add(key, loc)
	return nil
}

func (m *MemoryCacheService) Delete(ctx context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *MemoryCacheService) Clear(ctx context.Context) error {
	m.lru.Purge()
	return nil
}

func (m *MemoryCacheService) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.lru.Peek(key)
	return ok, nil
}

func (m *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits, misses := m.hits.Load(), m.misses.Load()
	return &CacheStats{
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(m.lru.Len()),
	}, nil
}

func (m *MemoryCacheService) Close() error {
	return nil
}
