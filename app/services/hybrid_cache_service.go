package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/geo"
)

// HybridCacheService layers Redis (fast, volatile) over MongoDB
// (persistent). Reads fall through to Mongo and promote the hit back into
// Redis in the background; writes go to both.
type HybridCacheService struct {
	redisCache *RedisCacheService
	mongoCache *MongoCacheService
	logger     *zap.Logger
}

func NewHybridCacheService(redisCache *RedisCacheService, mongoCache *MongoCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		redisCache: redisCache,
		mongoCache: mongoCache,
		logger:     logger,
	}
}

func (h *HybridCacheService) Get(ctx context.Context, key string) (*geo.Location, bool, error) {
	loc, found, err := h.redisCache.Get(ctx, key)
	if err != nil {
		h.logger.Warn("redis tier failed, falling back to mongo", zap.Error(err))
	} else if found {
		return loc, true, nil
	}

	loc, found, err = h.mongoCache.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	// Promote the persistent hit so the next read stays in Redis.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.redisCache.Set(bgCtx, key, loc); err != nil {
			h.logger.Warn("mongo->redis promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()
	return loc, true, nil
}

func (h *HybridCacheService) Set(ctx context.Context, key string, loc *geo.Location) error {
	errCh := make(chan error, 2)
	go func() { errCh <- h.redisCache.Set(ctx, key, loc) }()
	go func() { errCh <- h.mongoCache.Set(ctx, key, loc) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("hybrid cache set: %v", errs)
	}
	return nil
}

func (h *HybridCacheService) Delete(ctx context.Context, key string) error {
	redisErr := h.redisCache.Delete(ctx, key)
	mongoErr := h.mongoCache.Delete(ctx, key)
	if redisErr != nil {
		return redisErr
	}
	return mongoErr
}

func (h *HybridCacheService) Clear(ctx context.Context) error {
	if err := h.redisCache.Clear(ctx); err != nil {
		return err
	}
	return h.mongoCache.Clear(ctx)
}

func (h *HybridCacheService) Exists(ctx context.Context, key string) (bool, error) {
	if ok, err := h.redisCache.Exists(ctx, key); err == nil && ok {
		return true, nil
	}
	return h.mongoCache.Exists(ctx, key)
}

// GetStats reports the persistent tier's item count with hit counters
// aggregated across both tiers.
func (h *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	redisStats, err := h.redisCache.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	mongoStats, err := h.mongoCache.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	hits := redisStats.TotalHits + mongoStats.TotalHits
	misses := mongoStats.TotalMiss // a redis miss that mongo serves is not a miss
	return &CacheStats{
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: mongoStats.TotalItems,
	}, nil
}

func (h *HybridCacheService) Close() error {
	return h.redisCache.Close()
}
