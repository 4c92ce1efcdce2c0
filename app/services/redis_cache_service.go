package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/geo"
)

const redisKeyPrefix = "geoparse:"

// RedisCacheService shares parse results across instances through Redis.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheService connects to Redis and verifies the connection with a
// short ping before returning.
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: redisKeyPrefix,
		ttl:    ttl,
	}, nil
}

func (r *RedisCacheService) Get(ctx context.Context, key string) (*geo.Location, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		r.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	var loc geo.Location
	if err := json.Unmarshal([]byte(val), &loc); err != nil {
		r.logger.Error("redis cache entry corrupt", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	r.hits.Add(1)
	return &loc, true, nil
}

func (r *RedisCacheService) Set(ctx context.Context, key string, loc *geo.Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		r.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (r *RedisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisCacheService) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (r *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	var items int64
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		items++
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	hits, misses := r.hits.Load(), r.misses.Load()
	return &CacheStats{
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: items,
	}, nil
}

func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
