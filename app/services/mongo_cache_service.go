package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/geo"
)

// cacheDocument is the persisted shape of one cache entry.
type cacheDocument struct {
	Key       string       `bson:"_id"`
	Location  geo.Location `bson:"location"`
	CreatedAt time.Time    `bson:"created_at"`
}

// MongoCacheService is the persistent cache tier. Entries survive restarts
// and expire through a TTL index on created_at.
type MongoCacheService struct {
	collection *mongo.Collection
	logger     *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMongoCacheService prepares the cache collection and its indexes.
func NewMongoCacheService(db *mongo.Database, ttl time.Duration, logger *zap.Logger) (*MongoCacheService, error) {
	collection := db.Collection("location_cache")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	if err != nil {
		logger.Warn("could not create ttl index on location_cache", zap.Error(err))
	}

	return &MongoCacheService{collection: collection, logger: logger}, nil
}

func (m *MongoCacheService) Get(ctx context.Context, key string) (*geo.Location, bool, error) {
	var doc cacheDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		m.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		m.logger.Error("mongo get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}
	m.hits.Add(1)
	return &doc.Location, true, nil
}

func (m *MongoCacheService) Set(ctx context.Context, key string, loc *geo.Location) error {
	doc := cacheDocument{Key: key, Location: *loc, CreatedAt: time.Now().UTC()}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set: %w", err)
	}
	return nil
}

func (m *MongoCacheService) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (m *MongoCacheService) Clear(ctx context.Context) error {
	_, err := m.collection.DeleteMany(ctx, bson.M{})
	return err
}

func (m *MongoCacheService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := m.collection.CountDocuments(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *MongoCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	items, err := m.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, err
	}
	hits, misses := m.hits.Load(), m.misses.Load()
	return &CacheStats{
		HitRate:    hitRate(hits, misses),
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: items,
	}, nil
}

// Close is a no-op: the mongo client is owned by the caller.
func (m *MongoCacheService) Close() error {
	return nil
}
