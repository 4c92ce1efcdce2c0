package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/gazetteer"
	"github.com/desprit/geoparse/internal/parser"
	"github.com/desprit/geoparse/internal/suggest"
)

func newTestService(t *testing.T) *LocationService {
	t.Helper()
	gaz := gazetteer.MustLoad()
	return NewLocationService(
		parser.New(gaz, zap.NewNop()),
		suggest.New(gaz, suggest.DefaultOptions()),
		NewMemoryCacheService(128, time.Hour),
		zap.NewNop(),
	)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "buffalo, ny", CacheKey("BUFFALO, NY"))
	// spelling variants of the same location share one key
	assert.Equal(t, CacheKey("Buffalo, NY??"), CacheKey("  buffalo, ny"))
}

func TestParseUsesCache(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	loc, cached := svc.Parse(ctx, "BUFFALO, NY")
	require.NotNil(t, loc)
	assert.False(t, cached)
	assert.Equal(t, "Buffalo, NY, US", loc.String())

	loc, cached = svc.Parse(ctx, "BUFFALO, NY")
	require.NotNil(t, loc)
	assert.True(t, cached)
	assert.Equal(t, "Buffalo, NY, US", loc.String())

	// same location, different spelling, same cache entry
	_, cached = svc.Parse(ctx, "  buffalo, ny??")
	assert.True(t, cached)

	require.NoError(t, svc.ClearCache(ctx))
	_, cached = svc.Parse(ctx, "BUFFALO, NY")
	assert.False(t, cached)
}

func TestParseWithoutCache(t *testing.T) {
	gaz := gazetteer.MustLoad()
	svc := NewLocationService(
		parser.New(gaz, zap.NewNop()),
		suggest.New(gaz, suggest.DefaultOptions()),
		nil,
		zap.NewNop(),
	)

	loc, cached := svc.Parse(context.Background(), "Wichita")
	require.NotNil(t, loc)
	assert.False(t, cached)
	assert.Equal(t, "Wichita, KS, US", loc.String())

	stats, err := svc.CacheStats(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestParseBatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	got := svc.ParseBatch(ctx, []string{"BUFFALO, NY", "Cupertino, CA", "garbage input"})
	require.Len(t, got, 3)
	assert.Equal(t, "Buffalo, NY, US", got[0].String())
	assert.Equal(t, "Cupertino, CA, US", got[1].String())
	assert.Equal(t, "", got[2].String())
}

func TestParseBatchCancelled(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := svc.ParseBatch(ctx, []string{"BUFFALO, NY", "Cupertino, CA"})
	assert.Empty(t, got)
}

func TestServiceSuggest(t *testing.T) {
	svc := newTestService(t)

	got := svc.Suggest("Tornto", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Toronto", got[0].Name)
}
