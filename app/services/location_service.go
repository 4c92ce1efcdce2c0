package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
	"github.com/desprit/geoparse/internal/parser"
	"github.com/desprit/geoparse/internal/suggest"
)

// LocationService fronts the parser with a result cache and exposes fuzzy
// suggestions. Parsing itself never fails, so the only errors surfacing here
// come from cache backends, and those degrade to a plain parse.
type LocationService struct {
	parser    *parser.Parser
	suggester *suggest.Suggester
	cache     ICacheService
	logger    *zap.Logger
}

func NewLocationService(p *parser.Parser, s *suggest.Suggester, cache ICacheService, logger *zap.Logger) *LocationService {
	return &LocationService{parser: p, suggester: s, cache: cache, logger: logger}
}

// CacheKey is the canonical cache key of an input: cleaned and lowercased,
// so spelling variants of the same location share an entry.
func CacheKey(input string) string {
	return strings.ToLower(normalizer.Clean(input))
}

// Parse resolves one input, consulting the cache first. The bool reports
// whether the result came from cache.
func (s *LocationService) Parse(ctx context.Context, input string) (*geo.Location, bool) {
	key := CacheKey(input)
	if s.cache != nil {
		if loc, found, err := s.cache.Get(ctx, key); err == nil && found {
			return loc, true
		} else if err != nil {
			s.logger.Warn("cache get failed, parsing anyway", zap.Error(err))
		}
	}
	loc := s.parser.ParseLocation(input)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, loc); err != nil {
			s.logger.Warn("cache set failed", zap.Error(err))
		}
	}
	return loc, false
}

// ParseBatch resolves inputs in order. Context cancellation stops the loop
// and returns what was finished.
func (s *LocationService) ParseBatch(ctx context.Context, inputs []string) []*geo.Location {
	out := make([]*geo.Location, 0, len(inputs))
	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return out
		default:
		}
		loc, _ := s.Parse(ctx, input)
		out = append(out, loc)
	}
	return out
}

// Suggest returns fuzzy gazetteer completions for a query.
func (s *LocationService) Suggest(query string, limit int) []suggest.Suggestion {
	return s.suggester.Suggest(query, limit)
}

// CacheStats exposes the cache counters, nil when caching is disabled.
func (s *LocationService) CacheStats(ctx context.Context) (*CacheStats, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.GetStats(ctx)
}

// ClearCache drops every cached result.
func (s *LocationService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx)
}
