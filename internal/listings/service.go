package listings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/propstack/rentquant/backend/pkg/logger"
	"github.com/propstack/rentquant/backend/pkg/redis"
)

// Service is the cached search facade over the repository. Cache
// misses and cache errors both fall through to Postgres; the cache is
// an accelerator, never a source of truth.
type Service struct {
	repo  *Repository
	cache *redis.Cache
	log   *logger.Logger
}

// NewService wires the search service
func NewService(repo *Repository, cache *redis.Cache, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// Search filters the inventory by the given criteria
func (s *Service) Search(ctx context.Context, c Criteria) ([]Property, error) {
	key := redis.SearchKey(criteriaHash(c))

	if s.cache != nil {
		var cached []Property
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := Filter(all, c)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, redis.TTLShort); err != nil && s.log != nil {
			s.log.WithError(err).Warn("search cache write failed")
		}
	}
	return result, nil
}

// Get returns one listing by id, cache first
func (s *Service) Get(ctx context.Context, propertyID string) (*Property, error) {
	key := redis.PropertyKey(propertyID)

	if s.cache != nil {
		var cached Property
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	p, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p, redis.TTLMedium); err != nil && s.log != nil {
			s.log.WithError(err).Warn("property cache write failed")
		}
	}
	return p, nil
}

// criteriaHash fingerprints a criteria struct for cache keys. JSON of
// a struct has deterministic field order, so equal criteria always map
// to the same key.
func criteriaHash(c Criteria) string {
	data, _ := json.Marshal(c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
