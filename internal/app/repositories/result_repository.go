package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/yigit/rankfinder/internal/app/models"
	"github.com/yigit/rankfinder/internal/pkg/apperrors"
)

// Result store defaults
const (
	DefaultResultTTL  = 30 * time.Minute
	DefaultMaxResults = 256
)

// ResultRepository keeps recent filter results in memory so they can be
// downloaded later by id. Entries expire after the TTL and the least
// recently used ones are dropped once the store is full.
type ResultRepository struct {
	cache  *expirable.LRU[string, *models.FilterResult]
	logger zerolog.Logger
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(ttl time.Duration, maxEntries int, lgr zerolog.Logger) *ResultRepository {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxResults
	}
	r := &ResultRepository{logger: lgr.With().Str("component", "results").Logger()}
	r.cache = expirable.NewLRU[string, *models.FilterResult](maxEntries, r.onEvict, ttl)
	return r
}

func (r *ResultRepository) onEvict(id string, _ *models.FilterResult) {
	r.logger.Debug().Str("resultId", id).Msg("Result evicted")
}

// Save stores the result under a new id, sets result.ID and returns the id
func (r *ResultRepository) Save(result *models.FilterResult) string {
	id := uuid.NewString()
	result.ID = id
	r.cache.Add(id, result)
	return id
}

// Get returns the stored result or apperrors.ErrResultNotFound
func (r *ResultRepository) Get(id string) (*models.FilterResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed id %q", apperrors.ErrResultNotFound, id)
	}
	result, ok := r.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrResultNotFound, id)
	}
	return result, nil
}

// Len returns the number of live results
func (r *ResultRepository) Len() int {
	return r.cache.Len()
}
