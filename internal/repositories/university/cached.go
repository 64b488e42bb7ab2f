package university

import (
	"context"
	"time"

	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/pkg/logger"
)

const allKey = "universities:all"

// CachedRepository serves the university list from cache. Universities are
// seeded reference data, so a TTL is the only invalidation.
type CachedRepository struct {
	next   Repository
	cache  Cache
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedRepository(next Repository, cache Cache, ttl time.Duration, logger logger.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger.WithComponent("UniversityCache"),
	}
}

var _ Repository = (*CachedRepository)(nil)

func (c *CachedRepository) GetAll(ctx context.Context) ([]domain.University, error) {
	var cached []domain.University
	if err := c.cache.GetJSON(ctx, allKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	universities, err := c.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetJSON(ctx, allKey, universities, c.ttl); err != nil {
		c.logger.Warn("Failed to cache universities", "error", err)
	}
	return universities, nil
}

func (c *CachedRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	return c.next.GetByID(ctx, id)
}
