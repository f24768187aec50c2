package cache

import (
	"context"
	"fmt"
	"time"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/pkg/logger"
	"company-pulse-be/internal/repository/contract"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/semaphore"
)

const allowedSignalTypesKey = "signal_types:allowed"

// SignalTypeCache is the TTL-based allow-list cache. Unlike ConceptCache it
// expires on a time budget: allow-list drift is tolerable for a couple of
// hours, concept identity is not.
type SignalTypeCache struct {
	repo   contract.SignalTypeRepository
	logger logger.ILogger
	ttl    time.Duration
	store  *gocache.Cache
	gate   *semaphore.Weighted
}

func NewSignalTypeCache(repo contract.SignalTypeRepository, log logger.ILogger, ttl time.Duration) *SignalTypeCache {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SignalTypeCache{
		repo:   repo,
		logger: log,
		ttl:    ttl,
		store:  gocache.New(ttl, 10*time.Minute),
		gate:   semaphore.NewWeighted(1),
	}
}

// GetAllowed returns the allow-listed signal types, reloading when the entry
// expired, was invalidated, or forceRefresh is set.
func (c *SignalTypeCache) GetAllowed(ctx context.Context, forceRefresh bool) ([]*entity.SignalTypeOption, error) {
	if !forceRefresh {
		if x, found := c.store.Get(allowedSignalTypesKey); found {
			return x.([]*entity.SignalTypeOption), nil
		}
	}

	if err := c.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.gate.Release(1)

	// Double-check: a concurrent caller may have refreshed while we waited.
	if !forceRefresh {
		if x, found := c.store.Get(allowedSignalTypesKey); found {
			return x.([]*entity.SignalTypeOption), nil
		}
	}

	options, err := c.repo.FindAllowed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load allowed signal types: %w", err)
	}

	c.store.Set(allowedSignalTypesKey, options, c.ttl)
	c.logger.Info("signal_type_cache", "Allow-list refreshed", map[string]interface{}{
		"count": len(options),
		"ttl":   c.ttl.String(),
	})

	return options, nil
}

// Invalidate removes the entry immediately; the next read rebuilds regardless
// of TTL.
func (c *SignalTypeCache) Invalidate() {
	c.store.Delete(allowedSignalTypesKey)
}
