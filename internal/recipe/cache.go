package recipe

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/metrics"
)

// CacheConfig sizes the recipe read cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// recipeCache is an in-memory LRU of recipes by id with time-based expiration.
// Entries are stored as clones so cached slices are never shared with callers.
type recipeCache struct {
	lru    *expirable.LRU[string, domain.Recipe]
	hits   atomic.Int64
	misses atomic.Int64
}

func newRecipeCache(cfg CacheConfig) *recipeCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &recipeCache{
		lru: expirable.NewLRU[string, domain.Recipe](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached recipe
func (c *recipeCache) Get(id string) (*domain.Recipe, bool) {
	r, ok := c.lru.Get(id)
	if !ok {
		c.misses.Add(1)
		metrics.RecipeCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}
	c.hits.Add(1)
	metrics.RecipeCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	clone := r.Clone()
	return &clone, true
}

func (c *recipeCache) Set(r *domain.Recipe) {
	c.lru.Add(r.ID, r.Clone())
}

func (c *recipeCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *recipeCache) Clear() {
	c.lru.Purge()
}

func (c *recipeCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
