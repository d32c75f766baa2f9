package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"raidbook/api/repositories"
	"raidbook/pkg/models/champion"
	"raidbook/pkg/redis"
)

const catalogRedisKey = "catalog:champions"

// CatalogCache keeps the whole champion catalog in memory for the
// similarity ranking, which always needs every champion at once.
// Falls through to Redis and then to the database on a cold start.
type CatalogCache struct {
	redis     *redis.RedisClient
	champions []*champion.Champion
	bySlug    map[string]*champion.Champion
	TTL       time.Duration
	lastReset time.Time
	mu        sync.RWMutex
}

// Singleton.
var (
	catalogInstance *CatalogCache
	catalogOnce     sync.Once
)

// GetCatalogCache returns the instance of the catalog cache.
func GetCatalogCache() *CatalogCache {
	catalogOnce.Do(func() {
		catalogInstance = &CatalogCache{
			redis:     redis.GetClient(),
			bySlug:    make(map[string]*champion.Champion),
			TTL:       30 * time.Minute,
			lastReset: time.Now(),
		}

		// Start the worker that will reset the cache.
		go catalogInstance.cacheExpirationWorker()
	})

	return catalogInstance
}

// Invalidate the current cache on each TTL tick.
func (c *CatalogCache) cacheExpirationWorker() {
	ticker := time.NewTicker(c.TTL)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		c.champions = nil
		c.bySlug = make(map[string]*champion.Champion)
		c.lastReset = time.Now()
		c.mu.Unlock()
	}
}

// Getcatalog returns the full catalog, loading it from Redis or from the
// repository fallback when the memory copy expired. The returned slice is
// shared, callers must not mutate it.
func (c *CatalogCache) GetCatalog(ctx context.Context, repo repositories.ChampionRepository) ([]*champion.Champion, error) {
	c.mu.RLock()
	if len(c.champions) > 0 {
		defer c.mu.RUnlock()
		return c.champions, nil
	}
	c.mu.RUnlock()

	champions, err := c.loadCatalog(ctx, repo)
	if err != nil {
		return nil, err
	}

	c.store(champions)
	return champions, nil
}

// GetChampion returns a single champion by slug from the cached catalog.
func (c *CatalogCache) GetChampion(ctx context.Context, slug string, repo repositories.ChampionRepository) (*champion.Champion, error) {
	if _, err := c.GetCatalog(ctx, repo); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	champ, exists := c.bySlug[slug]
	if !exists {
		return nil, nil
	}
	return champ, nil
}

// loadCatalog tries Redis first and falls back to the repository.
func (c *CatalogCache) loadCatalog(ctx context.Context, repo repositories.ChampionRepository) ([]*champion.Champion, error) {
	cached, err := c.redis.Get(ctx, catalogRedisKey)
	if err == nil && cached != "" {
		var champions []*champion.Champion
		if err := json.Unmarshal([]byte(cached), &champions); err == nil && len(champions) > 0 {
			return champions, nil
		}
	}

	if repo == nil {
		return nil, fmt.Errorf("catalog not on redis and no repository fallback")
	}

	champions, err := repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't load the catalog from the database: %w", err)
	}

	// Save on Redis for the other instances. Best effort.
	if j, err := json.Marshal(champions); err == nil {
		c.redis.Set(ctx, catalogRedisKey, string(j), time.Hour)
	}

	return champions, nil
}

// store saves the catalog in memory and rebuilds the slug index.
func (c *CatalogCache) store(champions []*champion.Champion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.champions = champions
	c.bySlug = make(map[string]*champion.Champion, len(champions))
	for _, champ := range champions {
		c.bySlug[champ.Slug] = champ
	}
}
