package guideservice

import (
	"context"
	"encoding/json"
	"time"

	"raidbook/api/cache"
	"raidbook/api/repositories"
	"raidbook/pkg/models/guide"

	"gorm.io/gorm"
)

const (
	GuideMemoryCacheDuration = 15 * time.Minute
	GuideRedisCacheDuration  = time.Hour
)

// GuideRedisClient is the Redis surface the service needs.
type GuideRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Guide service with the repository and caches.
type GuideService struct {
	memCache        cache.MemCache[[]guide.ChampionGuide]
	redis           GuideRedisClient
	GuideRepository repositories.GuideRepository
}

// GuideServiceDeps is the dependency list for the guide service.
type GuideServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache[[]guide.ChampionGuide]
	Redis    GuideRedisClient
}

// NewGuideService creates a guide service.
func NewGuideService(deps *GuideServiceDeps) *GuideService {
	return &GuideService{
		memCache:        deps.MemCache,
		redis:           deps.Redis,
		GuideRepository: repositories.NewGuideRepository(deps.DB),
	}
}

// GetGuides returns the guides of a champion, General first.
// A unknown slug simply returns a empty list.
func (gs *GuideService) GetGuides(ctx context.Context, slug string) ([]guide.ChampionGuide, error) {
	key := "guides:" + slug

	if mem := gs.memCache.Get(key); mem != nil {
		return mem, nil
	}

	if redisData := gs.getFromRedis(ctx, key); redisData != nil {
		gs.memCache.Set(key, redisData, GuideMemoryCacheDuration)
		return redisData, nil
	}

	guides, err := gs.GuideRepository.GetForChampion(ctx, slug)
	if err != nil {
		return nil, err
	}

	gs.populateCaches(ctx, key, guides)

	return guides, nil
}

// getFromRedis retrieves the guides from the redis.
func (gs *GuideService) getFromRedis(ctx context.Context, key string) []guide.ChampionGuide {
	ctx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := gs.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var guides []guide.ChampionGuide
	if err := json.Unmarshal([]byte(redisCached), &guides); err != nil {
		return nil
	}

	return guides
}

// populateCaches will set the mem cache and redis cache.
func (gs *GuideService) populateCaches(ctx context.Context, key string, guides []guide.ChampionGuide) {
	gs.memCache.Set(key, guides, GuideMemoryCacheDuration)

	if j, err := json.Marshal(guides); err == nil {
		gs.redis.Set(ctx, key, string(j), GuideRedisCacheDuration)
	}
}
