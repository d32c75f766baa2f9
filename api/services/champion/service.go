package championservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"raidbook/api/cache"
	"raidbook/api/dto"
	"raidbook/api/repositories"
	"raidbook/pkg/messages"

	"gorm.io/gorm"
)

const (
	ChampionMemoryCacheDuration = 15 * time.Minute
	ChampionRedisCacheDuration  = time.Hour
)

// ChampionRedisClient is the Redis surface the service needs.
type ChampionRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Champion service with the repositories and caches.
type ChampionService struct {
	memCache           cache.MemCache[[]*dto.ChampionSummary]
	detailCache        cache.MemCache[*dto.ChampionDetail]
	redis              ChampionRedisClient
	ChampionRepository repositories.ChampionRepository
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	DB          *gorm.DB
	MemCache    cache.MemCache[[]*dto.ChampionSummary]
	DetailCache cache.MemCache[*dto.ChampionDetail]
	Redis       ChampionRedisClient
}

// NewChampionService creates a champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	return &ChampionService{
		memCache:           deps.MemCache,
		detailCache:        deps.DetailCache,
		redis:              deps.Redis,
		ChampionRepository: repositories.NewChampionRepository(deps.DB),
	}
}

// GetChampions returns the summary list of the whole catalog.
func (cs *ChampionService) GetChampions(ctx context.Context) ([]*dto.ChampionSummary, error) {
	key := "champions:all"

	if mem := cs.memCache.Get(key); mem != nil {
		return mem, nil
	}

	if redisData := cs.getListFromRedis(ctx, key); redisData != nil {
		cs.memCache.Set(key, redisData, ChampionMemoryCacheDuration)
		return redisData, nil
	}

	champions, err := cs.ChampionRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.ChampionSummary, 0, len(champions))
	for _, champ := range champions {
		summaries = append(summaries, dto.NewChampionSummary(champ))
	}

	cs.memCache.Set(key, summaries, ChampionMemoryCacheDuration)
	if j, err := json.Marshal(summaries); err == nil {
		cs.redis.Set(ctx, key, string(j), ChampionRedisCacheDuration)
	}

	return summaries, nil
}

// GetChampion returns the full detail of a single champion.
func (cs *ChampionService) GetChampion(ctx context.Context, slug string) (*dto.ChampionDetail, error) {
	key := "champion:" + slug

	if mem := cs.detailCache.Get(key); mem != nil {
		return mem, nil
	}

	if redisData := cs.getDetailFromRedis(ctx, key); redisData != nil {
		cs.detailCache.Set(key, redisData, ChampionMemoryCacheDuration)
		return redisData, nil
	}

	champ, err := cs.ChampionRepository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf(messages.ChampionNotFound+": %w", slug, gorm.ErrRecordNotFound)
		}
		return nil, err
	}

	detail := dto.NewChampionDetail(champ)

	cs.detailCache.Set(key, detail, ChampionMemoryCacheDuration)
	if j, err := json.Marshal(detail); err == nil {
		cs.redis.Set(ctx, key, string(j), ChampionRedisCacheDuration)
	}

	return detail, nil
}

// getListFromRedis retrieves the summary list from the redis.
func (cs *ChampionService) getListFromRedis(ctx context.Context, key string) []*dto.ChampionSummary {
	ctx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := cs.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var summaries []*dto.ChampionSummary
	if err := json.Unmarshal([]byte(redisCached), &summaries); err != nil {
		return nil
	}

	return summaries
}

// getDetailFromRedis retrieves a champion detail from the redis.
func (cs *ChampionService) getDetailFromRedis(ctx context.Context, key string) *dto.ChampionDetail {
	ctx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := cs.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var detail dto.ChampionDetail
	if err := json.Unmarshal([]byte(redisCached), &detail); err != nil {
		return nil
	}

	return &detail
}
