package championservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"raidbook/api/dto"
	servicetestutil "raidbook/api/services/testutil"
	"raidbook/pkg/models/champion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Helper to initialize the mocks.
func setupTestService() (*ChampionService, *servicetestutil.MockChampionRepository, *servicetestutil.MockMemCache[[]*dto.ChampionSummary], *servicetestutil.MockMemCache[*dto.ChampionDetail], *servicetestutil.MockRedisClient) {
	mockRepo := new(servicetestutil.MockChampionRepository)
	mockMemCache := new(servicetestutil.MockMemCache[[]*dto.ChampionSummary])
	mockDetailCache := new(servicetestutil.MockMemCache[*dto.ChampionDetail])
	mockRedis := new(servicetestutil.MockRedisClient)

	service := &ChampionService{
		memCache:           mockMemCache,
		detailCache:        mockDetailCache,
		redis:              mockRedis,
		ChampionRepository: mockRepo,
	}

	return service, mockRepo, mockMemCache, mockDetailCache, mockRedis
}

func createTestChampions() []*champion.Champion {
	return []*champion.Champion{
		{
			Slug:     "kael",
			Name:     "Kael",
			Faction:  "Dark Elves",
			Affinity: "Magic",
			Rarity:   "Rare",
			Role:     "Attack",
			Ratings:  map[string]float64{"overall": 4.5, "clan_boss": 4.0},
		},
		{
			Slug:     "apothecary",
			Name:     "Apothecary",
			Faction:  "High Elves",
			Affinity: "Magic",
			Rarity:   "Rare",
			Role:     "Support",
			Ratings:  map[string]float64{"overall": 4.6},
		},
	}
}

func TestGetChampions(t *testing.T) {
	champions := createTestChampions()

	summaries := make([]*dto.ChampionSummary, 0, len(champions))
	for _, champ := range champions {
		summaries = append(summaries, dto.NewChampionSummary(champ))
	}

	const key = "champions:all"

	t.Run("memory cache hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		mockMemCache.On("Get", key).Return(summaries)

		result, err := service.GetChampions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, summaries, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("redis cache hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		data, _ := json.Marshal(summaries)
		mockMemCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return(string(data), nil)
		mockMemCache.On("Set", key, summaries, ChampionMemoryCacheDuration).Return(nil)

		result, err := service.GetChampions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, summaries, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("database hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		data, _ := json.Marshal(summaries)
		mockMemCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return("", nil)
		mockRepo.On("GetAll", mock.Anything).Return(champions, nil)
		mockMemCache.On("Set", key, summaries, ChampionMemoryCacheDuration).Return(nil)
		mockRedis.On("Set", mock.Anything, key, string(data), ChampionRedisCacheDuration).Return(nil)

		result, err := service.GetChampions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, summaries, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("database error", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		mockMemCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return("", nil)
		mockRepo.On("GetAll", mock.Anything).Return([]*champion.Champion(nil), errors.New(servicetestutil.DatabaseError))

		result, err := service.GetChampions(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), servicetestutil.DatabaseError)
		assert.Nil(t, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})
}

func TestGetChampion(t *testing.T) {
	champ := createTestChampions()[0]
	detail := dto.NewChampionDetail(champ)

	const key = "champion:kael"

	t.Run("memory cache hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		mockDetailCache.On("Get", key).Return(detail)

		result, err := service.GetChampion(context.Background(), "kael")

		assert.NoError(t, err)
		assert.Equal(t, detail, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("redis cache hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		data, _ := json.Marshal(detail)
		mockDetailCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return(string(data), nil)
		mockDetailCache.On("Set", key, mock.AnythingOfType("*dto.ChampionDetail"), ChampionMemoryCacheDuration).Return(nil)

		result, err := service.GetChampion(context.Background(), "kael")

		assert.NoError(t, err)
		assert.Equal(t, detail.Slug, result.Slug)
		assert.Equal(t, detail.Ratings, result.Ratings)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("database hit", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		data, _ := json.Marshal(detail)
		mockDetailCache.On("Get", key).Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), key).Return("", nil)
		mockRepo.On("GetBySlug", mock.Anything, "kael").Return(champ, nil)
		mockDetailCache.On("Set", key, detail, ChampionMemoryCacheDuration).Return(nil)
		mockRedis.On("Set", mock.Anything, key, string(data), ChampionRedisCacheDuration).Return(nil)

		result, err := service.GetChampion(context.Background(), "kael")

		assert.NoError(t, err)
		assert.Equal(t, detail, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})

	t.Run("champion not found", func(t *testing.T) {
		service, mockRepo, mockMemCache, mockDetailCache, mockRedis := setupTestService()

		mockDetailCache.On("Get", "champion:missing").Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), "champion:missing").Return("", nil)
		mockRepo.On("GetBySlug", mock.Anything, "missing").Return((*champion.Champion)(nil), gorm.ErrRecordNotFound)

		result, err := service.GetChampion(context.Background(), "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
		assert.Contains(t, err.Error(), "missing")
		assert.Nil(t, result)
		servicetestutil.VerifyAllMocks(t, mockRepo, mockMemCache, mockDetailCache, mockRedis)
	})
}
