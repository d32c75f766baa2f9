package guideservice

import (
	"encoding/json"
	"testing"

	servicetestutil "raidbook/api/services/testutil"
	"raidbook/internal/testutil"
	"raidbook/pkg/models/guide"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock setup struct
type mockSetup struct {
	slug     string
	key      string
	strategy string

	memCache *servicetestutil.MockMemCache[[]guide.ChampionGuide]
	redis    *servicetestutil.MockRedisClient
	repo     *servicetestutil.MockGuideRepository

	repoData *testutil.OperationResult[[]guide.ChampionGuide]

	expectedResult []guide.ChampionGuide
}

// Helper to initialize the mocks.
func setupTestService() (*GuideService, *servicetestutil.MockGuideRepository, *servicetestutil.MockMemCache[[]guide.ChampionGuide], *servicetestutil.MockRedisClient) {
	mockGuideRepository := new(servicetestutil.MockGuideRepository)
	mockMemCache := new(servicetestutil.MockMemCache[[]guide.ChampionGuide])
	mockRedisClient := new(servicetestutil.MockRedisClient)

	service := &GuideService{
		memCache:        mockMemCache,
		redis:           mockRedisClient,
		GuideRepository: mockGuideRepository,
	}

	return service, mockGuideRepository, mockMemCache, mockRedisClient
}

// Create a correct guide list example.
func createExpectedGuides() []guide.ChampionGuide {
	return []guide.ChampionGuide{
		{
			ContentArea:       "General",
			GearSets:          []string{"Lifesteal", "Speed"},
			StatPriorities:    []string{"SPD", "ATK%", "C.RATE", "C.DMG"},
			GauntletsMain:     "C.RATE",
			ChestplateMain:    "ATK%",
			BootsMain:         "SPD",
			MasteryTree:       "Offense + Support",
			SkillBookingOrder: []int{3, 2},
			Notes:             "Kael is a strong damage dealer.",
		},
		{
			ContentArea:       "Clan Boss",
			GearSets:          []string{"Lifesteal", "Speed"},
			StatPriorities:    []string{"SPD", "DEF%", "HP%", "ACC"},
			GauntletsMain:     "DEF%",
			ChestplateMain:    "DEF%",
			BootsMain:         "SPD",
			MasteryTree:       "Offense + Defense",
			SkillBookingOrder: []int{3, 2},
			Notes:             "Kael deals heavy damage in Clan Boss.",
		},
	}
}

// Setup the mocks for the guide test based on cache strategy.
func setupMocks(setup mockSetup) {
	switch setup.strategy {
	case "memcache":
		setupMemCacheHit(setup)
	case "redis":
		setupRedisCacheHit(setup)
	case "nocache":
		setupNoCacheHit(setup)
	}
}

// Data already available on memory.
func setupMemCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(setup.expectedResult)
}

// Not available on memory, but available on Redis.
func setupRedisCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return(string(data), nil)
	setup.memCache.On("Set", setup.key, setup.expectedResult, GuideMemoryCacheDuration).Return(nil)
}

// Data available only on database.
func setupNoCacheHit(setup mockSetup) {
	setup.memCache.On("Get", setup.key).Return(nil)
	setup.redis.On("Get", mock.AnythingOfType(servicetestutil.DefaultTimerCtx), setup.key).Return("", nil)

	setup.repo.On("GetForChampion", mock.Anything, setup.slug).Return(setup.repoData.Data, setup.repoData.Err)

	if setup.repoData.Err != nil {
		return
	}

	setup.memCache.On("Set", setup.key, setup.expectedResult, GuideMemoryCacheDuration).Return(nil)

	data, _ := json.Marshal(setup.expectedResult)
	setup.redis.On("Set", mock.Anything, setup.key, string(data), GuideRedisCacheDuration).Return(nil)
}

// Assert the expected returned results.
func assertGuideResult(
	t *testing.T,
	result []guide.ChampionGuide,
	err error,
	expectedData []guide.ChampionGuide,
	expectedError error,
) {
	t.Helper()

	if expectedError != nil {
		assert.Error(t, err)
		assert.Contains(t, err.Error(), expectedError.Error())
		assert.Nil(t, result)
		return
	}

	assert.NoError(t, err)
	assert.Equal(t, expectedData, result)
}
