package modules

import (
	"raidbook/api/cache"
	"raidbook/api/dto"
	"raidbook/api/handlers"
	"raidbook/pkg/models/guide"
	"raidbook/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router            *gin.Engine
	ChampionHandler   *handlers.ChampionHandler
	GuideHandler      *handlers.GuideHandler
	SimilarityHandler *handlers.SimilarityHandler
	ClanBossHandler   *handlers.ClanBossHandler
}

// ModuleDependencies are the shared resources of every handler.
type ModuleDependencies struct {
	DB               *gorm.DB
	Redis            *redis.RedisClient
	Catalog          *cache.CatalogCache
	ChampionMemCache cache.MemCache[[]*dto.ChampionSummary]
	ChampionDetCache cache.MemCache[*dto.ChampionDetail]
	GuideMemCache    cache.MemCache[[]guide.ChampionGuide]
}

// NewModuleDependencies creates the default shared resources.
func NewModuleDependencies(db *gorm.DB) *ModuleDependencies {
	return &ModuleDependencies{
		DB:               db,
		Redis:            redis.GetClient(),
		Catalog:          cache.GetCatalogCache(),
		ChampionMemCache: cache.NewMemCache[[]*dto.ChampionSummary](),
		ChampionDetCache: cache.NewMemCache[*dto.ChampionDetail](),
		GuideMemCache:    cache.NewMemCache[[]guide.ChampionGuide](),
	}
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:            router,
		ChampionHandler:   initializeChampionHandler(deps),
		GuideHandler:      initializeGuideHandler(deps),
		SimilarityHandler: initializeSimilarityHandler(deps),
		ClanBossHandler:   initializeClanBossHandler(),
	}
}
