package modules

import (
	"raidbook/api/handlers"
	championservice "raidbook/api/services/champion"
)

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	// Initialize the champion service and handler.
	championDeps := &championservice.ChampionServiceDeps{
		DB:          deps.DB,
		MemCache:    deps.ChampionMemCache,
		DetailCache: deps.ChampionDetCache,
		Redis:       deps.Redis,
	}

	championService := championservice.NewChampionService(championDeps)

	championHandlerDeps := &handlers.ChampionHandlerDependencies{
		ChampionService: championService,
	}

	return handlers.NewChampionHandler(championHandlerDeps)
}
