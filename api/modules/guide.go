package modules

import (
	"raidbook/api/handlers"
	guideservice "raidbook/api/services/guide"
)

func initializeGuideHandler(deps *ModuleDependencies) *handlers.GuideHandler {
	// Initialize the guide service and handler.
	guideDeps := &guideservice.GuideServiceDeps{
		DB:       deps.DB,
		MemCache: deps.GuideMemCache,
		Redis:    deps.Redis,
	}

	guideService := guideservice.NewGuideService(guideDeps)

	guideHandlerDeps := &handlers.GuideHandlerDependencies{
		GuideService: guideService,
	}

	return handlers.NewGuideHandler(guideHandlerDeps)
}
