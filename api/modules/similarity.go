package modules

import (
	"raidbook/api/handlers"
	"raidbook/api/services/similarity"
)

func initializeSimilarityHandler(deps *ModuleDependencies) *handlers.SimilarityHandler {
	// Initialize the similarity service and handler.
	similarityDeps := &similarity.SimilarityServiceDeps{
		DB:      deps.DB,
		Catalog: deps.Catalog,
	}

	similarityService := similarity.NewSimilarityService(similarityDeps)

	similarityHandlerDeps := &handlers.SimilarityHandlerDependencies{
		SimilarityService: similarityService,
	}

	return handlers.NewSimilarityHandler(similarityHandlerDeps)
}
