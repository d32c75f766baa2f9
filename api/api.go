package main

import (
	"context"
	"log"
	"os"

	"raidbook/api/cache"
	"raidbook/api/modules"
	"raidbook/api/repositories"
	"raidbook/api/routes"
	"raidbook/pkg/config"
	"raidbook/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	db, err := database.GetConnection()
	if err != nil {
		log.Fatalf("Couldn't connect to the database: %v", err)
	}

	// Preload the catalog so the first similarity request doesn't pay
	// the full load. Failure here is not fatal, the cache falls through
	// on demand.
	catalog := cache.GetCatalogCache()
	if _, err := catalog.GetCatalog(context.Background(), repositories.NewChampionRepository(db)); err != nil {
		log.Printf("Couldn't preload the catalog cache: %v", err)
	}

	// Create a module with all necessary handlers.
	deps := modules.NewModuleDependencies(db)
	module := modules.NewModule(deps)

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.ChampionHandler,
		module.GuideHandler,
		module.SimilarityHandler,
		module.ClanBossHandler,
	)

	// Start the server.
	router.Run(":8080")
}
