package main

import (
	"log"
	"os"

	"raidbook/pipeline/snapshot"
	"raidbook/pkg/config"
	"raidbook/pkg/database"

	"github.com/joho/godotenv"
)

// Load the env and regenerate the guides and snapshot files from the
// stored catalog. Will be executed after guide rule changes.
func main() {
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

	outDir := os.Getenv("SNAPSHOT_DIR")
	if outDir == "" {
		outDir = "data"
	}

	if err := snapshot.RebuildDerived(db, outDir); err != nil {
		log.Fatalf("Couldn't rebuild the derived data: %v", err)
	}
}
