package jobs

import (
	"fmt"
	"log"
	"os"

	"raidbook/pipeline/snapshot"
	"raidbook/pkg/database"
)

// RefreshSnapshot regenerates the guides and snapshot files from the
// stored catalog. Runs after the ratings refresh, so the derived data
// follows the new ratings.
func RefreshSnapshot() error {
	log.Println("Starting snapshot refresh.")

	// Create a new connection pool.
	db, err := database.NewConnection()
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := snapshot.RebuildDerived(db, snapshotDir()); err != nil {
		return err
	}

	log.Println("Finished job")
	return nil
}

func snapshotDir() string {
	if dir := os.Getenv("SNAPSHOT_DIR"); dir != "" {
		return dir
	}
	return "data"
}
