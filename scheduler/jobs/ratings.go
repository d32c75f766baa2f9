package jobs

import (
	"fmt"
	"log"

	"raidbook/pipeline/reconcile"
	"raidbook/pipeline/repositories"
	"raidbook/pipeline/requests"
	"raidbook/pipeline/sources/hellhades"
	"raidbook/pkg/database"
)

// RefreshRatings pulls the latest community ratings and patches them onto
// the stored catalog, matched by champion name. Stats and skills are left
// untouched, ratings move often between balance patches while the rest of
// the record is stable.
func RefreshRatings() error {
	log.Println("Starting ratings refresh.")

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

	limiter := requests.CreateRateLimiter()
	fresh, err := hellhades.FetchChampions(limiter)
	if err != nil {
		return fmt.Errorf("couldn't fetch the fresh ratings: %w", err)
	}

	repo := repositories.NewChampionRepositoryWithDB(db)
	catalog, err := repo.GetAll()
	if err != nil {
		return fmt.Errorf("couldn't load the catalog: %w", err)
	}

	matcher := reconcile.NewMatcher(fresh)

	patched := catalog[:0]
	for _, champ := range catalog {
		match := matcher.Match(champ.Name)
		if match == nil {
			continue
		}

		ratings := match.Ratings()
		if len(ratings) == 0 {
			continue
		}

		if champ.Ratings == nil {
			champ.Ratings = make(map[string]float64, len(ratings))
		}
		for key, value := range ratings {
			champ.Ratings[key] = value
		}
		patched = append(patched, champ)
	}

	if err := repo.UpsertBatch(patched); err != nil {
		return fmt.Errorf("couldn't persist the patched ratings: %w", err)
	}

	log.Printf("Patched ratings for %d of %d champions", len(patched), len(catalog))
	return nil
}
