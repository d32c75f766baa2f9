package snapshot

import (
	"context"
	"fmt"
	"log"

	"raidbook/pipeline/guides"
	"raidbook/pipeline/repositories"
	"raidbook/pkg/config"

	"gorm.io/gorm"
)

// RebuildDerived regenerates the guides and the snapshot files from the
// stored catalog, without touching the upstream sources. Used by the
// revalidator and by the scheduled snapshot refresh, so guide rule changes
// take effect without a full seeding run.
func RebuildDerived(db *gorm.DB, outDir string) error {
	championRepo := repositories.NewChampionRepositoryWithDB(db)
	guideRepo := repositories.NewGuideRepositoryWithDB(db)

	catalog, err := championRepo.GetAll()
	if err != nil {
		return fmt.Errorf("couldn't load the catalog: %w", err)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("the catalog is empty, run the pipeline first")
	}

	guideCount := 0
	for _, champ := range catalog {
		if overall, ok := champ.Rating("overall"); !ok || overall <= 0 {
			continue
		}

		champGuides := guides.Synthesize(champ)
		if err := guideRepo.ReplaceForChampion(champ.Slug, champGuides); err != nil {
			log.Printf("Couldn't persist guides for %s: %v", champ.Slug, err)
			continue
		}
		guideCount += len(champGuides)
	}
	log.Printf("Rebuilt %d guides for %d champions", guideCount, len(catalog))

	writer := NewWriter(outDir)
	if err := writer.WriteChampions(catalog); err != nil {
		return fmt.Errorf("couldn't write the champions snapshot: %w", err)
	}

	allGuides, err := guideRepo.GetAll()
	if err != nil {
		return fmt.Errorf("couldn't load the guides for the snapshot: %w", err)
	}
	if err := writer.WriteGuides(allGuides); err != nil {
		return fmt.Errorf("couldn't write the guides snapshot: %w", err)
	}

	if config.Bucket.SnapshotBucket != "" {
		if err := writer.Publish(context.Background()); err != nil {
			return fmt.Errorf("couldn't publish the snapshot: %w", err)
		}
	}

	return nil
}
