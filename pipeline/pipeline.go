package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"raidbook/pipeline/enrich"
	"raidbook/pipeline/guides"
	"raidbook/pipeline/reconcile"
	"raidbook/pipeline/repositories"
	"raidbook/pipeline/requests"
	"raidbook/pipeline/snapshot"
	"raidbook/pipeline/sources/hellhades"
	"raidbook/pipeline/sources/inteleria"
	"raidbook/pkg/config"
	"raidbook/pkg/database"
	"raidbook/pkg/logger"
	"raidbook/pkg/models/champion"
	"raidbook/pkg/redis"

	"github.com/joho/godotenv"
)

// Adapter exposing the HellHades skills endpoint as the enrichment source.
type hellhadesSkillSource struct {
	limiter *requests.RateLimiter
}

func (s *hellhadesSkillSource) Skills(id int) []champion.Skill {
	return hellhades.ToModelSkills(hellhades.FetchSkills(s.limiter, id))
}

// Run the full seeding pipeline: fetch both sources, reconcile, enrich the
// skills, synthesize the guides, persist and publish the snapshot.
func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}
	config.LoadEnv()

	runLog, err := logger.CreateLogger(true)
	if err != nil {
		log.Fatalf("Couldn't create the run logger: %v", err)
	}

	db, err := database.GetConnection()
	if err != nil {
		log.Fatal(err)
	}

	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}
	if err := database.RunMigrations(rawDb); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	limiter := requests.CreateRateLimiter()

	runLog.Infof("Starting champion seeding run")

	// Fetch both source lists. One source failing still produces a partial
	// catalog, both failing leaves nothing to reconcile.
	sourceA, err := inteleria.FetchChampions(limiter)
	if err != nil {
		runLog.Errorf("InTeleria fetch failed: %v", err)
	}
	sourceB, err := hellhades.FetchChampions(limiter)
	if err != nil {
		runLog.Errorf("HellHades fetch failed: %v", err)
	}
	if len(sourceA) == 0 && len(sourceB) == 0 {
		runLog.Errorf("Both sources failed, nothing to do")
		uploadLog(runLog)
		os.Exit(1)
	}
	runLog.Infof("Fetched %d InTeleria and %d HellHades champions", len(sourceA), len(sourceB))

	// Reconcile the two feeds into the canonical catalog.
	catalog, summary := reconcile.Reconcile(sourceA, sourceB)
	runLog.Infof("Reconciled %d champions: %d matched, %d without ratings, %d appended from HellHades",
		len(catalog), summary.Matched, summary.UnmatchedA, summary.AppendedB)
	if summary.DuplicateKeys > 0 {
		// Likely a data quality problem upstream, worth seeing on every run.
		runLog.Errorf("Dropped %d HellHades entries with duplicate normalized names (first one wins)", summary.DuplicateKeys)
	}

	// Backfill the skills with bounded parallel batches.
	enricher := enrich.NewEnricher(
		&hellhadesSkillSource{limiter: limiter},
		enrich.NewRedisProgress(redis.GetClient(), 7*24*time.Hour),
		config.Limits.BatchSize,
		config.Limits.BatchDelay,
		runLog,
	)
	result := enricher.BackfillSkills(ctx, skillTargets(catalog, sourceB))
	runLog.Infof("Skills backfilled: %d filled, %d already done, %d returned nothing",
		result.Filled, result.Skipped, result.Empty)

	// Persist the catalog.
	championRepo := repositories.NewChampionRepositoryWithDB(db)
	if err := championRepo.UpsertBatch(catalog); err != nil {
		runLog.Errorf("Couldn't persist the catalog: %v", err)
		uploadLog(runLog)
		os.Exit(1)
	}

	// Synthesize and persist the guides for every rated champion.
	guideRepo := repositories.NewGuideRepositoryWithDB(db)
	guideCount := 0
	for _, champ := range catalog {
		if overall, ok := champ.Rating("overall"); !ok || overall <= 0 {
			continue
		}

		champGuides := guides.Synthesize(champ)
		if err := guideRepo.ReplaceForChampion(champ.Slug, champGuides); err != nil {
			runLog.Errorf("Couldn't persist guides for %s: %v", champ.Slug, err)
			continue
		}
		guideCount += len(champGuides)
	}
	runLog.Infof("Synthesized %d guides", guideCount)

	// Write and publish the snapshot.
	writer := snapshot.NewWriter(snapshotDir())
	if err := writer.WriteChampions(catalog); err != nil {
		runLog.Errorf("Couldn't write the champions snapshot: %v", err)
	}
	allGuides, err := guideRepo.GetAll()
	if err == nil {
		if err := writer.WriteGuides(allGuides); err != nil {
			runLog.Errorf("Couldn't write the guides snapshot: %v", err)
		}
	} else {
		runLog.Errorf("Couldn't load the guides for the snapshot: %v", err)
	}
	if config.Bucket.SnapshotBucket != "" {
		if err := writer.Publish(ctx); err != nil {
			runLog.Errorf("Couldn't publish the snapshot: %v", err)
		}
	}

	runLog.Infof("Seeding run finished")
	uploadLog(runLog)
}

// skillTargets pairs every catalog entry with its HellHades post id.
// The post id is the working key of the skills endpoint.
func skillTargets(catalog []*champion.Champion, sourceB []hellhades.Champion) []enrich.Target {
	matcher := reconcile.NewMatcher(sourceB)

	targets := make([]enrich.Target, 0, len(catalog))
	for _, champ := range catalog {
		hh := matcher.Match(champ.Name)
		if hh == nil {
			continue
		}
		id, err := strconv.Atoi(hh.ID)
		if err != nil || id <= 0 {
			continue
		}
		targets = append(targets, enrich.Target{Champion: champ, SourceID: id})
	}
	return targets
}

func snapshotDir() string {
	if dir := os.Getenv("SNAPSHOT_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func uploadLog(runLog *logger.RunLogger) {
	if config.Bucket.LogBucket == "" {
		return
	}
	objectKey := "pipeline/" + time.Now().Format("2006-01-02T15-04-05") + ".log"
	if err := runLog.UploadToS3Bucket(objectKey); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}
}
