// Package enrich backfills missing skill data on the reconciled catalog.
// Fetches run in bounded batches with a fixed delay between them, and a
// single champion failing must never abort or stall the batch.
package enrich

import (
	"context"
	"sync"
	"time"

	"raidbook/pkg/logger"
	"raidbook/pkg/models/champion"
	"raidbook/pkg/redis"
)

// SkillSource is the injected collaborator that fetches the skill list for
// a single source id. Implementations return nil on any failure.
type SkillSource interface {
	Skills(id int) []champion.Skill
}

// ProgressStore marks champions that were already enriched, so a rerun of
// the pipeline can resume instead of hammering the source again.
type ProgressStore interface {
	Done(ctx context.Context, slug string) bool
	MarkDone(ctx context.Context, slug string)
}

// Target pairs a catalog entry with its source id on the skills endpoint.
type Target struct {
	Champion *champion.Champion
	SourceID int
}

// Enricher runs the skill backfill.
type Enricher struct {
	source     SkillSource
	progress   ProgressStore
	batchSize  int
	batchDelay time.Duration
	log        *logger.RunLogger
}

// Counts of a backfill run.
type Result struct {
	Filled  int
	Skipped int
	Empty   int
}

// NewEnricher creates a enricher with the given collaborators.
func NewEnricher(source SkillSource, progress ProgressStore, batchSize int, batchDelay time.Duration, log *logger.RunLogger) *Enricher {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &Enricher{
		source:     source,
		progress:   progress,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		log:        log,
	}
}

// BackfillSkills fetches the skills for every target that still misses them.
// Targets inside a batch run in parallel, batches are separated by the fixed
// delay to respect the source rate limits.
func (e *Enricher) BackfillSkills(ctx context.Context, targets []Target) Result {
	var (
		result Result
		mu     sync.Mutex
	)

	for start := 0; start < len(targets); start += e.batchSize {
		if ctx.Err() != nil {
			break
		}

		end := start + e.batchSize
		if end > len(targets) {
			end = len(targets)
		}

		var wg sync.WaitGroup
		for _, target := range targets[start:end] {
			if len(target.Champion.Skills) > 0 {
				continue
			}
			if e.progress != nil && e.progress.Done(ctx, target.Champion.Slug) {
				mu.Lock()
				result.Skipped++
				mu.Unlock()
				continue
			}

			wg.Add(1)
			go func(target Target) {
				defer wg.Done()

				// The source swallows its own failures into a nil
				// result, so there is nothing to propagate here.
				skills := e.source.Skills(target.SourceID)

				mu.Lock()
				defer mu.Unlock()
				if len(skills) == 0 {
					result.Empty++
					return
				}

				target.Champion.Skills = skills
				result.Filled++
				if e.progress != nil {
					e.progress.MarkDone(ctx, target.Champion.Slug)
				}
			}(target)
		}
		wg.Wait()

		if end < len(targets) {
			if e.log != nil {
				e.log.Infof("Enriched %d/%d champions", end, len(targets))
			}
			time.Sleep(e.batchDelay)
		}
	}

	return result
}

// RedisProgress stores the enrichment markers on Redis.
type RedisProgress struct {
	client *redis.RedisClient
	ttl    time.Duration
}

const progressPrefix = "enrich:skills:"

// NewRedisProgress creates the Redis backed progress store.
func NewRedisProgress(client *redis.RedisClient, ttl time.Duration) *RedisProgress {
	return &RedisProgress{client: client, ttl: ttl}
}

// Done returns whether the champion was already enriched on a previous run.
// A Redis failure just means the work is redone, so the error is dropped.
func (p *RedisProgress) Done(ctx context.Context, slug string) bool {
	exists, err := p.client.Exists(ctx, progressPrefix+slug)
	return err == nil && exists
}

// MarkDone marks the champion as enriched.
func (p *RedisProgress) MarkDone(ctx context.Context, slug string) {
	p.client.Set(ctx, progressPrefix+slug, "1", p.ttl)
}
