// Package similarity computes a weighted similarity score between champions
// from their per content ratings and returns a diversified top K neighbor
// set. Invoked live against the already loaded catalog.
package similarity

import (
	"sort"

	"raidbook/pkg/gamevalues"
	"raidbook/pkg/models/champion"
)

// Bonuses applied after the weighted mean.
const (
	roleMatchBonus = 1.25
	// Affinity is a light tiebreaker only. An earlier revision used 1.10,
	// which let affinity dominate the ranking.
	affinityMatchBonus = 1.03
)

// A champion needs at least one weighted rating at this level to be
// comparable at all.
const minQualifyingRating = 2.0

// Both champions rating at this level marks a shared strength.
const strengthThreshold = 3.5

// Size of the head pool the diversification works from.
const poolSize = 20

// DefaultCount is the default result size.
const DefaultCount = 6

// Fixed iteration order over the weighted rating keys, so scores and the
// strength labels come out deterministic.
var weightedKeys = []string{
	gamevalues.AreaClanBoss,
	gamevalues.AreaHydra,
	gamevalues.AreaArenaOffense,
	gamevalues.AreaSpider,
	gamevalues.AreaFireKnight,
	gamevalues.AreaIronTwins,
	gamevalues.AreaDoomTower,
	gamevalues.AreaDungeons,
	gamevalues.AreaDragon,
	gamevalues.AreaIceGolem,
	gamevalues.AreaSandDevil,
	gamevalues.AreaPhantomGrove,
	gamevalues.AreaChimera,
	gamevalues.AreaFactionWars,
}

// Result is a single ranked neighbor.
type Result struct {
	Champion        *champion.Champion `json:"champion"`
	Score           float64            `json:"score"`
	SharedStrengths []string           `json:"sharedStrengths"`
}

// Score computes the weighted similarity between two champions over the
// rating keys both have. Returns 0 for a incomparable pair.
func Score(a, b *champion.Champion) float64 {
	var weightedSum, totalWeight float64

	for _, key := range weightedKeys {
		rA, okA := a.Rating(key)
		rB, okB := b.Rating(key)
		if !okA || !okB {
			continue
		}

		weight := float64(gamevalues.RatingWeights[key])
		closeness := (5 - abs(rA-rB)) / 5
		weightedSum += closeness * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	score := weightedSum / totalWeight

	if a.Role == b.Role {
		score *= roleMatchBonus
	}
	if a.Affinity == b.Affinity {
		score *= affinityMatchBonus
	}

	return score
}

// SharedStrengths lists the content labels where both champions rate at
// least 3.5. Reporting only, no effect on the score.
func SharedStrengths(a, b *champion.Champion) []string {
	var strengths []string
	for _, key := range weightedKeys {
		rA, okA := a.Rating(key)
		rB, okB := b.Rating(key)
		if okA && okB && rA >= strengthThreshold && rB >= strengthThreshold {
			strengths = append(strengths, gamevalues.AreaLabel(key))
		}
	}
	return strengths
}

// hasQualifyingRatings reports whether the champion has any weighted rating
// of 2 or better. Without one it is not similar to anything, and nothing is
// similar to it.
func hasQualifyingRatings(c *champion.Champion) bool {
	for _, key := range weightedKeys {
		if rating, ok := c.Rating(key); ok && rating >= minQualifyingRating {
			return true
		}
	}
	return false
}

// Rank returns up to count champions similar to the target, diversified
// across affinity and rarity. Deterministic for a fixed catalog: score ties
// keep the catalog iteration order.
func Rank(target *champion.Champion, catalog []*champion.Champion, count int) []Result {
	if count <= 0 {
		count = DefaultCount
	}
	if !hasQualifyingRatings(target) {
		return []Result{}
	}

	// Score every eligible candidate, keeping catalog order for ties.
	scored := make([]Result, 0, len(catalog))
	for _, candidate := range catalog {
		if candidate.ID == target.ID {
			continue
		}
		if !hasQualifyingRatings(candidate) {
			continue
		}

		score := Score(target, candidate)
		if score <= 0 {
			continue
		}
		scored = append(scored, Result{
			Champion:        candidate,
			Score:           score,
			SharedStrengths: SharedStrengths(target, candidate),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	pool := scored
	if len(pool) > poolSize {
		pool = scored[:poolSize]
	}
	if len(pool) <= count {
		return pool
	}

	selected := newSelection(count)

	// 1. The two absolute best matches always make it.
	for _, r := range pool[:2] {
		selected.add(r)
	}

	// 2. Best candidate from a affinity not represented yet.
	for _, r := range pool {
		if selected.has(r) || selected.affinityRepresented(r.Champion.Affinity) {
			continue
		}
		selected.add(r)
		break
	}

	// 3. Budget alternative: guarantee one candidate of lower rarity than
	// the target. The full scored list is searched so availability doesn't
	// depend on the pool cut.
	targetRarity := gamevalues.RarityIndex(target.Rarity)
	if !selected.hasLowerRarity(targetRarity) {
		for _, r := range scored {
			if selected.has(r) {
				continue
			}
			if gamevalues.RarityIndex(r.Champion.Rarity) < targetRarity {
				selected.add(r)
				break
			}
		}
	}

	// 4. Rare guarantee for accessibility when the target sits above Rare.
	rareIdx := gamevalues.RarityIndex("Rare")
	if targetRarity > rareIdx && !selected.hasRarity("Rare") {
		for _, r := range scored {
			if selected.has(r) {
				continue
			}
			if r.Champion.Rarity == "Rare" {
				selected.add(r)
				break
			}
		}
	}

	// 5. Fill the remaining slots purely by score.
	for _, r := range pool {
		if selected.full() {
			break
		}
		if selected.has(r) {
			continue
		}
		selected.add(r)
	}

	result := selected.results()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	if len(result) > count {
		result = result[:count]
	}
	return result
}

// selection tracks the picked champions and the represented categories.
type selection struct {
	count  int
	picked []Result
	ids    map[string]bool
}

func newSelection(count int) *selection {
	return &selection{
		count: count,
		ids:   make(map[string]bool, count),
	}
}

func (s *selection) add(r Result) {
	if s.ids[r.Champion.ID] {
		return
	}
	s.picked = append(s.picked, r)
	s.ids[r.Champion.ID] = true
}

func (s *selection) has(r Result) bool {
	return s.ids[r.Champion.ID]
}

func (s *selection) full() bool {
	return len(s.picked) >= s.count
}

func (s *selection) affinityRepresented(affinity string) bool {
	for _, r := range s.picked {
		if r.Champion.Affinity == affinity {
			return true
		}
	}
	return false
}

func (s *selection) hasLowerRarity(rarityIdx int) bool {
	for _, r := range s.picked {
		if gamevalues.RarityIndex(r.Champion.Rarity) < rarityIdx {
			return true
		}
	}
	return false
}

func (s *selection) hasRarity(rarity string) bool {
	for _, r := range s.picked {
		if r.Champion.Rarity == rarity {
			return true
		}
	}
	return false
}

func (s *selection) results() []Result {
	return s.picked
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
