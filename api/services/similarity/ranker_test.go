package similarity

import (
	"fmt"
	"testing"

	"raidbook/pkg/models/champion"

	"github.com/stretchr/testify/assert"
)

func simChampion(id, role, affinity, rarity string, ratings map[string]float64) *champion.Champion {
	return &champion.Champion{
		ID:       id,
		Name:     id,
		Slug:     id,
		Role:     role,
		Affinity: affinity,
		Rarity:   rarity,
		Ratings:  ratings,
	}
}

// Identical ratings on every shared key with a matching role must produce
// the fixed maximum of 1.25, the regression reference value.
func TestScoreReferenceValue(t *testing.T) {
	ratings := map[string]float64{"clan_boss": 4, "hydra": 3, "dungeons": 4.5}

	a := simChampion("a", "Attack", "Magic", "Epic", ratings)
	b := simChampion("b", "Attack", "Force", "Epic", ratings)
	assert.InDelta(t, 1.25, Score(a, b), 1e-9)

	// Matching affinity stacks the light multiplier on top.
	c := simChampion("c", "Attack", "Magic", "Epic", ratings)
	assert.InDelta(t, 1.25*1.03, Score(a, c), 1e-9)
}

// A pair with no shared rated key is incomparable and scores zero.
func TestScoreIncomparable(t *testing.T) {
	a := simChampion("a", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4})
	b := simChampion("b", "Defense", "Force", "Epic", map[string]float64{"hydra": 4})

	assert.Equal(t, 0.0, Score(a, b))
}

// The closeness term scales linearly with the rating distance.
func TestScoreCloseness(t *testing.T) {
	a := simChampion("a", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 5})
	b := simChampion("b", "Defense", "Force", "Epic", map[string]float64{"clan_boss": 2.5})

	// (5 - 2.5) / 5, no bonuses.
	assert.InDelta(t, 0.5, Score(a, b), 1e-9)
}

// The target itself and champions without a qualifying rating must never
// appear in the results.
func TestRankExcludesSelfAndUnrated(t *testing.T) {
	target := simChampion("target", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4})
	unrated := simChampion("unrated", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 1.5})
	peer := simChampion("peer", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4})

	catalog := []*champion.Champion{target, unrated, peer}
	results := Rank(target, catalog, 6)

	assert.Len(t, results, 1)
	assert.Equal(t, "peer", results[0].Champion.ID)
}

// A target without any qualifying rating has no neighbors at all.
func TestRankUnratedTarget(t *testing.T) {
	target := simChampion("target", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 1})
	peer := simChampion("peer", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4})

	assert.Empty(t, Rank(target, []*champion.Champion{target, peer}, 6))
}

// Shared strengths report the labels where both champions rate 3.5+.
func TestSharedStrengths(t *testing.T) {
	a := simChampion("a", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4.5, "hydra": 3, "dungeons": 4})
	b := simChampion("b", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4, "hydra": 5, "dungeons": 3.4})

	strengths := SharedStrengths(a, b)
	assert.Equal(t, []string{"Clan Boss"}, strengths)
}

func buildDiverseCatalog() (*champion.Champion, []*champion.Champion) {
	target := simChampion("target", "Attack", "Magic", "Legendary", map[string]float64{"clan_boss": 5, "hydra": 4})

	catalog := []*champion.Champion{target}
	for i := 0; i < 8; i++ {
		catalog = append(catalog, simChampion(
			fmt.Sprintf("legendary-%d", i), "Attack", "Magic", "Legendary",
			map[string]float64{"clan_boss": 4.9 - float64(i)*0.1, "hydra": 4},
		))
	}
	catalog = append(catalog,
		simChampion("force-pick", "Attack", "Force", "Legendary", map[string]float64{"clan_boss": 3.8, "hydra": 3.5}),
		simChampion("rare-pick", "Attack", "Magic", "Rare", map[string]float64{"clan_boss": 3, "hydra": 2.5}),
		simChampion("uncommon-pick", "Defense", "Spirit", "Uncommon", map[string]float64{"clan_boss": 2.5}),
	)

	return target, catalog
}

// The greedy selection must keep the result diversified: a affinity beyond
// the target's own and a Rare budget alternative must be present.
func TestRankDiversification(t *testing.T) {
	target, catalog := buildDiverseCatalog()

	results := Rank(target, catalog, 6)
	assert.Len(t, results, 6)

	var hasRare, hasOtherAffinity bool
	for _, r := range results {
		assert.NotEqual(t, "target", r.Champion.ID)
		if r.Champion.Rarity == "Rare" {
			hasRare = true
		}
		if r.Champion.Affinity != "Magic" {
			hasOtherAffinity = true
		}
	}

	assert.True(t, hasRare, "expected a Rare budget alternative")
	assert.True(t, hasOtherAffinity, "expected a second affinity represented")
}

// Results come back sorted by score descending.
func TestRankSorted(t *testing.T) {
	target, catalog := buildDiverseCatalog()

	results := Rank(target, catalog, 6)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

// For a fixed catalog the ranking is fully deterministic.
func TestRankDeterminism(t *testing.T) {
	target, catalog := buildDiverseCatalog()

	first := Rank(target, catalog, 6)
	second := Rank(target, catalog, 6)

	assert.Equal(t, first, second)
}

// With fewer eligible candidates than requested, everyone comes back.
func TestRankSmallCatalog(t *testing.T) {
	target := simChampion("target", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4})
	catalog := []*champion.Champion{
		target,
		simChampion("a", "Attack", "Magic", "Epic", map[string]float64{"clan_boss": 4}),
		simChampion("b", "Defense", "Force", "Rare", map[string]float64{"clan_boss": 3}),
	}

	results := Rank(target, catalog, 6)
	assert.Len(t, results, 2)
}
