package reconcile

import (
	"testing"

	"raidbook/pipeline/sources/hellhades"
	"raidbook/pipeline/sources/inteleria"

	"github.com/stretchr/testify/assert"
)

// Every source A record with a exact source B counterpart must produce a
// catalog of size |A| with zero unmatched and zero appended.
func TestReconcileExactCounterparts(t *testing.T) {
	sourceA := []inteleria.Champion{
		{Name: "Kael", Affinity: "Magic", Rarity: "Rare", Type: "ATK"},
		{Name: "Athel", Affinity: "Magic", Rarity: "Rare", Type: "ATK"},
		{Name: "Elhain", Affinity: "Magic", Rarity: "Rare", Type: "ATK"},
	}
	sourceB := []hellhades.Champion{
		{Champion: "Kael", OverallUser: 4.2},
		{Champion: "Athel", OverallUser: 4.1},
		{Champion: "Elhain", OverallUser: 4.0},
	}

	catalog, summary := Reconcile(sourceA, sourceB)

	assert.Len(t, catalog, len(sourceA))
	assert.Equal(t, len(sourceA), summary.Matched)
	assert.Equal(t, 0, summary.UnmatchedA)
	assert.Equal(t, 0, summary.AppendedB)
}

// End-to-end merge of a single champion across both feeds.
func TestReconcileKael(t *testing.T) {
	sourceA := []inteleria.Champion{
		{
			Name:     `<a href="/champion/kael">Kael</a>`,
			Image:    `<img src='https://cdn.example.com/kael.png'>`,
			Faction:  "Dark Elves",
			Rarity:   "Rare",
			Affinity: "Magic",
			Type:     "ATK",
			HP:       13710,
			ATK:      1200,
			DEF:      914,
			SPD:      103,
			CRate:    0.15,
			CDmg:     0.57,
			RES:      30,
			ACC:      0,
		},
	}
	sourceB := []hellhades.Champion{
		{Champion: "Kael", ClanBoss: 4, ArenaRating: 3},
	}

	catalog, summary := Reconcile(sourceA, sourceB)

	assert.Len(t, catalog, 1)
	assert.Equal(t, 1, summary.Matched)

	kael := catalog[0]
	assert.Equal(t, "Kael", kael.Name)
	assert.Equal(t, "kael", kael.Slug)
	assert.Equal(t, "Attack", kael.Role)
	assert.Equal(t, "https://cdn.example.com/kael.png", kael.AvatarURL)
	assert.Equal(t, 1200, kael.Stats["6"].ATK)
	assert.Equal(t, 103, kael.Stats["6"].SPD)
	assert.Equal(t, 15, kael.Stats["6"].CritRate)
	assert.Equal(t, float64(4), kael.Ratings["clan_boss"])
	assert.Equal(t, float64(3), kael.Ratings["arena_offense"])
}

// Source B only champions are appended as stats-less entries.
func TestReconcileAppendsSourceBOnly(t *testing.T) {
	sourceA := []inteleria.Champion{
		{Name: "Kael", Affinity: "Magic", Rarity: "Rare", Type: "ATK"},
	}
	sourceB := []hellhades.Champion{
		{Champion: "Kael", OverallUser: 4.2},
		{Champion: "Mithrala Lifebane", FactionIndex: "dark-elves", Rarity: "Legendary", Role: "Support", OverallUser: 4.9},
	}

	catalog, summary := Reconcile(sourceA, sourceB)

	assert.Len(t, catalog, 2)
	assert.Equal(t, 1, summary.AppendedB)

	mithrala := catalog[1]
	assert.Equal(t, "mithrala-lifebane", mithrala.Slug)
	assert.Equal(t, "Dark Elves", mithrala.Faction)
	assert.Empty(t, mithrala.Stats)
	assert.Equal(t, 4.9, mithrala.Ratings["overall"])
}

// Same display name on source A twice. The second gets the affinity suffix
// instead of clobbering the first.
func TestReconcileSlugCollision(t *testing.T) {
	sourceA := []inteleria.Champion{
		{Name: "Hakkorhn Smashlord", Affinity: "Magic", Rarity: "Epic", Type: "HP"},
		{Name: "Hakkorhn Smashlord", Affinity: "Void", Rarity: "Legendary", Type: "HP"},
	}

	catalog, summary := Reconcile(sourceA, nil)

	assert.Len(t, catalog, 2)
	assert.Equal(t, "hakkorhn-smashlord", catalog[0].Slug)
	assert.Equal(t, "hakkorhn-smashlord-void", catalog[1].Slug)
	assert.Equal(t, 0, summary.SkippedSlugs)
}

// Duplicate normalized keys on source B are dropped first wins and counted.
func TestMatcherDuplicateKeys(t *testing.T) {
	sourceB := []hellhades.Champion{
		{Champion: "Ma’Shalled", ClanBoss: 5},
		{Champion: "MaShalled", ClanBoss: 1},
	}

	matcher := NewMatcher(sourceB)
	assert.Equal(t, 1, matcher.duplicates)

	// Exact lookup still resolves each spelling on its own.
	match := matcher.Match("Ma’Shalled")
	assert.NotNil(t, match)
	assert.Equal(t, float64(5), match.ClanBoss)

	// The normalized fallback keeps the first encountered record.
	match = matcher.Match("Ma'Shalled")
	assert.NotNil(t, match)
	assert.Equal(t, float64(5), match.ClanBoss)
}

// The InTeleria community average fills the overall rating only when
// HellHades has none.
func TestReconcileOverallFallback(t *testing.T) {
	sourceA := []inteleria.Champion{
		{Name: "Kael", Affinity: "Magic", Rarity: "Rare", Type: "ATK", RatingAvg: "4.35"},
		{Name: "Athel", Affinity: "Magic", Rarity: "Rare", Type: "ATK", RatingAvg: "4.10"},
	}
	sourceB := []hellhades.Champion{
		{Champion: "Athel", OverallUser: 3.8},
	}

	catalog, _ := Reconcile(sourceA, sourceB)

	assert.Equal(t, 4.35, catalog[0].Ratings["overall"])
	assert.Equal(t, 3.8, catalog[1].Ratings["overall"])
}
