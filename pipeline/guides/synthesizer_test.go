package guides

import (
	"testing"

	"raidbook/pkg/models/champion"
	"raidbook/pkg/models/guide"

	"github.com/stretchr/testify/assert"
)

func makeChampion(slug, role string, skillCount int, ratings map[string]float64) *champion.Champion {
	skills := make([]champion.Skill, skillCount)
	for i := range skills {
		skills[i] = champion.Skill{Name: "Skill"}
	}
	return &champion.Champion{
		Name:    slug,
		Slug:    slug,
		Role:    role,
		Skills:  skills,
		Ratings: ratings,
	}
}

// Run tests on the skill booking recommendation.
func TestSkillBookingOrder(t *testing.T) {
	tests := []struct {
		name       string
		skillCount int
		expected   []int
	}{
		{name: "fourSkills", skillCount: 4, expected: []int{3, 2}},
		{name: "threeSkills", skillCount: 3, expected: []int{2, 1}},
		{name: "twoSkills", skillCount: 2, expected: []int{1}},
		{name: "oneSkill", skillCount: 1, expected: nil},
		{name: "noSkills", skillCount: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, skillBookingOrder(tt.skillCount))
		})
	}
}

// The General guide is always first and always present.
func TestSynthesizeGeneralAlwaysFirst(t *testing.T) {
	champ := makeChampion("tomb-lord", "Support", 3, map[string]float64{"overall": 4})

	guides := Synthesize(champ)

	assert.NotEmpty(t, guides)
	assert.Equal(t, "General", guides[0].ContentArea)
}

// Specialized guides follow the canonical content area order.
func TestSynthesizeCanonicalOrder(t *testing.T) {
	champ := makeChampion("versatile", "Defense", 3, map[string]float64{
		"overall":      4.5,
		"faction_wars": 4,
		"clan_boss":    4,
		"hydra":        4,
	})

	guides := Synthesize(champ)

	areas := make([]string, 0, len(guides))
	for _, g := range guides {
		areas = append(areas, g.ContentArea)
	}

	assert.Equal(t, "General", areas[0])

	// Whatever survived dedup must respect the canonical order.
	rank := map[string]int{"Clan Boss": 1, "Arena": 2, "Dungeons": 3, "Hydra": 4, "Doom Tower": 5, "Faction Wars": 6}
	for i := 2; i < len(areas); i++ {
		assert.Less(t, rank[areas[i-1]], rank[areas[i]])
	}
}

// Areas rated below the threshold must not get a specialized guide.
func TestSynthesizeQualificationThreshold(t *testing.T) {
	champ := makeChampion("mediocre", "Attack", 3, map[string]float64{
		"overall":   3,
		"clan_boss": 2.4,
		"dungeons":  2.5,
	})

	guides := Synthesize(champ)

	for _, g := range guides {
		assert.NotEqual(t, "Clan Boss", g.ContentArea)
	}
}

// Arena qualification takes the better of the two arena ratings.
func TestSynthesizeArenaUsesBestRating(t *testing.T) {
	champ := makeChampion("turtle", "Defense", 3, map[string]float64{
		"overall":       3.5,
		"arena_offense": 1,
		"arena_defense": 4,
	})

	guides := Synthesize(champ)

	found := false
	for _, g := range guides {
		if g.ContentArea == "Arena" {
			found = true
		}
	}
	assert.True(t, found)
}

// No specialized guide may share the General guide's mechanical fingerprint.
func TestSynthesizeDedupInvariant(t *testing.T) {
	champs := []*champion.Champion{
		makeChampion("kael", "Attack", 4, map[string]float64{"overall": 4.2, "clan_boss": 4, "arena_offense": 3, "dungeons": 4.5}),
		makeChampion("turtle", "Defense", 3, map[string]float64{"overall": 3.8, "clan_boss": 3, "faction_wars": 3}),
		makeChampion("healer", "Support", 3, map[string]float64{"overall": 4.8, "hydra": 4.7, "doom_tower": 4.5, "arena_defense": 4}),
		makeChampion("wall", "HP", 2, map[string]float64{"overall": 4, "clan_boss": 4.6}),
	}

	for _, champ := range champs {
		guides := Synthesize(champ)

		prints := make(map[string]string)
		for _, g := range guides {
			area, exists := prints[g.Fingerprint()]
			assert.False(t, exists, "guide %s duplicates %s for %s", g.ContentArea, area, champ.Slug)
			prints[g.Fingerprint()] = g.ContentArea
		}
	}
}

// The starter champions always get the fixed farming build with the note
// prefix, regardless of role template.
func TestSynthesizeStarterOverride(t *testing.T) {
	champ := makeChampion("kael", "Attack", 4, map[string]float64{"overall": 4.2})

	guides := Synthesize(champ)

	general := guides[0]
	assert.Equal(t, []string{"Lifesteal", "Speed"}, general.GearSets)
	assert.Contains(t, general.Notes, "As a starter champion, Lifesteal gear is essential for early progression.")
}

// Attack champions with a top arena offense rating get Savage+Cruel on the
// General build.
func TestSynthesizeArenaNukerOverride(t *testing.T) {
	champ := makeChampion("nuker", "Attack", 3, map[string]float64{
		"overall":       4.5,
		"arena_offense": 4.7,
	})

	guides := Synthesize(champ)
	assert.Equal(t, []string{"Savage", "Cruel"}, guides[0].GearSets)

	// The override doesn't apply to other roles.
	support := makeChampion("speedster", "Support", 3, map[string]float64{
		"overall":       4.5,
		"arena_offense": 4.7,
	})
	guides = Synthesize(support)
	assert.Equal(t, []string{"Speed", "Perception"}, guides[0].GearSets)
}

// Out of table roles fall back to the Attack template.
func TestSynthesizeUnknownRoleFallback(t *testing.T) {
	champ := makeChampion("mystery", "TBC", 3, map[string]float64{"overall": 3})

	guides := Synthesize(champ)

	// TBC normalizes to Support, so use a truly unknown role too.
	unknown := makeChampion("stranger", "Overlord", 3, map[string]float64{"overall": 3})
	unknownGuides := Synthesize(unknown)

	assert.Equal(t, []string{"Savage", "Cruel"}, unknownGuides[0].GearSets)
	assert.NotEmpty(t, guides)
}

// Clan Boss specialized builds pin the defensive main stats.
func TestSynthesizeClanBossMainStats(t *testing.T) {
	champ := makeChampion("bruiser", "Attack", 3, map[string]float64{
		"overall":   4,
		"clan_boss": 4.5,
	})

	guides := Synthesize(champ)

	var clanBoss *guide.ChampionGuide
	for i := range guides {
		if guides[i].ContentArea == "Clan Boss" {
			clanBoss = &guides[i]
		}
	}

	if assert.NotNil(t, clanBoss) {
		assert.Equal(t, []string{"Lifesteal", "Speed"}, clanBoss.GearSets)
		assert.Equal(t, "DEF%", clanBoss.GauntletsMain)
		assert.Equal(t, "DEF%", clanBoss.ChestplateMain)
		assert.Equal(t, "SPD", clanBoss.BootsMain)
		assert.Equal(t, MasteryOffenseDefense, clanBoss.MasteryTree)
	}
}
