// Package guides deterministically expands a champion's role and ratings
// into structured build guides from static rule tables. No randomness and
// no external calls: the same champion always yields the same guides.
package guides

import (
	"strings"

	"raidbook/pkg/gamevalues"
	"raidbook/pkg/models/champion"
	"raidbook/pkg/models/guide"
)

// Synthesize generates the General guide plus one guide per qualifying
// content area, in the canonical order, with mechanical duplicates of the
// General guide dropped.
func Synthesize(champ *champion.Champion) []guide.ChampionGuide {
	role := gamevalues.NormalizeRole(champ.Role)
	template, ok := roleTemplates[role]
	if !ok {
		// Out of table role, the Attack template is the documented fallback.
		template = roleTemplates["Attack"]
	}

	bookingOrder := skillBookingOrder(len(champ.Skills))

	general := generalGuide(champ, role, template, bookingOrder)
	result := []guide.ChampionGuide{general}

	generalPrint := general.Fingerprint()
	for _, area := range contentAreaOrder {
		if !qualifies(champ, area) {
			continue
		}

		specialized := contentGuide(champ, role, template, area, bookingOrder)

		// A specialized build only earns its place when it differs
		// mechanically from the General one.
		if specialized.Fingerprint() == generalPrint {
			continue
		}
		result = append(result, specialized)
	}

	return result
}

// skillBookingOrder recommends booking the later skills first: the last
// skill, then the second to last. Indices are 0-based into the ability order.
func skillBookingOrder(skillCount int) []int {
	switch {
	case skillCount >= 3:
		return []int{skillCount - 1, skillCount - 2}
	case skillCount == 2:
		return []int{1}
	default:
		return nil
	}
}

// qualifies reports whether the champion's rating for the area is B tier or
// better. Arena takes the best of the offense and defense ratings.
func qualifies(champ *champion.Champion, area string) bool {
	best := 0.0
	for _, key := range areaRatingKeys[area] {
		if rating, ok := champ.Rating(key); ok && rating > best {
			best = rating
		}
	}
	return best >= qualifyingRating
}

// generalGuide builds the unconditional default guide, with the two
// special case overrides applied in order: starter champions get the fixed
// farming build, then high arena Attack champions get Savage+Cruel.
func generalGuide(champ *champion.Champion, role string, template roleTemplate, bookingOrder []int) guide.ChampionGuide {
	g := guide.ChampionGuide{
		ContentArea:       "General",
		GearSets:          append([]string(nil), template.gearSets...),
		StatPriorities:    append([]string(nil), template.statPriorities...),
		GauntletsMain:     template.gauntletsMain,
		ChestplateMain:    template.chestplateMain,
		BootsMain:         template.bootsMain,
		MasteryTree:       template.masteryTree,
		SkillBookingOrder: bookingOrder,
		Notes:             generalNote(champ, role),
	}

	if starterSlugs[champ.Slug] {
		g.GearSets = append([]string(nil), starterGearSets...)
		g.Notes = strings.Replace(g.Notes, "Prioritize",
			"As a starter champion, Lifesteal gear is essential for early progression. Prioritize", 1)
	}

	if arena, ok := champ.Rating("arena_offense"); ok && role == "Attack" && arena >= 4.5 {
		g.GearSets = []string{"Savage", "Cruel"}
	}

	return g
}

// contentGuide builds a specialized guide for a qualifying content area,
// starting from the area tables and applying the area+role exception rows
// for stats, main stat slots and the mastery tree.
func contentGuide(champ *champion.Champion, role string, template roleTemplate, area string, bookingOrder []int) guide.ChampionGuide {
	build := contentBuilds[area]

	statPriorities := append([]string(nil), build.statFocus...)
	switch {
	case area == "Arena" && role == "Attack":
		statPriorities = []string{"SPD", "ATK%", "C.RATE", "C.DMG"}
	case area == "Clan Boss":
		statPriorities = []string{"SPD", "DEF%", "HP%", "ACC"}
	case area == "Hydra":
		statPriorities = []string{"SPD", "ACC", "HP%", "DEF%"}
	}

	gauntlets := template.gauntletsMain
	chestplate := template.chestplateMain
	switch {
	case area == "Clan Boss":
		if role == "Attack" {
			gauntlets = "DEF%"
		} else {
			gauntlets = "HP%"
		}
		chestplate = "DEF%"
	case area == "Arena" && role == "Attack":
		gauntlets = "C.DMG"
		chestplate = "ATK%"
	case area == "Hydra":
		if role == "Attack" {
			gauntlets = "C.RATE"
		} else {
			gauntlets = "HP%"
		}
		chestplate = "ACC"
	}

	masteryTree := template.masteryTree
	switch {
	case area == "Clan Boss" && role == "Attack":
		masteryTree = MasteryOffenseDefense
	case area == "Arena" && role == "Attack":
		masteryTree = MasteryOffenseSupport
	}

	return guide.ChampionGuide{
		ContentArea:       area,
		GearSets:          append([]string(nil), build.gearSetsFor(role)...),
		StatPriorities:    statPriorities,
		GauntletsMain:     gauntlets,
		ChestplateMain:    chestplate,
		BootsMain:         "SPD", // specialized builds always run speed boots
		MasteryTree:       masteryTree,
		SkillBookingOrder: bookingOrder,
		Notes:             contentNote(champ, role, area),
	}
}
