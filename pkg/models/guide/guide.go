package guide

import (
	"fmt"
	"strings"
)

// ChampionGuide is a derived build recommendation for a champion.
// Each champion gets a General guide plus zero or more content area guides.
type ChampionGuide struct {
	ContentArea       string   `json:"content_area"`
	GearSets          []string `json:"gear_sets"`
	StatPriorities    []string `json:"stat_priorities"`
	GauntletsMain     string   `json:"gauntlets_main"`
	ChestplateMain    string   `json:"chestplate_main"`
	BootsMain         string   `json:"boots_main"`
	SkillBookingOrder []int    `json:"skill_booking_order,omitempty"`
	MasteryTree       string   `json:"mastery_tree"`
	Notes             string   `json:"notes"`
}

// Fingerprint returns a stable key over the mechanical fields of the guide.
// ContentArea and Notes are excluded: a specialized guide only earns its
// place when it differs mechanically from the General one.
func (g *ChampionGuide) Fingerprint() string {
	var builder strings.Builder

	builder.WriteString(strings.Join(g.GearSets, ","))
	builder.WriteString("|")
	builder.WriteString(strings.Join(g.StatPriorities, ","))
	builder.WriteString("|")
	builder.WriteString(g.GauntletsMain)
	builder.WriteString("|")
	builder.WriteString(g.ChestplateMain)
	builder.WriteString("|")
	builder.WriteString(g.BootsMain)
	builder.WriteString("|")
	for i, idx := range g.SkillBookingOrder {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(fmt.Sprint(idx))
	}
	builder.WriteString("|")
	builder.WriteString(g.MasteryTree)

	return builder.String()
}
