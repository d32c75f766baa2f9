package guides

// The six mastery tree pairings. The first tree is where the capstone goes.
const (
	MasteryOffenseSupport = "Offense + Support"
	MasteryOffenseDefense = "Offense + Defense"
	MasteryDefenseSupport = "Defense + Support"
	MasteryDefenseOffense = "Defense + Offense"
	MasterySupportDefense = "Support + Defense"
	MasterySupportOffense = "Support + Offense"
)

// roleTemplate is the unconditional default build for a role.
type roleTemplate struct {
	gearSets       []string
	statPriorities []string
	gauntletsMain  string
	chestplateMain string
	bootsMain      string
	masteryTree    string
}

// roleTemplates maps each of the four roles to its default build.
// Out of table roles fall back to the Attack template.
var roleTemplates = map[string]roleTemplate{
	"Attack": {
		gearSets:       []string{"Savage", "Cruel"},
		statPriorities: []string{"SPD", "ATK%", "C.RATE", "C.DMG"},
		gauntletsMain:  "C.RATE",
		chestplateMain: "ATK%",
		bootsMain:      "SPD",
		masteryTree:    MasteryOffenseSupport,
	},
	"Defense": {
		gearSets:       []string{"Speed", "Resilience"},
		statPriorities: []string{"SPD", "DEF%", "HP%", "ACC"},
		gauntletsMain:  "DEF%",
		chestplateMain: "DEF%",
		bootsMain:      "SPD",
		masteryTree:    MasteryDefenseSupport,
	},
	"HP": {
		gearSets:       []string{"Immortal", "Speed"},
		statPriorities: []string{"SPD", "HP%", "DEF%", "ACC"},
		gauntletsMain:  "HP%",
		chestplateMain: "HP%",
		bootsMain:      "SPD",
		masteryTree:    MasteryDefenseSupport,
	},
	"Support": {
		gearSets:       []string{"Speed", "Perception"},
		statPriorities: []string{"SPD", "ACC", "HP%", "DEF%"},
		gauntletsMain:  "HP%",
		chestplateMain: "ACC",
		bootsMain:      "SPD",
		masteryTree:    MasterySupportDefense,
	},
}

// contentBuild is the per content area override table, with one gear pair
// per role within the area.
type contentBuild struct {
	gearSetsAttack  []string
	gearSetsDefense []string
	gearSetsHP      []string
	gearSetsSupport []string
	statFocus       []string
	noteSuffix      string
}

// Qualification threshold: B tier or better.
const qualifyingRating = 2.5

// The canonical content area order of the output. General always comes first.
var contentAreaOrder = []string{"Clan Boss", "Arena", "Dungeons", "Hydra", "Doom Tower", "Faction Wars"}

// contentBuilds maps each content area to its override table.
var contentBuilds = map[string]contentBuild{
	"Clan Boss": {
		gearSetsAttack:  []string{"Lifesteal", "Speed"},
		gearSetsDefense: []string{"Lifesteal", "Speed"},
		gearSetsHP:      []string{"Lifesteal", "Immortal"},
		gearSetsSupport: []string{"Lifesteal", "Perception"},
		statFocus:       []string{"SPD", "DEF%", "HP%", "ACC"},
		noteSuffix:      "Speed-tune to your Clan Boss team composition. Lifesteal ensures survivability over long fights.",
	},
	"Arena": {
		gearSetsAttack:  []string{"Savage", "Cruel"},
		gearSetsDefense: []string{"Stone Skin", "Resilience"},
		gearSetsHP:      []string{"Swift Parry", "Immortal"},
		gearSetsSupport: []string{"Speed", "Perception"},
		statFocus:       []string{"SPD", "ATK%", "C.RATE", "C.DMG"},
		noteSuffix:      "Speed is king in Arena — go first or build tanky enough to survive the opener.",
	},
	"Dungeons": {
		gearSetsAttack:  []string{"Savage", "Speed"},
		gearSetsDefense: []string{"Speed", "Accuracy"},
		gearSetsHP:      []string{"Regeneration", "Immortal"},
		gearSetsSupport: []string{"Speed", "Perception"},
		statFocus:       []string{"SPD", "ACC", "HP%", "C.RATE"},
		noteSuffix:      "Balance speed with survivability for consistent dungeon clears.",
	},
	"Hydra": {
		gearSetsAttack:  []string{"Relentless", "Speed"},
		gearSetsDefense: []string{"Relentless", "Perception"},
		gearSetsHP:      []string{"Regeneration", "Perception"},
		gearSetsSupport: []string{"Relentless", "Perception"},
		statFocus:       []string{"SPD", "ACC", "HP%", "DEF%"},
		noteSuffix:      "Accuracy is critical for landing debuffs on Hydra heads. Build tanky to survive head slams.",
	},
	"Doom Tower": {
		gearSetsAttack:  []string{"Savage", "Perception"},
		gearSetsDefense: []string{"Speed", "Perception"},
		gearSetsHP:      []string{"Regeneration", "Perception"},
		gearSetsSupport: []string{"Speed", "Perception"},
		statFocus:       []string{"SPD", "ACC", "HP%", "DEF%"},
		noteSuffix:      "Doom Tower bosses require specific mechanics — adapt gear to the floor and rotation.",
	},
	"Faction Wars": {
		gearSetsAttack:  []string{"Lifesteal", "Speed"},
		gearSetsDefense: []string{"Lifesteal", "Speed"},
		gearSetsHP:      []string{"Lifesteal", "Immortal"},
		gearSetsSupport: []string{"Speed", "Perception"},
		statFocus:       []string{"SPD", "HP%", "ACC", "DEF%"},
		noteSuffix:      "Faction Wars limits your roster to one faction, so survivability and self-sustain are key.",
	},
}

// gearSetsFor picks the gear pair of the area for the given role.
func (cb *contentBuild) gearSetsFor(role string) []string {
	switch role {
	case "Defense":
		return cb.gearSetsDefense
	case "HP":
		return cb.gearSetsHP
	case "Support":
		return cb.gearSetsSupport
	default:
		return cb.gearSetsAttack
	}
}

// areaRatingKeys maps a content area to the rating keys that qualify it.
// Arena qualifies on the better of the two arena ratings.
var areaRatingKeys = map[string][]string{
	"Clan Boss":    {"clan_boss"},
	"Arena":        {"arena_offense", "arena_defense"},
	"Dungeons":     {"dungeons"},
	"Hydra":        {"hydra"},
	"Doom Tower":   {"doom_tower"},
	"Faction Wars": {"faction_wars"},
}

// The four starter champions always get a fixed farming build.
var starterSlugs = map[string]bool{
	"kael":   true,
	"athel":  true,
	"elhain": true,
	"galek":  true,
}

var starterGearSets = []string{"Lifesteal", "Speed"}
