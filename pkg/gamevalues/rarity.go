package gamevalues

// RarityOrder lists the rarities from weakest to strongest.
var RarityOrder = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary", "Mythical"}

// RarityIndex returns the position of the rarity on the order, or -1 for
// unknown values so they never compare as lower than a real rarity.
func RarityIndex(rarity string) int {
	for i, r := range RarityOrder {
		if r == rarity {
			return i
		}
	}
	return -1
}

// The four affinities.
var Affinities = []string{"Magic", "Force", "Spirit", "Void"}

// The four roles.
var Roles = []string{"Attack", "Defense", "HP", "Support"}

// RoleAliases normalizes the role values seen across the source feeds.
var RoleAliases = map[string]string{
	"Attack":  "Attack",
	"Defense": "Defense",
	"Support": "Support",
	"HP":      "HP",
	"ATK":     "Attack",
	"DEF":     "Defense",
	"Atk":     "Attack",
	"Def":     "Defense",
	"Supp":    "Support",
	// Placeholder role used upstream for unreleased champions.
	"TBC": "Support",
}

// NormalizeRole maps any known alias to the canonical role name.
// Unknown values are returned unchanged.
func NormalizeRole(role string) string {
	if canonical, ok := RoleAliases[role]; ok {
		return canonical
	}
	return role
}
