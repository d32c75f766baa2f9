package gamevalues

// Content area rating keys as they appear on the champion ratings map.
const (
	AreaOverall      = "overall"
	AreaClanBoss     = "clan_boss"
	AreaHydra        = "hydra"
	AreaChimera      = "chimera"
	AreaArenaOffense = "arena_offense"
	AreaArenaDefense = "arena_defense"
	AreaDungeons     = "dungeons"
	AreaSpider       = "spider"
	AreaDragon       = "dragon"
	AreaFireKnight   = "fire_knight"
	AreaIceGolem     = "ice_golem"
	AreaIronTwins    = "iron_twins"
	AreaSandDevil    = "sand_devil"
	AreaPhantomGrove = "phantom_grove"
	AreaDoomTower    = "doom_tower"
	AreaFactionWars  = "faction_wars"
)

// RatingWeights gives the importance of each content area when comparing
// champions. Major content weighs 3, secondary 2, minor 1. The overall
// rating is an aggregate and carries no weight of its own.
var RatingWeights = map[string]int{
	AreaOverall:      0,
	AreaClanBoss:     3,
	AreaHydra:        3,
	AreaArenaOffense: 3,
	AreaSpider:       2,
	AreaFireKnight:   2,
	AreaIronTwins:    2,
	AreaDoomTower:    2,
	AreaDungeons:     1,
	AreaDragon:       1,
	AreaIceGolem:     1,
	AreaSandDevil:    1,
	AreaPhantomGrove: 1,
	AreaChimera:      1,
	AreaFactionWars:  1,
}

// AreaLabels maps rating keys to their display labels.
var AreaLabels = map[string]string{
	AreaClanBoss:     "Clan Boss",
	AreaHydra:        "Hydra",
	AreaChimera:      "Chimera",
	AreaArenaOffense: "Arena",
	AreaSpider:       "Spider",
	AreaDragon:       "Dragon",
	AreaFireKnight:   "Fire Knight",
	AreaIceGolem:     "Ice Golem",
	AreaIronTwins:    "Iron Twins",
	AreaSandDevil:    "Sand Devil",
	AreaPhantomGrove: "Phantom Shogun",
	AreaDoomTower:    "Doom Tower",
	AreaFactionWars:  "Faction Wars",
	AreaDungeons:     "Dungeons",
}

// AreaLabel returns the display label of a rating key, falling back to the
// key itself for unknown areas.
func AreaLabel(key string) string {
	if label, ok := AreaLabels[key]; ok {
		return label
	}
	return key
}
