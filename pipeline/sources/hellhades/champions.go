// Package hellhades fetches the rating and skill data from the HellHades
// API. This feed enriches the catalog built from the InTeleria identities.
package hellhades

import (
	"encoding/json"
	"fmt"
	"net/http"
	"raidbook/pipeline/requests"
	"raidbook/pkg/config"
	"raidbook/pkg/messages"
)

// Champion is a single row of the HellHades champion feed.
// Rating fields use zero as "unrated", matching the upstream payloads where
// unrated areas come through as 0 or are missing entirely.
type Champion struct {
	ID            string  `json:"id"`
	HeroID        int     `json:"heroId"`
	Champion      string  `json:"champion"`
	AffinityIndex string  `json:"affinity_index"`
	FactionIndex  string  `json:"faction_index"`
	Rarity        string  `json:"rarity"`
	Role          string  `json:"role"`
	URL           string  `json:"url"`
	OverallUser   float64 `json:"overall_user"`
	ClanBoss      float64 `json:"clan_boss"`
	Hydra         float64 `json:"hydra"`
	Chimera       float64 `json:"chimera"`
	Spider        float64 `json:"spider"`
	Dragon        float64 `json:"dragon"`
	FireKnight    float64 `json:"fire_knight"`
	IceGolem      float64 `json:"ice_golem"`
	IronTwins     float64 `json:"iron_twins"`
	SandDevil     float64 `json:"sand_devil"`
	PhantomGrove  float64 `json:"phantom_grove"`
	DoomTower     float64 `json:"doom_tower"`
	ArenaRating   float64 `json:"arena_rating"`
	DungeonRating float64 `json:"dungeon_overall"`
	FactionWars   float64 `json:"fw_primary_rating"`
}

// Shape of the list response.
type listResponse struct {
	Champions []Champion `json:"champions"`
}

// FactionMap translates the HellHades faction index to display names.
var FactionMap = map[string]string{
	"banner-lords":       "Banner Lords",
	"high-elves":         "High Elves",
	"the-sacred-order":   "The Sacred Order",
	"barbarians":         "Barbarians",
	"ogryn-tribes":       "Ogryn Tribes",
	"lizardmen":          "Lizardmen",
	"skinwalkers":        "Skinwalkers",
	"orcs":               "Orcs",
	"demonspawn":         "Demonspawn",
	"undead-hordes":      "Undead Hordes",
	"dark-elves":         "Dark Elves",
	"knight-revenant":    "Knight Revenant",
	"dwarves":            "Dwarves",
	"shadowkin":          "Shadowkin",
	"sylvan-watchers":    "Sylvan Watchers",
	"knights-of-magaava": "Knights of Magaava",
}

// FactionName resolves the faction index, keeping the index itself for
// factions released after this map was written.
func FactionName(index string) string {
	if name, ok := FactionMap[index]; ok {
		return name
	}
	return index
}

// FetchChampions gets the full champion list with all rating columns.
func FetchChampions(limiter *requests.RateLimiter) ([]Champion, error) {
	limiter.Wait()

	url := fmt.Sprintf("%s/champions?mode=all", config.Sources.HellHadesURL)
	resp, err := requests.Request(url, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, url)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%s: %w", messages.FailedToParseMsg, err)
	}

	return list.Champions, nil
}

// Ratings converts the flat feed columns to the sparse ratings map of the
// catalog. Zero and negative values mean unrated and are dropped.
func (c *Champion) Ratings() map[string]float64 {
	flat := map[string]float64{
		"overall":       c.OverallUser,
		"clan_boss":     c.ClanBoss,
		"hydra":         c.Hydra,
		"chimera":       c.Chimera,
		"spider":        c.Spider,
		"dragon":        c.Dragon,
		"fire_knight":   c.FireKnight,
		"ice_golem":     c.IceGolem,
		"iron_twins":    c.IronTwins,
		"sand_devil":    c.SandDevil,
		"phantom_grove": c.PhantomGrove,
		"doom_tower":    c.DoomTower,
		"arena_offense": c.ArenaRating,
		"dungeons":      c.DungeonRating,
		"faction_wars":  c.FactionWars,
	}

	ratings := make(map[string]float64, len(flat))
	for key, val := range flat {
		if val > 0 {
			ratings[key] = val
		}
	}
	return ratings
}
