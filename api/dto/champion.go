package dto

import "raidbook/pkg/models/champion"

// ChampionSummary is the catalog list entry.
type ChampionSummary struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Faction   string  `json:"faction"`
	Affinity  string  `json:"affinity"`
	Rarity    string  `json:"rarity"`
	Role      string  `json:"role"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Overall   float64 `json:"overall_rating"`
}

// ChampionDetail is the full champion payload.
type ChampionDetail struct {
	ChampionSummary
	Stats   map[string]champion.StatBlock `json:"stats,omitempty"`
	Skills  []champion.Skill              `json:"skills,omitempty"`
	Ratings map[string]float64            `json:"ratings,omitempty"`
}

// NewChampionSummary builds the summary from the domain champion.
func NewChampionSummary(champ *champion.Champion) *ChampionSummary {
	overall, _ := champ.Rating("overall")
	return &ChampionSummary{
		Slug:      champ.Slug,
		Name:      champ.Name,
		Faction:   champ.Faction,
		Affinity:  champ.Affinity,
		Rarity:    champ.Rarity,
		Role:      champ.Role,
		AvatarURL: champ.AvatarURL,
		Overall:   overall,
	}
}

// NewChampionDetail builds the full payload from the domain champion.
func NewChampionDetail(champ *champion.Champion) *ChampionDetail {
	return &ChampionDetail{
		ChampionSummary: *NewChampionSummary(champ),
		Stats:           champ.Stats,
		Skills:          champ.Skills,
		Ratings:         champ.Ratings,
	}
}
