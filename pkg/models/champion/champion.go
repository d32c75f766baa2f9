package champion

// StatBlock is the fixed stat tuple for a single star level.
type StatBlock struct {
	HP       int `json:"hp"`
	ATK      int `json:"atk"`
	DEF      int `json:"def"`
	SPD      int `json:"spd"`
	CritRate int `json:"crit_rate"`
	CritDmg  int `json:"crit_dmg"`
	RES      int `json:"res"`
	ACC      int `json:"acc"`
}

// Skill is a single ability of a champion.
// The slice order on the champion is the ability order (A1..An).
type Skill struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cooldown    *int    `json:"cooldown,omitempty"`
	Multiplier  *string `json:"multiplier,omitempty"`
}

// Champion is the canonical record after reconciliation.
// Created once by the pipeline and read only at serve time.
type Champion struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Faction   string `json:"faction"`
	Affinity  string `json:"affinity"`
	Rarity    string `json:"rarity"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`

	// Stats keyed by star level. Usually only "6" is populated.
	Stats map[string]StatBlock `json:"stats"`

	Skills []Skill `json:"skills"`

	// Ratings keyed by content area, values in [0,5].
	// A absent key means unrated, not zero.
	Ratings map[string]float64 `json:"ratings"`
}

// Rating returns the rating for the given content area and whether it exists.
func (c *Champion) Rating(area string) (float64, bool) {
	if c.Ratings == nil {
		return 0, false
	}
	val, ok := c.Ratings[area]
	return val, ok
}
