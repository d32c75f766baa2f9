package hellhades

import (
	"encoding/json"
	"fmt"
	"net/http"
	"raidbook/pipeline/requests"
	"raidbook/pipeline/sources/extract"
	"raidbook/pkg/config"
	"raidbook/pkg/models/champion"
	"strconv"
	"strings"
)

// Skill is a single skill row of the HellHades skills endpoint.
type Skill struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Cooldown    FlexCooldown `json:"cooldown"`
	Description string       `json:"description"`
}

// FlexCooldown tolerates the cooldown coming through as a number, a numeric
// string, or a empty string.
type FlexCooldown struct {
	Value int
	Set   bool
}

func (f *FlexCooldown) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			// Non numeric cooldown text, treat as unset.
			return nil
		}
		f.Value = parsed
		f.Set = parsed > 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	f.Value = int(num)
	f.Set = num > 0
	return nil
}

// FetchSkills gets the skill list for a single champion.
// The id is the WordPress post id from the champion feed. The in-game heroId
// looks like the right key but does not resolve for most champions.
// Any failure yields an empty list: a single champion must never abort a
// enrichment batch.
func FetchSkills(limiter *requests.RateLimiter, id int) []Skill {
	limiter.Wait()

	url := fmt.Sprintf("%s/raid/skills/%d", config.Sources.HellHadesURL, id)
	resp, err := requests.Request(url, http.MethodGet)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil
	}

	return parseSkillsPayload(raw)
}

// ToModelSkills converts the feed skills to catalog skills, stripping the
// markup from the descriptions. Order is preserved since the slice order is
// the ability order.
func ToModelSkills(skills []Skill) []champion.Skill {
	if len(skills) == 0 {
		return nil
	}

	converted := make([]champion.Skill, 0, len(skills))
	for _, s := range skills {
		model := champion.Skill{
			Name:        s.Name,
			Description: extract.StripHTML(s.Description),
		}
		if s.Cooldown.Set {
			cooldown := s.Cooldown.Value
			model.Cooldown = &cooldown
		}
		converted = append(converted, model)
	}
	return converted
}

// parseSkillsPayload handles the two shapes the endpoint returns: a plain
// skill array, or the same array nested one level deep.
func parseSkillsPayload(raw json.RawMessage) []Skill {
	var nested [][]Skill
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil
		}
		return nested[0]
	}

	var flat []Skill
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat
	}

	return nil
}
