package hellhades

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run tests on the tolerant cooldown decoding.
func TestFlexCooldownUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected FlexCooldown
	}{
		{
			name:     "number",
			payload:  `{"cooldown": 4}`,
			expected: FlexCooldown{Value: 4, Set: true},
		},
		{
			name:     "numericString",
			payload:  `{"cooldown": "3"}`,
			expected: FlexCooldown{Value: 3, Set: true},
		},
		{
			name:     "emptyString",
			payload:  `{"cooldown": ""}`,
			expected: FlexCooldown{},
		},
		{
			name:     "null",
			payload:  `{"cooldown": null}`,
			expected: FlexCooldown{},
		},
		{
			name:     "nonNumericText",
			payload:  `{"cooldown": "passive"}`,
			expected: FlexCooldown{},
		},
		{
			name:     "zero",
			payload:  `{"cooldown": 0}`,
			expected: FlexCooldown{Value: 0, Set: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var skill Skill
			err := json.Unmarshal([]byte(tt.payload), &skill)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, skill.Cooldown)
		})
	}
}

// The skills endpoint returns either a flat array or the same array nested
// one level deep. Both shapes must decode.
func TestParseSkillsPayload(t *testing.T) {
	flat := json.RawMessage(`[{"name":"Dark Bolt"},{"name":"Acid Rain","cooldown":3}]`)
	nested := json.RawMessage(`[[{"name":"Dark Bolt"},{"name":"Acid Rain","cooldown":3}]]`)
	garbage := json.RawMessage(`{"error":"not found"}`)

	skills := parseSkillsPayload(flat)
	assert.Len(t, skills, 2)
	assert.Equal(t, "Acid Rain", skills[1].Name)

	skills = parseSkillsPayload(nested)
	assert.Len(t, skills, 2)
	assert.Equal(t, "Dark Bolt", skills[0].Name)

	assert.Nil(t, parseSkillsPayload(garbage))
}

// Conversion to catalog skills strips the markup and keeps the order.
func TestToModelSkills(t *testing.T) {
	feed := []Skill{
		{Name: "Dark Bolt", Description: "<p>Attacks 1 enemy.</p>"},
		{Name: "Acid Rain", Description: "Attacks all enemies.", Cooldown: FlexCooldown{Value: 3, Set: true}},
	}

	converted := ToModelSkills(feed)

	assert.Len(t, converted, 2)
	assert.Equal(t, "Dark Bolt", converted[0].Name)
	assert.Equal(t, "Attacks 1 enemy.", converted[0].Description)
	assert.Nil(t, converted[0].Cooldown)
	if assert.NotNil(t, converted[1].Cooldown) {
		assert.Equal(t, 3, *converted[1].Cooldown)
	}

	assert.Nil(t, ToModelSkills(nil))
}

// Run tests on the rating column mapping.
func TestChampionRatings(t *testing.T) {
	champ := Champion{
		OverallUser:   4.5,
		ClanBoss:      4,
		ArenaRating:   3.5,
		DungeonRating: 4.2,
		FactionWars:   3,
		Spider:        0,
	}

	ratings := champ.Ratings()

	assert.Equal(t, 4.5, ratings["overall"])
	assert.Equal(t, float64(4), ratings["clan_boss"])
	assert.Equal(t, 3.5, ratings["arena_offense"])
	assert.Equal(t, 4.2, ratings["dungeons"])
	assert.Equal(t, float64(3), ratings["faction_wars"])

	// Zero means unrated, the key must be absent.
	_, exists := ratings["spider"]
	assert.False(t, exists)
}
