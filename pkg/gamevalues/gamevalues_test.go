package gamevalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRarityIndex(t *testing.T) {
	assert.Equal(t, 0, RarityIndex("Common"))
	assert.Equal(t, 4, RarityIndex("Legendary"))
	assert.Equal(t, -1, RarityIndex("Ultra Rare"))
	assert.Equal(t, -1, RarityIndex(""))
}

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Attack", "Attack"},
		{"ATK", "Attack"},
		{"Def", "Defense"},
		{"Supp", "Support"},
		{"TBC", "Support"},
		{"HP", "HP"},
		{"Overlord", "Overlord"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeRole(tt.input), tt.input)
	}
}

func TestAreaLabel(t *testing.T) {
	assert.Equal(t, "Clan Boss", AreaLabel(AreaClanBoss))
	assert.Equal(t, "Phantom Shogun", AreaLabel(AreaPhantomGrove))
	// Unknown keys fall back to the key itself.
	assert.Equal(t, "brand_new_area", AreaLabel("brand_new_area"))
}

func TestRatingWeightsCoverAllAreas(t *testing.T) {
	for key := range AreaLabels {
		_, ok := RatingWeights[key]
		assert.True(t, ok, "area %s has no weight", key)
	}
}
