package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run tests on the normalization of display names.
func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plainName",
			input:    "Kael",
			expected: "kael",
		},
		{
			name:     "diacritics",
			input:    "Ûrsula the Mourner",
			expected: "ursula the mourner",
		},
		{
			name:     "curlyQuote",
			input:    "Ma’Shalled",
			expected: "mashalled",
		},
		{
			name:     "straightApostrophe",
			input:    "Big 'Un",
			expected: "big un",
		},
		{
			name:     "punctuationStripped",
			input:    "Kantra the Cyclone!",
			expected: "kantra the cyclone",
		},
		{
			name:     "whitespaceCollapsed",
			input:    "  Tomb   Lord  ",
			expected: "tomb lord",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

// The two feeds disagree on diacritics and apostrophes for the same
// champion. Both spellings must land on the same matching key.
func TestNormalizeNameEquivalence(t *testing.T) {
	assert.Equal(t, NormalizeName("ursula queens"), NormalizeName("Ûrsula Queen's"))
	assert.Equal(t, NormalizeName("Mashalled"), NormalizeName("Ma’Shalled"))
}

// Run tests on the slug derivation.
func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plainName",
			input:    "Kael",
			expected: "kael",
		},
		{
			name:     "spacesBecomeDashes",
			input:    "Kantra the Cyclone",
			expected: "kantra-the-cyclone",
		},
		{
			name:     "apostropheBecomesDash",
			input:    "Ma'Shalled",
			expected: "ma-shalled",
		},
		{
			name:     "trailingPunctuationTrimmed",
			input:    "Krisk the Ageless!",
			expected: "krisk-the-ageless",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
