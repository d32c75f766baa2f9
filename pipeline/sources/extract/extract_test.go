package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run tests on the entity decoding.
func TestDecodeHTMLEntities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "numericReference",
			input:    "Kael&#8217;s Wrath",
			expected: "Kael’s Wrath",
		},
		{
			name:     "namedEntities",
			input:    "Sword &amp; Board &ndash; Part 1",
			expected: "Sword & Board – Part 1",
		},
		{
			name:     "noEntities",
			input:    "Plain Name",
			expected: "Plain Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeHTMLEntities(tt.input))
		})
	}
}

// Run tests on the name extraction from the embedded anchor tag.
func TestNameFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "anchorTag",
			input:    `<a href="/champions/kael">Kael</a>`,
			expected: "Kael",
		},
		{
			name:     "plainTextFallback",
			input:    "  Kael  ",
			expected: "Kael",
		},
		{
			name:     "entityInsideTag",
			input:    `<a href="/x">Ma&#8217;Shalled</a>`,
			expected: "Ma’Shalled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NameFromHTML(tt.input))
		})
	}
}

// Run tests on the image source extraction.
func TestImageFromHTML(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/kael.png",
		ImageFromHTML(`<img class="avatar" src='https://cdn.example.com/kael.png' alt="Kael">`),
	)
	assert.Equal(t, "", ImageFromHTML("no image here"))
}

// Run tests on the tag stripping used for skill descriptions.
func TestStripHTML(t *testing.T) {
	input := "<p>Attacks   1 enemy.</p>\n<p>Damage based on: <b>ATK</b></p>"
	assert.Equal(t, "Attacks 1 enemy. Damage based on: ATK", StripHTML(input))
}
