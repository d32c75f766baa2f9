// Package extract holds the narrow utilities for pulling clean values out of
// the HTML embedded on the source feeds. Both feeds return JSON, but several
// string fields carry markup inside them.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`\s+`)
	namePattern    = regexp.MustCompile(`>([^<]+)<`)
	imgSrcPattern  = regexp.MustCompile(`src=['"]([^'"]+)['"]`)
	numericPattern = regexp.MustCompile(`&#(\d+);`)
)

// Named entities that actually show up on the feeds.
var namedEntities = map[string]string{
	"&amp;":   "&",
	"&lt;":    "<",
	"&gt;":    ">",
	"&quot;":  `"`,
	"&apos;":  "'",
	"&rsquo;": "’",
	"&lsquo;": "‘",
	"&ndash;": "–",
	"&mdash;": "—",
}

// DecodeHTMLEntities resolves numeric references and the small set of named
// entities the feeds use.
func DecodeHTMLEntities(text string) string {
	decoded := numericPattern.ReplaceAllStringFunc(text, func(match string) string {
		digits := numericPattern.FindStringSubmatch(match)[1]
		code, err := strconv.Atoi(digits)
		if err != nil {
			return match
		}
		return string(rune(code))
	})

	for entity, replacement := range namedEntities {
		decoded = strings.ReplaceAll(decoded, entity, replacement)
	}

	return decoded
}

// NameFromHTML extracts the champion display name from a field like
// `<a href="...">Champion Name</a>...`. Falls back to the trimmed input when
// no tag is present.
func NameFromHTML(html string) string {
	raw := strings.TrimSpace(html)
	if match := namePattern.FindStringSubmatch(html); match != nil {
		raw = strings.TrimSpace(match[1])
	}
	return DecodeHTMLEntities(raw)
}

// ImageFromHTML extracts the src attribute from an embedded <img> tag.
// Returns a empty string when there is none.
func ImageFromHTML(html string) string {
	if match := imgSrcPattern.FindStringSubmatch(html); match != nil {
		return match[1]
	}
	return ""
}

// StripHTML removes all tags and collapses the remaining whitespace.
// Used on the skill descriptions.
func StripHTML(html string) string {
	stripped := tagPattern.ReplaceAllString(html, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(stripped, " "))
}
