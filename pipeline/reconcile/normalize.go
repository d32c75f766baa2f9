package reconcile

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	curlyQuotes    = strings.NewReplacer("‘", "", "’", "", "“", "", "”", "")
	nonAlphaNum    = regexp.MustCompile(`[^a-z0-9 ]`)
	multiSpace     = regexp.MustCompile(`\s+`)
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
)

// Transformer that decomposes and drops the combining marks, so "Û" and "u"
// end up as the same rune.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName reduces a display name to the sole matching key used by the
// reconciler. Two names that normalize equal are considered the same champion.
func NormalizeName(name string) string {
	lowered := strings.ToLower(name)

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// The transform only fails on invalid UTF-8. Keep the lowered
		// input so a bad byte doesn't lose the whole record.
		stripped = lowered
	}

	stripped = curlyQuotes.Replace(stripped)
	stripped = nonAlphaNum.ReplaceAllString(stripped, "")
	stripped = multiSpace.ReplaceAllString(stripped, " ")

	return strings.TrimSpace(stripped)
}

// Slugify derives the stable identity slug from a display name.
func Slugify(name string) string {
	lowered := strings.ToLower(name)
	slug := slugSeparators.ReplaceAllString(lowered, "-")
	return strings.Trim(slug, "-")
}
