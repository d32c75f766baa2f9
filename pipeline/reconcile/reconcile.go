// Package reconcile merges the champion base stat records from InTeleria
// with the rating and skill records from HellHades into one canonical
// catalog, despite the inconsistent name formatting between the two feeds.
package reconcile

import (
	"math"
	"strconv"
	"strings"

	"raidbook/pipeline/sources/extract"
	"raidbook/pipeline/sources/hellhades"
	"raidbook/pipeline/sources/inteleria"
	"raidbook/pkg/gamevalues"
	"raidbook/pkg/models/champion"
)

// Summary carries the operational counts of a reconciliation run.
// Unmatched records are not errors, the caller just reports them.
type Summary struct {
	Matched       int
	UnmatchedA    int
	AppendedB     int
	DuplicateKeys int
	SkippedSlugs  int
}

// Matcher indexes the HellHades records by name for the two step lookup.
type Matcher struct {
	exact      map[string]*hellhades.Champion
	normalized map[string]*hellhades.Champion

	// Count of dropped duplicate normalized keys, surfaced on the summary.
	// First encountered wins. That tie break is inherited upstream
	// behavior, so make the drops visible instead of silent.
	duplicates int
}

// NewMatcher builds the lookup maps for source B.
func NewMatcher(sourceB []hellhades.Champion) *Matcher {
	m := &Matcher{
		exact:      make(map[string]*hellhades.Champion, len(sourceB)),
		normalized: make(map[string]*hellhades.Champion, len(sourceB)),
	}

	for i := range sourceB {
		record := &sourceB[i]

		exactKey := strings.ToLower(strings.TrimSpace(record.Champion))
		if _, exists := m.exact[exactKey]; !exists {
			m.exact[exactKey] = record
		}

		normKey := NormalizeName(record.Champion)
		if _, exists := m.normalized[normKey]; exists {
			m.duplicates++
			continue
		}
		m.normalized[normKey] = record
	}

	return m
}

// Match returns the source B record for a source A name, or nil.
// Exact case insensitive match is tried first since it is cheap and keeps
// punctuation sensitive edge cases apart, then the normalized key.
func (m *Matcher) Match(name string) *hellhades.Champion {
	if record, ok := m.exact[strings.ToLower(strings.TrimSpace(name))]; ok {
		return record
	}
	if record, ok := m.normalized[NormalizeName(name)]; ok {
		return record
	}
	return nil
}

// Reconcile produces the canonical catalog: one merged record per source A
// entry, followed by the source B only records as stats-less entries.
func Reconcile(sourceA []inteleria.Champion, sourceB []hellhades.Champion) ([]*champion.Champion, Summary) {
	matcher := NewMatcher(sourceB)
	summary := Summary{DuplicateKeys: matcher.duplicates}

	catalog := make([]*champion.Champion, 0, len(sourceA)+len(sourceB))
	seenSlugs := make(map[string]bool, len(sourceA))

	for i := range sourceA {
		it := &sourceA[i]
		name := extract.NameFromHTML(it.Name)
		if name == "" {
			continue
		}

		slug := Slugify(name)
		if seenSlugs[slug] {
			// Same display name, different champion. The affinity is the
			// only other stable discriminator on the feed.
			slug = slug + "-" + strings.ToLower(it.Affinity)
		}
		if seenSlugs[slug] {
			summary.SkippedSlugs++
			continue
		}
		seenSlugs[slug] = true

		merged := &champion.Champion{
			ID:        slug,
			Name:      name,
			Slug:      slug,
			Faction:   it.Faction,
			Affinity:  it.Affinity,
			Rarity:    it.Rarity,
			Role:      gamevalues.NormalizeRole(it.Type),
			AvatarURL: extract.ImageFromHTML(it.Image),
			Stats: map[string]champion.StatBlock{
				"6": {
					HP:       it.HP,
					ATK:      it.ATK,
					DEF:      it.DEF,
					SPD:      it.SPD,
					CritRate: int(math.Round(it.CRate * 100)),
					CritDmg:  int(math.Round(it.CDmg * 100)),
					RES:      it.RES,
					ACC:      it.ACC,
				},
			},
			Ratings: map[string]float64{},
		}

		if hh := matcher.Match(name); hh != nil {
			merged.Ratings = hh.Ratings()
			summary.Matched++
		} else {
			summary.UnmatchedA++
		}

		// Fall back to the InTeleria community average when HellHades has
		// no overall rating.
		if _, ok := merged.Ratings["overall"]; !ok {
			if avg, err := strconv.ParseFloat(it.RatingAvg, 64); err == nil && avg > 0 {
				merged.Ratings["overall"] = avg
			}
		}

		catalog = append(catalog, merged)
	}

	// Append the source B only champions as stats-less entries.
	for i := range sourceB {
		hh := &sourceB[i]
		name := strings.TrimSpace(hh.Champion)
		if name == "" {
			continue
		}

		slug := Slugify(name)
		if seenSlugs[slug] {
			continue
		}
		seenSlugs[slug] = true

		catalog = append(catalog, &champion.Champion{
			ID:       slug,
			Name:     name,
			Slug:     slug,
			Faction:  hellhades.FactionName(hh.FactionIndex),
			Affinity: hh.AffinityIndex,
			Rarity:   hh.Rarity,
			Role:     gamevalues.NormalizeRole(hh.Role),
			Stats:    map[string]champion.StatBlock{},
			Ratings:  hh.Ratings(),
		})
		summary.AppendedB++
	}

	return catalog, summary
}
