package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// apostrophe variants seen in game data exports ("Pandora's Items" appears
// with U+2018, U+2019, the plain ASCII quote, or no apostrophe at all
// depending on source). Stripping them makes every spelling collide.
var apostropheReplacer = strings.NewReplacer(
	"’", "", // right single quotation mark
	"‘", "", // left single quotation mark
	"`", "",
	"'", "",
)

// NormalizeName canonicalizes an augment name for matching: lower-cased,
// whitespace collapsed, apostrophes removed.
func NormalizeName(name string) string {
	s := apostropheReplacer.Replace(name)
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// NearestName returns the catalog augment closest to name, for "did you
// mean" hints on unknown input. Comparison happens on normalized names with
// a distance limit scaled by the candidate length, so unrelated names never
// match.
func (db *DB) NearestName(name string) (string, bool) {
	target := NormalizeName(name)
	best := ""
	bestDist := -1
	for candidate := range db.Augments {
		dist := levenshtein.ComputeDistance(target, NormalizeName(candidate))
		if dist > nearestLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

// Names returns all catalog augment names, sorted for stable output.
func (db *DB) Names() []string {
	names := make([]string, 0, len(db.Augments))
	for name := range db.Augments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nearestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
