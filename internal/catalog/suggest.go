// =============================================================================
// Point-of-Sale Invoice Generator - Fuzzy Suggestion Module
// =============================================================================
//
// When a typed service name matches no catalog entry, the session offers
// close-spelling suggestions instead of a bare rejection. Candidates are
// ranked by SequenceMatcher similarity over the catalog's name list; names
// scoring at or above the cutoff are suggested, best first.
//
// =============================================================================

package catalog

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// suggestCutoff is the minimum similarity ratio for a name to be suggested.
const suggestCutoff = 0.6

// maxSuggestions caps how many candidate names are offered.
const maxSuggestions = 3

// Suggest returns up to maxSuggestions catalog names whose spelling is close
// to the query, ordered from most to least similar. An empty result means no
// catalog name came close.
func (c *Catalog) Suggest(query string) []string {
	type scored struct {
		name  string
		ratio float64
	}

	queryChars := splitChars(titleCaser.String(query))

	var candidates []scored
	for _, name := range c.names {
		m := difflib.NewMatcher(splitChars(name), queryChars)
		// Cheap upper bounds first; Ratio is quadratic in the name length.
		if m.RealQuickRatio() < suggestCutoff || m.QuickRatio() < suggestCutoff {
			continue
		}
		if ratio := m.Ratio(); ratio >= suggestCutoff {
			candidates = append(candidates, scored{name: name, ratio: ratio})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		out = append(out, candidate.name)
	}
	return out
}

// splitChars explodes a string into single-character elements so the
// line-oriented SequenceMatcher compares character sequences.
func splitChars(s string) []string {
	return strings.Split(s, "")
}
