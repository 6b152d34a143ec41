package analytics

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// AliasTable rewrites offer name variants to one canonical label before
// grouping. Rules are applied in order: exact alias (case-insensitive),
// suffix stripping, then closest canonical label within MaxDistance
// edits. A nil table is valid and only trims whitespace.
type AliasTable struct {
	exact       map[string]string
	suffixes    []string
	canonical   []string
	maxDistance int
}

// NewAliasTable builds a table from variant->canonical pairs, suffixes to
// strip (for example " Edge" to fold "X Banner Edge" into "X Banner") and
// a fuzzy match budget. maxDistance <= 0 disables fuzzy matching.
func NewAliasTable(aliases map[string]string, suffixes []string, maxDistance int) *AliasTable {
	t := &AliasTable{
		exact:       make(map[string]string, len(aliases)),
		maxDistance: maxDistance,
	}
	seen := map[string]struct{}{}
	for variant, canonical := range aliases {
		variant, canonical = strings.TrimSpace(variant), strings.TrimSpace(canonical)
		if variant == "" || canonical == "" {
			continue
		}
		t.exact[strings.ToLower(variant)] = canonical
		if _, ok := seen[canonical]; !ok {
			seen[canonical] = struct{}{}
			t.canonical = append(t.canonical, canonical)
		}
	}
	for _, s := range suffixes {
		if s = strings.ToLower(s); strings.TrimSpace(s) != "" {
			t.suffixes = append(t.suffixes, s)
		}
	}
	return t
}

// Known registers canonical labels for fuzzy matching in addition to the
// alias targets.
func (t *AliasTable) Known(labels ...string) *AliasTable {
	if t == nil {
		return t
	}
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		dup := false
		for _, c := range t.canonical {
			if c == l {
				dup = true
				break
			}
		}
		if !dup {
			t.canonical = append(t.canonical, l)
		}
	}
	return t
}

// Len returns the number of exact aliases.
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.exact)
}

// Canonical returns the canonical label of offer.
func (t *AliasTable) Canonical(offer string) string {
	offer = strings.TrimSpace(offer)
	if t == nil || offer == "" {
		return offer
	}
	lower := strings.ToLower(offer)
	if c, ok := t.exact[lower]; ok {
		return c
	}
	for _, s := range t.suffixes {
		if base, ok := trimSuffixFold(offer, s); ok {
			if c, ok := t.exact[strings.ToLower(base)]; ok {
				return c
			}
			return base
		}
	}
	if t.maxDistance > 0 {
		best, bestDist := "", t.maxDistance+1
		for _, c := range t.canonical {
			if strings.EqualFold(c, offer) {
				return c
			}
			d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
			if d < bestDist {
				best, bestDist = c, d
			}
		}
		if best != "" {
			return best
		}
	}
	return offer
}

// trimSuffixFold removes suffix from s ignoring case. The cut is made on
// runes because case mapping can change a character's byte length.
func trimSuffixFold(s, suffix string) (string, bool) {
	rs := []rune(s)
	n := utf8.RuneCountInString(suffix)
	if len(rs) <= n || !strings.EqualFold(string(rs[len(rs)-n:]), suffix) {
		return "", false
	}
	base := strings.TrimSpace(string(rs[:len(rs)-n]))
	return base, base != ""
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
