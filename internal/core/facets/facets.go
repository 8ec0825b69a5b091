// Package facets implements label and language list construction: tiered
// merging of persisted, sampled, and static sources plus the accumulate
// semantics for the persisted discovery set
package facets

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Label is a GitHub issue label
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Tier identifies which source a merged label came from
type Tier string

// Tier values in strict display priority order
const (
	TierPersisted Tier = "persisted"
	TierSampled   Tier = "sampled"
	TierStatic    Tier = "static"
)

// TieredLabel tags a label with its source tier
type TieredLabel struct {
	Tier  Tier  `json:"tier"`
	Label Label `json:"label"`
}

var repoTail = regexp.MustCompile(`repos/([^/]+/[^/]+)$`)

// ExtractRepositories pulls unique owner/name pairs from repository API URLs
// preserving first-seen order
func ExtractRepositories(repositoryURLs []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, u := range repositoryURLs {
		m := repoTail.FindStringSubmatch(u)
		if m == nil {
			continue
		}
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

// MergeLabels builds the display list from the three sources
// Tiers never interleave: persisted first, then sampled, then the static
// baseline filling gaps. A name claimed by a higher tier (case-insensitive)
// is excluded from lower ones, and each tier is alphabetized independently
func MergeLabels(persisted, sampled []Label, static []string) []TieredLabel {
	claimed := make(map[string]struct{})

	take := func(ls []Label, tier Tier) []TieredLabel {
		var group []TieredLabel
		for _, l := range ls {
			key := strings.ToLower(l.Name)
			if _, dup := claimed[key]; dup {
				continue
			}
			claimed[key] = struct{}{}
			group = append(group, TieredLabel{Tier: tier, Label: l})
		}
		sortTier(group)
		return group
	}

	out := take(persisted, TierPersisted)
	out = append(out, take(sampled, TierSampled)...)

	staticLabels := make([]Label, 0, len(static))
	for _, name := range static {
		staticLabels = append(staticLabels, Label{Name: name, Color: ColorFor(name)})
	}
	out = append(out, take(staticLabels, TierStatic)...)

	return out
}

// sortTier alphabetizes one tier with case-insensitive collation
func sortTier(group []TieredLabel) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(group, func(i, j int) bool {
		return c.CompareString(group[i].Label.Name, group[j].Label.Name) < 0
	})
}

// MergeLanguages builds the display language list
// Sampled languages come first in usage order (byte-ranked by the caller),
// then every remaining known language alphabetically
func MergeLanguages(sampled []string, known []string) []string {
	have := make(map[string]struct{}, len(sampled))
	out := make([]string, 0, len(sampled)+len(known))
	for _, l := range sampled {
		if _, dup := have[l]; dup {
			continue
		}
		have[l] = struct{}{}
		out = append(out, l)
	}

	var rest []string
	for _, l := range known {
		if _, dup := have[l]; !dup {
			have[l] = struct{}{}
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)

	return append(out, rest...)
}

// RankByBytes orders language names by summed byte count descending
func RankByBytes(bytes map[string]int64) []string {
	out := make([]string, 0, len(bytes))
	for l := range bytes {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if bytes[out[i]] != bytes[out[j]] {
			return bytes[out[i]] > bytes[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// AccumulateLabels folds newly observed labels into the persisted set
// A label is added when its name is new (case-insensitive) and updated when
// an existing name arrives with a different color. First seen wins casing,
// last seen wins color. Reports whether anything changed so callers can
// skip redundant writes
func AccumulateLabels(existing, incoming []Label) ([]Label, bool) {
	index := make(map[string]int, len(existing))
	out := make([]Label, len(existing))
	copy(out, existing)
	for i, l := range out {
		index[strings.ToLower(l.Name)] = i
	}

	changed := false
	for _, l := range incoming {
		key := strings.ToLower(l.Name)
		if i, ok := index[key]; ok {
			if l.Color != "" && out[i].Color != l.Color {
				out[i].Color = l.Color
				changed = true
			}
			continue
		}
		index[key] = len(out)
		out = append(out, l)
		changed = true
	}
	return out, changed
}

// AccumulateLanguages folds newly observed language names into the persisted
// set, case-sensitively since GitHub language names are canonical
func AccumulateLanguages(existing, incoming []string) ([]string, bool) {
	have := make(map[string]struct{}, len(existing))
	out := make([]string, len(existing))
	copy(out, existing)
	for _, l := range out {
		have[l] = struct{}{}
	}

	changed := false
	for _, l := range incoming {
		if _, dup := have[l]; dup {
			continue
		}
		have[l] = struct{}{}
		out = append(out, l)
		changed = true
	}
	return out, changed
}
