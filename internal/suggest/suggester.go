// Package suggest offers fuzzy completions over the gazetteer for inputs
// the exact resolver could not place, like "Tornto" or "Calgry".
package suggest

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/desprit/geoparse/internal/gazetteer"
)

// Suggestion is one fuzzy match against a gazetteer name.
type Suggestion struct {
	Name    string  `json:"name"`
	Kind    string  `json:"kind"` // "city" or "state"
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Score   float64 `json:"score"`
}

// Options tune the blended similarity score. Jaro-Winkler favors shared
// prefixes, Levenshtein punishes overall edits; the weights balance the two.
type Options struct {
	JaroWinklerWeight float64
	LevenshteinWeight float64
	MinScore          float64
}

// DefaultOptions are reasonable for human-typed queries.
func DefaultOptions() Options {
	return Options{
		JaroWinklerWeight: 0.6,
		LevenshteinWeight: 0.4,
		MinScore:          0.72,
	}
}

type entry struct {
	lower   string
	name    string
	kind    string
	state   string
	country string
}

// Suggester scores queries against a precomputed list of state and city
// names. Immutable after construction, safe for concurrent use.
type Suggester struct {
	opts    Options
	entries []entry
}

// New indexes every state and city of the gazetteer.
func New(gaz *gazetteer.Gazetteer, opts Options) *Suggester {
	if opts.JaroWinklerWeight == 0 && opts.LevenshteinWeight == 0 {
		opts = DefaultOptions()
	}
	title := cases.Title(language.English)
	var entries []entry
	for _, country := range []string{"US", "CA"} {
		states, ok := gaz.States(country)
		if !ok {
			continue
		}
		for _, code := range states.Codes() {
			name, _ := states.NameByCode(code)
			entries = append(entries, entry{
				lower:   strings.ToLower(name),
				name:    name,
				kind:    "state",
				state:   code,
				country: country,
			})
		}
		cities, ok := gaz.Cities(country)
		if !ok {
			continue
		}
		for _, code := range states.Codes() {
			names, _ := cities.ByState(code)
			for _, city := range names {
				entries = append(entries, entry{
					lower:   city,
					name:    title.String(city),
					kind:    "city",
					state:   code,
					country: country,
				})
			}
		}
	}
	return &Suggester{opts: opts, entries: entries}
}

// Suggest returns up to limit entries scoring at least MinScore against the
// query, best first. Ties break alphabetically so results are stable.
func (s *Suggester) Suggest(query string, limit int) []Suggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}
	var out []Suggestion
	for _, e := range s.entries {
		score := s.score(query, e.lower)
		if score < s.opts.MinScore {
			continue
		}
		out = append(out, Suggestion{
			Name:    e.name,
			Kind:    e.kind,
			State:   e.state,
			Country: e.country,
			Score:   score,
		})
	}
	// Full tie-break chain: equal names exist across states and the order
	// must not depend on sort internals.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].State < out[j].State
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Suggester) score(query, name string) float64 {
	jaro := smetrics.JaroWinkler(query, name, 0.7, 4)
	dist := levenshtein.ComputeDistance(query, name)
	maxLen := math.Max(float64(len(query)), float64(len(name)))
	if maxLen == 0 {
		return 0
	}
	lev := 1.0 - float64(dist)/maxLen
	return s.opts.JaroWinklerWeight*jaro + s.opts.LevenshteinWeight*lev
}
