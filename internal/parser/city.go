package parser

import (
	"slices"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
)

// cityCandidate is one possible reading of the input as a city of a state.
type cityCandidate struct {
	name  string // lowercased gazetteer name
	state string
	full  bool // the whole first segment, not just scattered words
}

// FindCity matches the remainder against the city tables. A known state
// narrows the search to one state; a known country to one country. The first
// comma segment is tried as a whole name first; only when nothing matches
// whole does the word-subset pass run. Up to two competing candidates are
// ranked, three or more mean the input is too ambiguous to pick from.
//
// The returned state and country carry any backfill: a city found under an
// unset state or country pins both.
func (p *Parser) FindCity(input string, state *geo.State, country *geo.Country) (*geo.City, *geo.State, *geo.Country) {
	if country == nil && state != nil {
		country = p.CountryFromState(state)
	}
	lower := strings.ToLower(input)
	lcTokens := normalizer.Split(lower)
	firstSegment := strings.Split(lower, ",")[0]
	for _, cand := range geo.CandidateCountries(country) {
		cities, ok := p.gaz.Cities(cand.Code)
		if !ok {
			continue
		}
		states, ok := p.gaz.States(cand.Code)
		if !ok {
			continue
		}
		var stateCodes []string
		if state != nil {
			if !states.HasCode(state.Code) {
				continue
			}
			stateCodes = []string{state.Code}
		} else {
			stateCodes = states.Codes()
		}
		var candidates []cityCandidate
		for _, sc := range stateCodes {
			names, _ := cities.ByState(sc)
			for _, name := range names {
				if name == firstSegment {
					candidates = append(candidates, cityCandidate{name, sc, true})
				}
			}
		}
		if len(candidates) == 0 {
			for _, sc := range stateCodes {
				names, _ := cities.ByState(sc)
				for _, name := range names {
					if wordsContained(name, lcTokens) {
						candidates = append(candidates, cityCandidate{name, sc, false})
					}
				}
			}
		}
		if len(candidates) == 0 || len(candidates) >= 3 {
			continue
		}
		winner, ok := p.rankCities(candidates, cand, lower, lcTokens)
		if !ok {
			continue
		}
		city := &geo.City{Name: titleCase(winner.name)}
		st := state
		outCountry := cand
		if st == nil {
			st = p.StateFromCode(winner.state, &outCountry)
		}
		return city, st, &outCountry
	}
	return nil, nil, nil
}

// rankCities picks a winner among one or two candidates. A candidate whose
// name doubles as a state name ("Washington") is dropped unless it matched
// the whole segment or leads the input. A candidate whose own state code
// appears as a token wins outright.
func (p *Parser) rankCities(candidates []cityCandidate, country geo.Country, lower string, lcTokens []string) (cityCandidate, bool) {
	states, ok := p.gaz.States(country.Code)
	if !ok {
		return cityCandidate{}, false
	}
	stateNames := make(map[string]struct{}, len(states.Codes()))
	for _, n := range states.Names() {
		stateNames[strings.ToLower(n)] = struct{}{}
	}
	var ranked []cityCandidate
	for _, c := range candidates {
		if _, isState := stateNames[c.name]; isState && !c.full && !strings.HasPrefix(lower, c.name) {
			continue
		}
		stateToken := slices.Contains(lcTokens, strings.ToLower(c.state))
		if c.full && stateToken {
			ranked = []cityCandidate{c}
			break
		}
		if stateToken {
			ranked = append([]cityCandidate{c}, ranked...)
			break
		}
		ranked = append(ranked, c)
	}
	if len(ranked) == 0 {
		return cityCandidate{}, false
	}
	return ranked[0], true
}

// RemoveCity strips the first case-insensitive occurrence of the city name
// and re-cleans the remainder.
func (p *Parser) RemoveCity(input string, city *geo.City) string {
	return normalizer.Clean(removeInsensitive(input, city.Name))
}

func titleCase(s string) string {
	return unidecode.Unidecode(cases.Title(language.English).String(s))
}
