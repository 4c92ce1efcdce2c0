package parser

import (
	"slices"
	"sort"
	"strings"

	"github.com/desprit/geoparse/internal/gazetteer"
	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
)

// FindState looks for a state or province in the input and returns it
// together with the country whose table it came from, so an unknown country
// can be backfilled. When the country is already known only its table is
// consulted.
func (p *Parser) FindState(input string, known *geo.Country) (*geo.State, *geo.Country) {
	lower := strings.ToLower(input)
	// The capital district is written in too many ways for table matching.
	if strings.Contains(lower, "district of columbia") ||
		strings.Contains(lower, "d.c.") ||
		strings.Contains(lower, " d, c") {
		return &geo.State{Code: "DC", Name: "District Of Columbia"}, ptr(geo.UnitedStates())
	}
	countries := geo.CandidateCountries(known)
	// A full state name is unambiguous. Longer names go first so "West
	// Virginia" is not claimed by "Virginia".
	for _, country := range countries {
		states, ok := p.gaz.States(country.Code)
		if !ok {
			continue
		}
		for _, name := range namesLongestFirst(states) {
			if strings.Contains(lower, strings.ToLower(name)) {
				code, _ := states.CodeByName(name)
				c := country
				return &geo.State{Code: code, Name: name}, &c
			}
		}
	}
	// Codes as case-sensitive tokens ("NY" but not "ny"), or every word of
	// the name present as a token.
	csTokens := normalizer.DedupedSplit(input)
	lcTokens := normalizer.Split(lower)
	type candidate struct {
		state   geo.State
		country geo.Country
	}
	var candidates []candidate
	for _, country := range countries {
		states, ok := p.gaz.States(country.Code)
		if !ok {
			continue
		}
		for _, code := range states.Codes() {
			name, _ := states.NameByCode(code)
			if slices.Contains(csTokens, code) || wordsContained(strings.ToLower(name), lcTokens) {
				candidates = append(candidates, candidate{geo.State{Code: code, Name: name}, country})
			}
		}
	}
	if len(candidates) > 1 {
		// Codes that double as country codes ("IN", "GA") usually are the
		// country when several state readings compete.
		kept := candidates[:0]
		for _, c := range candidates {
			if !p.gaz.Countries().HasCode(c.state.Code) {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return nil, nil
	}
	c := candidates[0]
	return &c.state, &c.country
}

// RemoveState strips the found state from the input. Standalone code tokens
// go first; the full name goes unless the input leads with it and one of the
// state's own cities shares a word with it ("Colorado Springs, CO" must keep
// its city); a code glued into a larger token ("DE-Wilmington") goes last.
func (p *Parser) RemoveState(input string, state *geo.State, country *geo.Country) string {
	rawTokens := normalizer.Split(input)
	fields := strings.Fields(input)
	kept := fields[:0]
	for _, f := range fields {
		if f != state.Code {
			kept = append(kept, f)
		}
	}
	s := strings.Join(kept, " ")
	if !slices.Contains(rawTokens, state.Code) {
		if !p.stateNameShadowedByCity(state, country) || !strings.HasPrefix(input, state.Name) {
			s = removeInsensitive(s, state.Name)
		}
	}
	if slices.Contains(normalizer.Split(s), state.Code) {
		s = strings.Replace(s, state.Code, "", 1)
	}
	return normalizer.Clean(s)
}

// stateNameShadowedByCity reports whether some city of the state shares a
// word with the state name, like Colorado Springs with Colorado.
func (p *Parser) stateNameShadowedByCity(state *geo.State, country *geo.Country) bool {
	if country == nil {
		country = p.CountryFromState(state)
		if country == nil {
			return false
		}
	}
	cities, ok := p.gaz.Cities(country.Code)
	if !ok {
		return false
	}
	names, _ := cities.ByState(state.Code)
	nameWords := strings.Fields(strings.ToLower(state.Name))
	for _, city := range names {
		for _, w := range strings.Fields(city) {
			if slices.Contains(nameWords, w) {
				return true
			}
		}
	}
	return false
}

// CountryFromState returns the country whose state table holds the code.
func (p *Parser) CountryFromState(state *geo.State) *geo.Country {
	for _, country := range geo.CandidateCountries(nil) {
		if states, ok := p.gaz.States(country.Code); ok && states.HasCode(state.Code) {
			c := country
			return &c
		}
	}
	return nil
}

// StateFromCode resolves a bare state code under a known country.
func (p *Parser) StateFromCode(code string, country *geo.Country) *geo.State {
	states, ok := p.gaz.States(country.Code)
	if !ok {
		return nil
	}
	name, ok := states.NameByCode(code)
	if !ok {
		return nil
	}
	return &geo.State{Code: code, Name: name}
}

// namesLongestFirst returns the state names ordered longest first, ties
// alphabetical, so substring matching prefers the most specific name.
func namesLongestFirst(states *gazetteer.StatesMap) []string {
	names := states.Names()
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
