package parser

import (
	"slices"
	"strings"

	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
)

// FindCountry looks for a country mention. Unambiguous spellings win first,
// then the "CA" collision between Canada and California is resolved from
// surrounding evidence, then a literal uppercase code, then the generic
// country table.
func (p *Parser) FindCountry(input string) *geo.Country {
	lower := strings.ToLower(input)
	tokens := normalizer.Split(lower)
	for _, tok := range tokens {
		switch tok {
		case "usa", "us":
			return ptr(geo.UnitedStates())
		case "canada":
			return ptr(geo.Canada())
		}
	}
	if strings.Contains(lower, "united states") {
		return ptr(geo.UnitedStates())
	}
	if slices.Contains(tokens, "ca") {
		if c := p.resolveCAToken(lower, tokens); c != nil {
			return c
		}
	}
	// Case matters below: "US" as a word is a country, "us" already matched
	// above and anything else ("Sausalito") must not.
	if strings.Contains(input, "US") {
		return ptr(geo.UnitedStates())
	}
	if strings.Contains(input, "CA") {
		return ptr(geo.Canada())
	}
	return p.fallbackCountry(input, tokens)
}

// resolveCAToken decides what a bare "ca" token means. A Canadian province
// alongside it means Canada; a Californian city that is not also a Canadian
// one means the United States. Anything else is left to later stages.
func (p *Parser) resolveCAToken(lower string, tokens []string) *geo.Country {
	provinces, ok := p.gaz.States("CA")
	if !ok {
		return nil
	}
	for _, code := range provinces.Codes() {
		if slices.Contains(tokens, strings.ToLower(code)) {
			return ptr(geo.Canada())
		}
	}
	for _, name := range provinces.Names() {
		if strings.Contains(lower, strings.ToLower(name)) {
			return ptr(geo.Canada())
		}
	}
	usCities, ok := p.gaz.Cities("US")
	if !ok {
		return nil
	}
	caCities, _ := p.gaz.Cities("CA")
	californian, _ := usCities.ByState("CA")
	for _, city := range californian {
		if strings.Contains(lower, city) && (caCities == nil || !caCities.Has(city)) {
			return ptr(geo.UnitedStates())
		}
	}
	return nil
}

// fallbackCountry matches against the full country table: every word of a
// country name present as a token, or the code itself as a case-sensitive
// token. Countries whose name or code doubles as a US or Canadian state
// ("Georgia", "IN") are skipped, the state reading is far more likely.
func (p *Parser) fallbackCountry(input string, lcTokens []string) *geo.Country {
	countries := p.gaz.Countries()
	csTokens := normalizer.DedupedSplit(input)
	for _, code := range countries.Codes() {
		if code == "US" || code == "CA" {
			continue
		}
		name, _ := countries.NameByCode(code)
		if p.collidesWithState(code, name) {
			continue
		}
		if wordsContained(strings.ToLower(name), lcTokens) {
			return &geo.Country{Code: code, Name: name}
		}
		if slices.Contains(csTokens, code) {
			return &geo.Country{Code: code, Name: name}
		}
	}
	return nil
}

func (p *Parser) collidesWithState(code, name string) bool {
	for _, cc := range []string{"US", "CA"} {
		states, ok := p.gaz.States(cc)
		if !ok {
			continue
		}
		if states.HasCode(code) || states.HasName(name) {
			return true
		}
	}
	return false
}

// RemoveCountry strips the first mention of the found country and re-cleans.
// US and Canada get their common spellings handled explicitly; any other
// country is removed by name, or by code when the name is absent.
func (p *Parser) RemoveCountry(input string, country *geo.Country) string {
	s := input
	switch country.Code {
	case "US":
		s = removeInsensitive(s, "united states of america")
		s = removeInsensitive(s, "united states")
		s = strings.Replace(s, "USA", "", 1)
		s = strings.Replace(s, "US", "", 1)
	case "CA":
		s = removeInsensitive(s, "canada")
		s = strings.Replace(s, "CA", "", 1)
	default:
		if cut := removeInsensitive(s, country.Name); cut != s {
			s = cut
		} else {
			s = strings.Replace(s, country.Code, "", 1)
		}
	}
	return normalizer.Clean(s)
}

// removeInsensitive drops the first case-insensitive occurrence of needle.
func removeInsensitive(s, needle string) string {
	idx := strings.Index(strings.ToLower(s), strings.ToLower(needle))
	if idx < 0 {
		return s
	}
	return s[:idx] + s[idx+len(needle):]
}
