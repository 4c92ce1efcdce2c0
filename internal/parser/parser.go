// Package parser resolves free-form location strings into structured
// city, state, country and zipcode values against the gazetteer tables.
//
// Resolution is staged: the input is cleaned once, then each resolver finds
// its field and strips the matched text before the next resolver runs, so a
// token is never claimed twice. Every stage is best effort; a field that
// cannot be resolved confidently is left unset rather than guessed.
package parser

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/desprit/geoparse/internal/gazetteer"
	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
)

// Parser matches inputs against an immutable gazetteer. Safe for concurrent
// use: it holds no per-call state.
type Parser struct {
	gaz *gazetteer.Gazetteer
	log *zap.Logger
}

// New builds a parser over the given gazetteer. A nil logger disables
// logging.
func New(gaz *gazetteer.Gazetteer, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{gaz: gaz, log: log}
}

// ParseLocation resolves a raw location string. It never fails: the zero
// outcome is a Location with every field unset.
//
// Order matters. The zipcode goes first because its shape also implies a
// country; an explicitly written country outranks that implication, and a
// zipcode contradicting the written country is dropped as noise. The state
// then narrows the country, and the city search runs over whatever country
// and state are pinned by that point.
func (p *Parser) ParseLocation(input string) *geo.Location {
	s := normalizer.Clean(input)
	zip, zipCountry := p.FindZipcode(s)
	if zip != nil {
		s = p.RemoveZipcode(s, zip)
	}
	country := p.FindCountry(s)
	if country != nil {
		s = p.RemoveCountry(s, country)
		if zipCountry != nil && country.Code != zipCountry.Code {
			zip = nil
		}
	} else {
		country = zipCountry
	}
	state, stateCountry := p.FindState(s, country)
	if state != nil {
		if country == nil {
			country = stateCountry
		}
		s = p.RemoveState(s, state, country)
	}
	city, cityState, cityCountry := p.FindCity(s, state, country)
	if city != nil {
		s = p.RemoveCity(s, city)
		state = cityState
		country = cityCountry
	}
	loc := &geo.Location{City: city, State: state, Country: country, Zipcode: zip}
	p.log.Debug("parsed location",
		zap.String("input", input),
		zap.String("rest", s),
		zap.String("location", loc.String()))
	return loc
}

func ptr[T any](v T) *T {
	return &v
}

// wordsContained reports whether every whitespace word of name appears as a
// token.
func wordsContained(name string, tokens []string) bool {
	for _, w := range strings.Fields(name) {
		if !slices.Contains(tokens, w) {
			return false
		}
	}
	return true
}
