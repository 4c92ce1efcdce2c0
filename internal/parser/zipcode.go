package parser

import (
	"regexp"
	"strings"

	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/normalizer"
)

var (
	// Canadian postal codes in either "A1A 1A1" or "A1A1A1" form. The first
	// letter set excludes D, F, I, O, Q, U and W which Canada Post never
	// assigns as a leading character.
	reCanadaZip = regexp.MustCompile(`[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ] ?[0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]`)
	reUSZip     = regexp.MustCompile(`\d{5}(?:[-\s]\d{4})?`)
)

// FindZipcode scans for a postal code and returns it together with the
// country it implies. A Canadian pattern wins over the US one because it can
// never be mistaken for a plain digit run. US zips are gated on a zip-shaped
// token on punctuation boundaries, so a code glued to words by hyphens
// ("washington-20340") still surfaces while store numbers and phone fragments
// ("600778") do not leak through. Once a token qualifies the regex runs over
// the whole input so a zip+4 split by its hyphen re-assembles.
func (p *Parser) FindZipcode(input string) (*geo.Zipcode, *geo.Country) {
	if m := reCanadaZip.FindString(input); m != "" {
		return &geo.Zipcode{Value: m}, ptr(geo.Canada())
	}
	for _, tok := range normalizer.Split(input) {
		if !zipShaped(tok) {
			continue
		}
		if m := reUSZip.FindString(input); m != "" {
			return &geo.Zipcode{Value: m}, ptr(geo.UnitedStates())
		}
	}
	return nil, nil
}

// zipShaped reports whether a token is a digit run with the length of a US
// zip: 5 digits, or 9 for a zip+4 written without its separator.
func zipShaped(tok string) bool {
	if len(tok) != 5 && len(tok) != 9 {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RemoveZipcode strips the first occurrence of the matched code and
// re-cleans the remainder.
func (p *Parser) RemoveZipcode(input string, zip *geo.Zipcode) string {
	return normalizer.Clean(strings.Replace(input, zip.Value, "", 1))
}
