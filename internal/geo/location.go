package geo

import (
	"regexp"
	"strings"
)

var repeatedSeparators = regexp.MustCompile(`(, ){2,5}`)

// Location is the composed result of a parse. All fields are independently
// optional; a fully empty Location is a valid outcome, not an error.
type Location struct {
	City    *City    `json:"city,omitempty"`
	State   *State   `json:"state,omitempty"`
	Country *Country `json:"country,omitempty"`
	Zipcode *Zipcode `json:"zipcode,omitempty"`
	Address *string  `json:"address,omitempty"`
}

// String renders the canonical display form: city name, state code, country
// code, zipcode (spaces stripped) and address, joined with ", ". Runs of the
// separator produced by absent fields collapse to a single one.
func (l Location) String() string {
	fields := [5]string{}
	if l.City != nil {
		fields[0] = l.City.String()
	}
	if l.State != nil {
		fields[1] = l.State.String()
	}
	if l.Country != nil {
		fields[2] = l.Country.String()
	}
	if l.Zipcode != nil {
		fields[3] = l.Zipcode.String()
	}
	if l.Address != nil {
		fields[4] = strings.TrimSpace(*l.Address)
	}
	out := strings.Join(fields[:], ", ")
	out = repeatedSeparators.ReplaceAllString(out, ", ")
	out = strings.TrimSpace(out)
	out = strings.TrimSuffix(out, ",")
	out = strings.TrimPrefix(out, ", ")
	return strings.TrimSpace(out)
}

// Equal reports structural equality across all five fields.
func (l Location) Equal(other Location) bool {
	if !equalPtr(l.City, other.City) {
		return false
	}
	if !equalPtr(l.State, other.State) {
		return false
	}
	if !equalPtr(l.Country, other.Country) {
		return false
	}
	if !equalPtr(l.Zipcode, other.Zipcode) {
		return false
	}
	return equalPtr(l.Address, other.Address)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
