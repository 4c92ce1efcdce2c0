package geo

import "strings"

// Zipcode holds a postal code as matched in the input. Canadian codes may
// carry an internal space in the matching form; the display form strips it.
type Zipcode struct {
	Value string `json:"value"`
}

func (z Zipcode) String() string {
	return strings.ReplaceAll(z.Value, " ", "")
}
