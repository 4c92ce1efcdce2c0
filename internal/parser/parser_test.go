package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLocation drives the whole pipeline over realistic messy inputs
// and checks the canonical display form of the result.
func TestParseLocation(t *testing.T) {
	p := newTestParser(t)
	cases := map[string]string{
		"BUFFALO, NY":                             "Buffalo, NY, US",
		"Mercer Island, WA":                       "Mercer Island, WA, US",
		"Jacksonville, Florida, USA":              "Jacksonville, FL, US",
		"US-DE-Wilmington":                        "Wilmington, DE, US",
		"Lee's Summit, MO, 64064, US":             "Lees Summit, MO, US, 64064",
		"Toronto, ON, CA (Store# 04523)":          "Toronto, ON, CA",
		"Kelowna, BC, CA V1Z 2S9":                 "Kelowna, BC, CA, V1Z2S9",
		"Sherwood Park, AB, CA, T8A 3H9":          "Sherwood Park, AB, CA, T8A3H9",
		"Cupertino, CA":                           "Cupertino, CA, US",
		"Colorado Springs, CO, 80907, US":         "Colorado Springs, CO, US, 80907",
		"Saint-Lin-Laurentides, CA J5M 0G3":       "Saint-Lin-Laurentides, QC, CA, J5M0G3",
		"600778 Wilton NY, US":                    "Wilton, NY, US",
		"BULLHEAD CITY FORT MOHAVE, Arizona, 86426": "Bullhead City, AZ, US, 86426",
		"Manati, PR, US":                            "Manati, PR, US",
		"Atholville, NB":                            "Atholville, NB, CA",
		"Christiansburg, VA, US, 24073":             "Christiansburg, VA, US, 24073",
		"VA-Christiansburg-24073":                   "Christiansburg, VA, US, 24073",
		"United States-District of Columbia-washington-20340-DCCL": "Washington, DC, US, 20340",
		"New Westminster, British Columbia, Canada": "New Westminster, BC, CA",
		"B - USA - FL - JACKSONVILLE":               "Jacksonville, FL, US",
		"Wichita":                                   "Wichita, KS, US",
		"Lansing, US":                               "US",
		"qwerty 12345":                              "US, 12345",
		"":                                          "",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, p.ParseLocation(input).String())
		})
	}
}

func TestParseLocationFields(t *testing.T) {
	p := newTestParser(t)

	loc := p.ParseLocation("Lee's Summit, MO, 64064, US")
	require.NotNil(t, loc.City)
	assert.Equal(t, "Lees Summit", loc.City.Name)
	require.NotNil(t, loc.State)
	assert.Equal(t, "Missouri", loc.State.Name)
	require.NotNil(t, loc.Country)
	assert.Equal(t, "United States", loc.Country.Name)
	require.NotNil(t, loc.Zipcode)
	assert.Equal(t, "64064", loc.Zipcode.Value)
	assert.Nil(t, loc.Address)

	// a written country contradicting the zip shape drops the zip
	loc = p.ParseLocation("Madrid, ES 28001")
	require.NotNil(t, loc.Country)
	assert.Equal(t, "ES", loc.Country.Code)
	assert.Nil(t, loc.Zipcode)
	assert.Nil(t, loc.City)
	assert.Nil(t, loc.State)

	// a consistent zip keeps both
	loc = p.ParseLocation("Sherwood Park, AB, CA, T8A 3H9")
	require.NotNil(t, loc.Zipcode)
	assert.Equal(t, "T8A 3H9", loc.Zipcode.Value)
	require.NotNil(t, loc.Country)
	assert.Equal(t, "CA", loc.Country.Code)
}

func TestParseLocationDeterministic(t *testing.T) {
	p := newTestParser(t)
	inputs := []string{
		"Wilmington",
		"Lansing, US",
		"BULLHEAD CITY FORT MOHAVE, Arizona, 86426",
		"Portland",
	}
	for _, input := range inputs {
		first := p.ParseLocation(input).String()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, p.ParseLocation(input).String(), "input %q", input)
		}
	}
}
