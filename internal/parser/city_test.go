package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desprit/geoparse/internal/geo"
)

func TestFindCity(t *testing.T) {
	p := newTestParser(t)
	us := geo.UnitedStates()
	ca := geo.Canada()
	ny := &geo.State{Code: "NY", Name: "New York"}
	az := &geo.State{Code: "AZ", Name: "Arizona"}
	dc := &geo.State{Code: "DC", Name: "District Of Columbia"}

	cases := []struct {
		name        string
		input       string
		state       *geo.State
		country     *geo.Country
		wantCity    string
		wantState   string
		wantCountry string
	}{
		{"uppercase full match", "BUFFALO", ny, &us, "Buffalo", "NY", "US"},
		{"longest partial wins", "BULLHEAD CITY FORT MOHAVE", az, &us, "Bullhead City", "AZ", "US"},
		{"partial with leading noise", "600778 Wilton", ny, &us, "Wilton", "NY", "US"},
		{"state and country backfilled", "Wichita", nil, nil, "Wichita", "KS", "US"},
		{"hyphenated name", "Saint-Lin-Laurentides", nil, &ca, "Saint-Lin-Laurentides", "QC", "CA"},
		{"two states take the first", "Wilmington", nil, &us, "Wilmington", "DE", "US"},
		{"state name city needs a prefix match", "washington-20340", dc, &us, "Washington", "DC", "US"},
		{"three states is too ambiguous", "Lansing", nil, &us, "", "", ""},
		{"unknown name", "Kenogami Mill", nil, nil, "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			city, state, country := p.FindCity(tc.input, tc.state, tc.country)
			if tc.wantCity == "" {
				assert.Nil(t, city)
				return
			}
			require.NotNil(t, city)
			assert.Equal(t, tc.wantCity, city.Name)
			require.NotNil(t, state)
			assert.Equal(t, tc.wantState, state.Code)
			require.NotNil(t, country)
			assert.Equal(t, tc.wantCountry, country.Code)
		})
	}
}

func TestRemoveCity(t *testing.T) {
	p := newTestParser(t)

	assert.Equal(t, "", p.RemoveCity("BUFFALO", &geo.City{Name: "Buffalo"}))
	assert.Equal(t, "Main Street", p.RemoveCity("Wichita Main Street", &geo.City{Name: "Wichita"}))
}
