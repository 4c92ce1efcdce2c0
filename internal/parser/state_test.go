package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desprit/geoparse/internal/geo"
)

func TestFindState(t *testing.T) {
	p := newTestParser(t)
	us := geo.UnitedStates()
	ca := geo.Canada()
	cases := []struct {
		name        string
		input       string
		known       *geo.Country
		wantCode    string
		wantCountry string
	}{
		{"code token", "BUFFALO, NY", nil, "NY", "US"},
		{"full name", "Jacksonville, Florida", &us, "FL", "US"},
		{"province code", "Toronto, ON", &ca, "ON", "CA"},
		{"province name", "New Westminster, British Columbia", &ca, "BC", "CA"},
		{"canadian code without country", "Atholville, NB", nil, "NB", "CA"},
		{"longest name wins", "West Virginia", nil, "WV", "US"},
		{"dc spelled out", "District of Columbia, washington", nil, "DC", "US"},
		{"dc split initials", "Washington D, C", nil, "DC", "US"},
		{"lowercase code is not a state", "buffalo ny", nil, "", ""},
		{"nothing", "Saint-Lin-Laurentides", &ca, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state, country := p.FindState(tc.input, tc.known)
			if tc.wantCode == "" {
				assert.Nil(t, state)
				return
			}
			require.NotNil(t, state)
			assert.Equal(t, tc.wantCode, state.Code)
			require.NotNil(t, country)
			assert.Equal(t, tc.wantCountry, country.Code)
		})
	}
}

func TestRemoveState(t *testing.T) {
	p := newTestParser(t)
	us := geo.UnitedStates()
	cases := []struct {
		name  string
		input string
		state *geo.State
		want  string
	}{
		{
			"standalone code",
			"Mercer Island, WA",
			&geo.State{Code: "WA", Name: "Washington"},
			"Mercer Island",
		},
		{
			"city sharing the state name survives",
			"Colorado Springs, CO",
			&geo.State{Code: "CO", Name: "Colorado"},
			"Colorado Springs",
		},
		{
			"full name removed",
			"BULLHEAD CITY FORT MOHAVE, Arizona",
			&geo.State{Code: "AZ", Name: "Arizona"},
			"BULLHEAD CITY FORT MOHAVE",
		},
		{
			"glued code removed",
			"DE-Wilmington",
			&geo.State{Code: "DE", Name: "Delaware"},
			"Wilmington",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.RemoveState(tc.input, tc.state, &us))
		})
	}
}

func TestCountryFromState(t *testing.T) {
	p := newTestParser(t)

	country := p.CountryFromState(&geo.State{Code: "NY", Name: "New York"})
	require.NotNil(t, country)
	assert.Equal(t, "US", country.Code)

	country = p.CountryFromState(&geo.State{Code: "ON", Name: "Ontario"})
	require.NotNil(t, country)
	assert.Equal(t, "CA", country.Code)

	assert.Nil(t, p.CountryFromState(&geo.State{Code: "XX", Name: "Nowhere"}))
}

func TestStateFromCode(t *testing.T) {
	p := newTestParser(t)
	us := geo.UnitedStates()

	state := p.StateFromCode("KS", &us)
	require.NotNil(t, state)
	assert.Equal(t, "Kansas", state.Name)

	assert.Nil(t, p.StateFromCode("ON", &us))
}
