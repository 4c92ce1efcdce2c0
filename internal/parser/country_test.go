package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desprit/geoparse/internal/geo"
)

func TestFindCountry(t *testing.T) {
	p := newTestParser(t)
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"usa token", "Jacksonville, Florida, USA", "US"},
		{"us token", "Manati, PR, US", "US"},
		{"canada word", "New Westminster, British Columbia, Canada", "CA"},
		{"united states phrase", "United States-California-San Diego", "US"},
		{"ca with province code", "Toronto, ON, CA", "CA"},
		{"ca with californian city", "Cupertino, CA", "US"},
		{"uppercase code", "Wilton US", "US"},
		{"fallback by code", "Madrid, ES", "ES"},
		{"state name is not a country", "Atlanta, Georgia", ""},
		{"nothing", "Buffalo, NY", ""},
		{"lowercase noise is not a code", "Sausalito", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			country := p.FindCountry(tc.input)
			if tc.want == "" {
				assert.Nil(t, country)
				return
			}
			require.NotNil(t, country)
			assert.Equal(t, tc.want, country.Code)
		})
	}
}

func TestRemoveCountry(t *testing.T) {
	p := newTestParser(t)
	us := geo.UnitedStates()
	ca := geo.Canada()
	cases := []struct {
		name    string
		input   string
		country *geo.Country
		want    string
	}{
		{"usa suffix", "Jacksonville, Florida, USA", &us, "Jacksonville, Florida"},
		{"us glued code", "US-DE-Wilmington", &us, "DE-Wilmington"},
		{"united states phrase", "United States-California-San Diego", &us, "California-San Diego"},
		{"canada word", "New Westminster, British Columbia, Canada", &ca, "New Westminster, British Columbia"},
		{"ca code", "Toronto, ON, CA", &ca, "Toronto, ON"},
		{"other country name", "Madrid, Spain", &geo.Country{Code: "ES", Name: "Spain"}, "Madrid"},
		{"other country code", "Madrid, ES", &geo.Country{Code: "ES", Name: "Spain"}, "Madrid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.RemoveCountry(tc.input, tc.country))
		})
	}
}
