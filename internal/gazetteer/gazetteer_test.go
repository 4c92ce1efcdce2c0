package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	gaz, err := Load()
	require.NoError(t, err)

	code, ok := gaz.Countries().CodeByName("Canada")
	require.True(t, ok)
	assert.Equal(t, "CA", code)

	name, ok := gaz.Countries().NameByCode("US")
	require.True(t, ok)
	assert.Equal(t, "United States", name)

	assert.True(t, gaz.Countries().HasCode("ES"))
	assert.False(t, gaz.Countries().HasCode("XX"))
}

func TestStates(t *testing.T) {
	gaz := MustLoad()

	us, ok := gaz.States("US")
	require.True(t, ok)
	name, ok := us.NameByCode("NY")
	require.True(t, ok)
	assert.Equal(t, "New York", name)
	assert.True(t, us.HasName("District Of Columbia"))

	ca, ok := gaz.States("CA")
	require.True(t, ok)
	code, ok := ca.CodeByName("British Columbia")
	require.True(t, ok)
	assert.Equal(t, "BC", code)

	_, ok = gaz.States("FR")
	assert.False(t, ok)

	// sorted order is part of the contract
	codes := us.Codes()
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1], codes[i])
	}
}

func TestCities(t *testing.T) {
	gaz := MustLoad()

	cities, ok := gaz.Cities("US")
	require.True(t, ok)

	az, ok := cities.ByState("AZ")
	require.True(t, ok)
	require.NotEmpty(t, az)
	// longest name first so multi-word names win partial matching
	assert.Equal(t, "bullhead city", az[0])
	for i := 1; i < len(az); i++ {
		assert.GreaterOrEqual(t, len(az[i-1]), len(az[i]))
	}

	assert.True(t, cities.Has("phoenix"))
	assert.False(t, cities.Has("toronto"))

	state, ok := cities.StateOf("Bullhead City")
	require.True(t, ok)
	assert.Equal(t, "AZ", state)

	caCities, ok := gaz.Cities("CA")
	require.True(t, ok)
	assert.True(t, caCities.Has("toronto"))
}
