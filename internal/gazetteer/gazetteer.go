// Package gazetteer holds the immutable reference tables the resolver
// matches against: countries, per-country states, and per-country cities
// grouped by state. Tables are built once from the embedded data files and
// never mutated afterwards, so a single Gazetteer is safe to share across
// any number of goroutines.
package gazetteer

import "sort"

// CountriesMap is a bidirectional name<->code index over every country the
// generic fallback knows about.
type CountriesMap struct {
	codeToName map[string]string
	nameToCode map[string]string
	codes      []string
}

// NameByCode returns the country name for a code.
func (m *CountriesMap) NameByCode(code string) (string, bool) {
	name, ok := m.codeToName[code]
	return name, ok
}

// CodeByName returns the country code for a name.
func (m *CountriesMap) CodeByName(name string) (string, bool) {
	code, ok := m.nameToCode[name]
	return code, ok
}

// HasCode reports whether the code belongs to a known country.
func (m *CountriesMap) HasCode(code string) bool {
	_, ok := m.codeToName[code]
	return ok
}

// Codes returns all country codes in sorted order. Callers iterate this
// instead of the maps so matching stays deterministic.
func (m *CountriesMap) Codes() []string {
	return m.codes
}

// StatesMap is a bidirectional code<->name index for one country's states.
type StatesMap struct {
	codeToName map[string]string
	nameToCode map[string]string
	codes      []string
}

// NameByCode returns the state name for a code.
func (m *StatesMap) NameByCode(code string) (string, bool) {
	name, ok := m.codeToName[code]
	return name, ok
}

// CodeByName returns the state code for a full state name.
func (m *StatesMap) CodeByName(name string) (string, bool) {
	code, ok := m.nameToCode[name]
	return code, ok
}

// HasCode reports whether the code is a state code of this country.
func (m *StatesMap) HasCode(code string) bool {
	_, ok := m.codeToName[code]
	return ok
}

// HasName reports whether the exact name is a state name of this country.
func (m *StatesMap) HasName(name string) bool {
	_, ok := m.nameToCode[name]
	return ok
}

// Codes returns all state codes in sorted order.
func (m *StatesMap) Codes() []string {
	return m.codes
}

// Names returns all state names, ordered by their code.
func (m *StatesMap) Names() []string {
	names := make([]string, len(m.codes))
	for i, code := range m.codes {
		names[i] = m.codeToName[code]
	}
	return names
}

// CitiesMap indexes one country's cities. citiesByState holds lowercased
// names ordered longest-first (candidate ordering depends on it);
// stateOfCity is a last-seen-wins convenience reverse index keyed by the
// original-cased name, not an authoritative mapping.
type CitiesMap struct {
	citiesByState map[string][]string
	stateOfCity   map[string]string
	allCities     map[string]struct{}
}

// ByState returns the lowercased city names of a state, longest name first.
func (m *CitiesMap) ByState(stateCode string) ([]string, bool) {
	cities, ok := m.citiesByState[stateCode]
	return cities, ok
}

// StateOf returns the last-seen state code recorded for a city name.
func (m *CitiesMap) StateOf(cityName string) (string, bool) {
	code, ok := m.stateOfCity[cityName]
	return code, ok
}

// Has reports whether the lowercased city name exists anywhere in the country.
func (m *CitiesMap) Has(lowerName string) bool {
	_, ok := m.allCities[lowerName]
	return ok
}

// Gazetteer bundles the three reference tables.
type Gazetteer struct {
	countries *CountriesMap
	states    map[string]*StatesMap
	cities    map[string]*CitiesMap
}

// Countries returns the global country index.
func (g *Gazetteer) Countries() *CountriesMap {
	return g.countries
}

// States returns the state index of a country ("US" or "CA").
func (g *Gazetteer) States(countryCode string) (*StatesMap, bool) {
	m, ok := g.states[countryCode]
	return m, ok
}

// Cities returns the city index of a country ("US" or "CA").
func (g *Gazetteer) Cities(countryCode string) (*CitiesMap, bool) {
	m, ok := g.cities[countryCode]
	return m, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
