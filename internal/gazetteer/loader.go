package gazetteer

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed data
var dataFS embed.FS

// supportedCountries are the countries with full state and city tables.
var supportedCountries = []string{"US", "CA"}

// Load builds the gazetteer from the embedded semicolon-delimited data
// files. A malformed or missing file is a construction-time fatal error;
// parsing never touches the filesystem afterwards.
func Load() (*Gazetteer, error) {
	countries, err := loadCountries("data/countries.txt")
	if err != nil {
		return nil, err
	}
	states := make(map[string]*StatesMap, len(supportedCountries))
	cities := make(map[string]*CitiesMap, len(supportedCountries))
	for _, country := range supportedCountries {
		sm, err := loadStates(fmt.Sprintf("data/%s/states.txt", country))
		if err != nil {
			return nil, err
		}
		states[country] = sm
		cm, err := loadCities(fmt.Sprintf("data/%s/cities.txt", country))
		if err != nil {
			return nil, err
		}
		cities[country] = cm
	}
	return &Gazetteer{countries: countries, states: states, cities: cities}, nil
}

// MustLoad is Load for program initialization paths where a broken data
// set cannot be recovered from.
func MustLoad() *Gazetteer {
	g, err := Load()
	if err != nil {
		panic(err)
	}
	return g
}

// loadCountries reads "Name;CODE" records.
func loadCountries(path string) (*CountriesMap, error) {
	m := &CountriesMap{
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
	}
	err := eachRecord(path, func(fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("want Name;CODE, got %q", strings.Join(fields, ";"))
		}
		name, code := fields[0], fields[1]
		m.codeToName[code] = name
		m.nameToCode[name] = code
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.codes = sortedKeys(m.codeToName)
	return m, nil
}

// loadStates reads "CODE;Name" records.
func loadStates(path string) (*StatesMap, error) {
	m := &StatesMap{
		codeToName: make(map[string]string),
		nameToCode: make(map[string]string),
	}
	err := eachRecord(path, func(fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("want CODE;Name, got %q", strings.Join(fields, ";"))
		}
		code, name := fields[0], fields[1]
		m.codeToName[code] = name
		m.nameToCode[name] = code
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.codes = sortedKeys(m.codeToName)
	return m, nil
}

// loadCities reads "STATE;City Name" records. Names of three characters or
// fewer are dropped: they collide with state and country codes far more
// often than they identify a real match.
func loadCities(path string) (*CitiesMap, error) {
	m := &CitiesMap{
		citiesByState: make(map[string][]string),
		stateOfCity:   make(map[string]string),
		allCities:     make(map[string]struct{}),
	}
	err := eachRecord(path, func(fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("want STATE;City, got %q", strings.Join(fields, ";"))
		}
		state, city := fields[0], fields[1]
		if len(city) <= 3 {
			return nil
		}
		lower := strings.ToLower(city)
		m.citiesByState[state] = append(m.citiesByState[state], lower)
		m.stateOfCity[city] = state
		m.allCities[lower] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Longest name first so multi-word cities win the partial-match pass
	// over their own substrings ("Bullhead City" before "Fort Mohave").
	for _, cities := range m.citiesByState {
		sort.Slice(cities, func(i, j int) bool {
			if len(cities[i]) != len(cities[j]) {
				return len(cities[i]) > len(cities[j])
			}
			return cities[i] < cities[j]
		})
	}
	return m, nil
}

func eachRecord(path string, fn func(fields []string) error) error {
	f, err := dataFS.Open(path)
	if err != nil {
		return fmt.Errorf("open gazetteer data %s: %w", path, err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(strings.Split(text, ";")); err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read gazetteer data %s: %w", path, err)
	}
	return nil
}
