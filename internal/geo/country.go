package geo

import "strings"

// Country is a country reference, identified by its ISO-3166 alpha-2 code
// together with its English name. Equality is structural over both fields.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// UnitedStates returns the well-known United States constant.
func UnitedStates() Country {
	return Country{Code: "US", Name: "United States"}
}

// Canada returns the well-known Canada constant.
func Canada() Country {
	return Country{Code: "CA", Name: "Canada"}
}

func (c Country) String() string {
	return strings.TrimSpace(c.Code)
}

// CandidateCountries returns the countries a resolver should search:
// the known country alone when set, otherwise United States then Canada.
func CandidateCountries(known *Country) []Country {
	if known != nil {
		return []Country{*known}
	}
	return []Country{UnitedStates(), Canada()}
}
