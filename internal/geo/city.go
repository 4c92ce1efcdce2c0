package geo

import "strings"

// City is a settlement name. The state it was found under is resolver
// bookkeeping and not part of the city's identity.
type City struct {
	Name string `json:"name"`
}

func (c City) String() string {
	return strings.TrimSpace(c.Name)
}
