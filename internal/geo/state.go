package geo

import "strings"

// State is an administrative region (US state or Canadian province).
// The code is unique within its country's gazetteer, not globally.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s State) String() string {
	return strings.TrimSpace(s.Code)
}
