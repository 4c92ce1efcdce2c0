package responses

import (
	"github.com/desprit/geoparse/internal/geo"
	"github.com/desprit/geoparse/internal/suggest"
)

// ParseResponse carries one resolved location. Formatted is the canonical
// "city, state, country, zip" display string.
type ParseResponse struct {
	Input     string        `json:"input"`
	Location  *geo.Location `json:"location"`
	Formatted string        `json:"formatted"`
	Cached    bool          `json:"cached"`
	TookMs    float64       `json:"took_ms"`
}

type BatchParseResponse struct {
	Results []ParseResponse `json:"results"`
	Count   int             `json:"count"`
	TookMs  float64         `json:"took_ms"`
}

type SuggestResponse struct {
	Query       string               `json:"query"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
