package requests

// ParseRequest is the body of POST /v1/locations/parse.
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
}

// BatchParseRequest is the body of POST /v1/locations/parse/batch.
type BatchParseRequest struct {
	Texts []string `json:"texts" binding:"required,min=1,max=1000"`
}
