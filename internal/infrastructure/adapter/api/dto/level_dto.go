package dto

// SetLevelRequest is the body of PUT /levels/:tag
type SetLevelRequest struct {
	Level string `json:"level" binding:"required"`
}

// LevelResponse describes the effective override for a tag
type LevelResponse struct {
	Tag      string          `json:"tag"`
	Level    string          `json:"level"`
	Loggable map[string]bool `json:"loggable"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
	AppTag string `json:"appTag,omitempty"`
}

// DiagnosticsResponse reports what a dumper emitted
type DiagnosticsResponse struct {
	Bytes  int  `json:"bytes"`
	Denied bool `json:"denied"`
}
