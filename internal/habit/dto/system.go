package dto

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string          `json:"status"`
	Version       string          `json:"version"`
	GeminiEnabled bool            `json:"gemini_enabled"`
	ModelsLoaded  map[string]bool `json:"models_loaded"`
	EngineActive  bool            `json:"engine_active"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
