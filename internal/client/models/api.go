package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Language string `json:"language"`
}

// AuthResponse is the success body of both auth endpoints.
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

// AnalysisRequest is the body of POST /api/analyze.
type AnalysisRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Entities groups the named items extracted from the text.
type Entities struct {
	Emotions []string `json:"emotions"`
	Skills   []string `json:"skills"`
}

// AnalysisResult is the success body of POST /api/analyze. It is rendered
// once and never stored.
type AnalysisResult struct {
	Sentiment       string   `json:"sentiment"`
	ConfidenceScore float64  `json:"confidence_score"`
	Entities        Entities `json:"entities"`
	Distortions     []string `json:"distortions"`
}

// ErrorResponse is decoded from non-2xx bodies. Backends differ in which
// field carries the text; Code is an optional machine-readable kind.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}
