package api

import "time"

// AnalyzeRequest is the body of POST /api/gemini.
type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type TestResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Timestamp returns the current UTC time in ISO 8601 with milliseconds.
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
