package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON error shape the analyze endpoint returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// SummaryBody is the JSON success shape of the analyze endpoint.
type SummaryBody struct {
	Summary string `json:"summary"`
}

// WriteJSON writes any payload as JSON with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(payload)
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, ErrorBody{Error: message})
}

// WriteSummary writes a successful analysis response
func WriteSummary(w http.ResponseWriter, summary string) error {
	return WriteJSON(w, http.StatusOK, SummaryBody{Summary: summary})
}
