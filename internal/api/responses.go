package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Shared DTOs for API responses plus helpers for sending consistent JSON.

// ErrorResponse is the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the generic success/health body.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError logs the original error for diagnosis and sends the given
// client-facing message. The two are deliberately separate so internal detail
// never leaks into a response body.
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	slog.Warn("Responding with error", "status_code", code, "client_message", message, "internal_error", err)
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// A marshal failure here is a server-side programming error.
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
