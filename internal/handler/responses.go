package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages
const (
	ErrMsgInvalidRequest        = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestSummary = "Validation failed"
	ErrMsgPurchaseRefused       = "Purchase refused"
	ErrMsgNothingSold           = "Nothing to sell"
	ErrMsgInstanceNotFound      = "Card instance not found"
	ErrMsgCardNotFound          = "Card definition not found"
	ErrMsgDeckToggleRefused     = "Battle deck unchanged"
	ErrMsgCosmeticRefused       = "Cosmetic operation refused"
	ErrMsgArtNotFound           = "Card art not found"
	ErrMsgServerError           = "Server error occurred. Please try again."
)
