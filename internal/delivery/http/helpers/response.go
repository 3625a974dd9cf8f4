package helpers

import (
	"encoding/json"
	"net/http"

	"inkbooking/internal/domain"
)

// ErrorResponse is the error body returned by every failing endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string             `json:"error"`
	Details []domain.Violation `json:"details,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes the given payload as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes an ErrorResponse with the given message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteValidationError writes the validation failure body with field-level
// violations, in the order the rules are declared.
func WriteValidationError(w http.ResponseWriter, violations []domain.Violation) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Details: violations,
	})
}
