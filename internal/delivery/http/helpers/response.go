package helpers

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error labels carried in ErrorResponse.Error. Use these with WriteJSONError.
const (
	ErrCodeValidation      = "validation_error"
	ErrCodeInvalidArgument = "invalid_argument"
	ErrCodeBadRequest      = "bad_request"
	ErrCodeNotFound        = "not_found"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeInternalError   = "internal_error"
	ErrCodeUnavailable     = "unavailable"
)

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors map[string]string `json:"validation_errors,omitempty"`
}

// Now is the clock used for error timestamps; tests may replace it.
var Now = time.Now

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes an ErrorResponse with the given status, label and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Status:    statusCode,
		Error:     code,
		Message:   message,
		Timestamp: Now(),
	})
}

// WriteValidationErrors writes a 400 validation_error response listing the failing fields.
func WriteValidationErrors(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Status:           http.StatusBadRequest,
		Error:            ErrCodeValidation,
		Message:          "request validation failed",
		Timestamp:        Now(),
		ValidationErrors: fields,
	})
}
