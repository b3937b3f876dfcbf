package chi

import (
	"encoding/json"
	"net/http"
	"time"
)

// Code is the machine-readable classifier carried in error envelopes.
type Code string

// Error envelope codes.
const (
	CodeValidationError    Code = "VALIDATION_ERROR"
	CodeNotFound           Code = "NOT_FOUND"
	CodeVoyageAuthError    Code = "VOYAGE_AUTH_ERROR"
	CodeVoyageAPIError     Code = "VOYAGE_API_ERROR"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeDuplicateKey       Code = "DUPLICATE_KEY_ERROR"
	CodeDatabaseError      Code = "DATABASE_ERROR"
	CodeInternalError      Code = "INTERNAL_SERVER_ERROR"
)

// SuccessResponse is the uniform success envelope every endpoint returns.
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorDetail is the machine-readable part of a failure envelope.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     ErrorDetail `json:"error"`
	Timestamp string      `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess[T any](w http.ResponseWriter, status int, message string, data T) {
	writeJSON(w, status, SuccessResponse[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

func writeError(w http.ResponseWriter, status int, code Code, message string) {
	writeJSON(w, status, ErrorResponse{
		Success:   false,
		Message:   message,
		Error:     ErrorDetail{Message: message, Code: code},
		Timestamp: timestamp(),
	})
}
