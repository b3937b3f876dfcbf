package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing movie.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID signals a malformed ObjectId string.
	ErrInvalidID = errors.New("invalid id")
	// ErrValidation signals bad input shape or a missing required field.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidOperator signals an unknown compound search operator.
	ErrInvalidOperator = errors.New("invalid search operator")
	// ErrMissingSearchTerm signals a search request with no field populated.
	ErrMissingSearchTerm = errors.New("at least one search parameter must be provided")
	// ErrEmbeddingUnavailable signals an unconfigured embedding provider.
	// A caller-fixable configuration gap, mapped to 400 rather than 500.
	ErrEmbeddingUnavailable = errors.New("embedding service not configured")
	// ErrDuplicateKey signals a uniqueness conflict in the store.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrDatabase signals a store failure.
	ErrDatabase = errors.New("database error")
)

// VoyageAuthError signals an authentication failure from the Voyage AI API.
// It must survive to the transport handler chain so the response carries
// 401 and the VOYAGE_AUTH_ERROR code instead of a generic 500.
type VoyageAuthError struct {
	Message string
}

func (e *VoyageAuthError) Error() string { return e.Message }

// NewVoyageAuthError creates a Voyage authentication error.
func NewVoyageAuthError(message string) error {
	if message == "" {
		message = "Invalid Voyage AI API key"
	}
	return &VoyageAuthError{Message: message}
}

// VoyageAPIError signals a non-auth failure from the Voyage AI API,
// carrying the upstream-reported status code.
type VoyageAPIError struct {
	Message    string
	StatusCode int
}

func (e *VoyageAPIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// NewVoyageAPIError creates a Voyage API error with the given upstream status.
func NewVoyageAPIError(message string, statusCode int) error {
	if statusCode == 0 {
		statusCode = 500
	}
	return &VoyageAPIError{Message: message, StatusCode: statusCode}
}
