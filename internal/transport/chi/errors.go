package chi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/logger"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// newErrorHandlers builds the ordered handler chain. The Voyage types go
// first: they carry their own status and must not fall through to the
// generic classifications.
func newErrorHandlers() []errorHandler {
	return []errorHandler{
		voyageAuthHandler,
		voyageAPIHandler,
		sentinelHandler(domain.ErrEmbeddingUnavailable, http.StatusBadRequest, CodeServiceUnavailable),
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest, CodeValidationError),
		sentinelHandler(domain.ErrInvalidOperator, http.StatusBadRequest, CodeValidationError),
		sentinelHandler(domain.ErrMissingSearchTerm, http.StatusBadRequest, CodeValidationError),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationError),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrDuplicateKey, http.StatusConflict, CodeDuplicateKey),
		sentinelHandler(domain.ErrDatabase, http.StatusInternalServerError, CodeDatabaseError),
	}
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code Code) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func voyageAuthHandler(w http.ResponseWriter, err error, _ string) bool {
	var authErr *domain.VoyageAuthError
	if !errors.As(err, &authErr) {
		return false
	}
	writeError(w, http.StatusUnauthorized, CodeVoyageAuthError, authErr.Message)
	return true
}

func voyageAPIHandler(w http.ResponseWriter, err error, _ string) bool {
	var apiErr *domain.VoyageAPIError
	if !errors.As(err, &apiErr) {
		return false
	}
	writeError(w, apiErr.StatusCode, CodeVoyageAPIError, apiErr.Message)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := clientMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "An unexpected error occurred")
}

// clientMessage scrubs store internals before they reach a response body.
// Everything else in the taxonomy is constructed in-process and safe to
// relay verbatim.
func clientMessage(err error) string {
	if errors.Is(err, domain.ErrDatabase) {
		return "A database error occurred"
	}
	return err.Error()
}
