// Package chi exposes the catalog API over HTTP.
package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	"github.com/kailas-cloud/cinedex/internal/domain/search"
	healthuc "github.com/kailas-cloud/cinedex/internal/usecase/health"
	moviesuc "github.com/kailas-cloud/cinedex/internal/usecase/movies"
	reportsuc "github.com/kailas-cloud/cinedex/internal/usecase/reports"
	searchuc "github.com/kailas-cloud/cinedex/internal/usecase/search"
	vectoruc "github.com/kailas-cloud/cinedex/internal/usecase/vector"
)

// Server routes catalog API requests to the use case services.
type Server struct {
	movies        *moviesuc.Service
	search        *searchuc.Service
	vector        *vectoruc.Service
	reports       *reportsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	movies *moviesuc.Service,
	search *searchuc.Service,
	vector *vectoruc.Service,
	reports *reportsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		movies:        movies,
		search:        search,
		vector:        vector,
		reports:       reports,
		health:        health,
		logger:        logger,
		errorHandlers: newErrorHandlers(),
	}
}

// MovieRoutes builds the router mounted under /api/movies. The static
// routes register before the id-parameterized ones so "search" is never
// read as an identifier.
func (s *Server) MovieRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/search", s.searchMovies)
	r.Get("/vector-search", s.vectorSearch)
	r.Get("/genres", s.getGenres)
	r.Get("/aggregations/reportingByComments", s.reportingByComments)
	r.Get("/aggregations/reportingByYear", s.reportingByYear)
	r.Get("/aggregations/reportingByDirectors", s.reportingByDirectors)

	r.Get("/", s.listMovies)
	r.Post("/", s.createMovie)
	r.Post("/batch", s.createMovies)
	r.Patch("/", s.updateMovies)
	r.Delete("/", s.deleteMovies)

	r.Get("/{id}", s.getMovie)
	r.Patch("/{id}", s.updateMovie)
	r.Delete("/{id}", s.deleteMovie)
	r.Delete("/{id}/find-and-delete", s.findAndDeleteMovie)

	return r
}

// listMovies handles GET /api/movies.
func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	year, err := intPtrParam(r, "year")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	minRating, err := floatPtrParam(r, "minRating")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	maxRating, err := floatPtrParam(r, "maxRating")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	skip, err := intParam(r, "skip")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	params := r.URL.Query()
	q, err := movie.NewListQuery(
		params.Get("q"), params.Get("title"), params.Get("genre"),
		year, minRating, maxRating,
		limit, skip,
		params.Get("sortBy"), params.Get("sortOrder"),
	)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	result, err := s.movies.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movies retrieved successfully", result)
}

// getMovie handles GET /api/movies/{id}.
func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	m, err := s.movies.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movie retrieved successfully", m)
}

// createMovie handles POST /api/movies.
func (s *Server) createMovie(w http.ResponseWriter, r *http.Request) {
	var req movie.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body: "+err.Error())
		return
	}

	m, err := s.movies.Create(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Movie created successfully", m)
}

// createMovies handles POST /api/movies/batch.
func (s *Server) createMovies(w http.ResponseWriter, r *http.Request) {
	var reqs []movie.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.movies.CreateMany(r.Context(), reqs)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Movies created successfully", result)
}

// updateMovie handles PATCH /api/movies/{id}.
func (s *Server) updateMovie(w http.ResponseWriter, r *http.Request) {
	var req movie.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body: "+err.Error())
		return
	}

	m, err := s.movies.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movie updated successfully", m)
}

// batchUpdateRequest is the PATCH /api/movies body: both halves are
// required explicitly, so a missing filter cannot widen the update.
type batchUpdateRequest struct {
	Filter *movie.Filter        `json:"filter"`
	Update *movie.UpdateRequest `json:"update"`
}

// updateMovies handles PATCH /api/movies.
func (s *Server) updateMovies(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body: "+err.Error())
		return
	}
	if req.Filter == nil || req.Update == nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Both filter and update are required")
		return
	}

	result, err := s.movies.UpdateMany(r.Context(), *req.Filter, *req.Update)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movies updated successfully", result)
}

// deleteMovie handles DELETE /api/movies/{id}.
func (s *Server) deleteMovie(w http.ResponseWriter, r *http.Request) {
	result, err := s.movies.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movie deleted successfully", result)
}

// batchDeleteRequest is the DELETE /api/movies body. The filter is
// wrapped the same way the batch update wraps its halves.
type batchDeleteRequest struct {
	Filter *movie.Filter `json:"filter"`
}

// deleteMovies handles DELETE /api/movies.
func (s *Server) deleteMovies(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Invalid request body: "+err.Error())
		return
	}
	if req.Filter == nil {
		writeError(w, http.StatusBadRequest, CodeValidationError, "Filter is required")
		return
	}

	result, err := s.movies.DeleteMany(r.Context(), *req.Filter)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movies deleted successfully", result)
}

// findAndDeleteMovie handles DELETE /api/movies/{id}/find-and-delete.
func (s *Server) findAndDeleteMovie(w http.ResponseWriter, r *http.Request) {
	m, err := s.movies.FindAndDelete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Movie deleted successfully", m)
}

// getGenres handles GET /api/movies/genres.
func (s *Server) getGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.movies.Genres(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Genres retrieved successfully", genres)
}

// searchMovies handles GET /api/movies/search.
func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	skip, err := intParam(r, "skip")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	params := r.URL.Query()
	req, err := search.NewRequest(
		params.Get("plot"), params.Get("fullplot"),
		params.Get("directors"), params.Get("writers"), params.Get("cast"),
		search.Operator(params.Get("searchOperator")),
		limit, skip,
	)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Search completed successfully", resp)
}

// vectorSearch handles GET /api/movies/vector-search.
func (s *Server) vectorSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	q, err := search.NewVectorQuery(r.URL.Query().Get("q"), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	results, err := s.vector.Search(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Vector search completed successfully", results)
}

// reportingByComments handles GET /api/movies/aggregations/reportingByComments.
func (s *Server) reportingByComments(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	rows, err := s.reports.CommentActivity(r.Context(), r.URL.Query().Get("movie_id"), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Report generated successfully", rows)
}

// reportingByYear handles GET /api/movies/aggregations/reportingByYear.
func (s *Server) reportingByYear(w http.ResponseWriter, r *http.Request) {
	rows, err := s.reports.ByYear(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Report generated successfully", rows)
}

// reportingByDirectors handles GET /api/movies/aggregations/reportingByDirectors.
func (s *Server) reportingByDirectors(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	rows, err := s.reports.ByDirectors(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Report generated successfully", rows)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
		s.logger.Warn("health check degraded", zap.Any("checks", report.Checks))
	}
	writeJSON(w, status, report)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
