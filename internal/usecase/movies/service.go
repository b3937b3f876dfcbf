// Package movies implements the catalog CRUD use cases.
package movies

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// Service handles catalog reads and writes. Identifier strings from the
// outside world are parsed here, before any store call.
type Service struct {
	repo Repository
}

// New creates a movies service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns a page of movies matching the query.
func (s *Service) List(ctx context.Context, q movie.ListQuery) ([]movie.Movie, error) {
	return s.repo.List(ctx, q)
}

// Get returns one movie by its hex identifier.
func (s *Service) Get(ctx context.Context, rawID string) (movie.Movie, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return movie.Movie{}, err
	}
	return s.repo.Get(ctx, id)
}

// Create validates and inserts a new movie, returning the stored document.
func (s *Service) Create(ctx context.Context, req movie.CreateRequest) (movie.Movie, error) {
	if err := req.Validate(); err != nil {
		return movie.Movie{}, err
	}
	return s.repo.Create(ctx, req)
}

// CreateMany validates and inserts a batch of movies.
func (s *Service) CreateMany(ctx context.Context, reqs []movie.CreateRequest) (movie.BatchInsertResult, error) {
	if len(reqs) == 0 {
		return movie.BatchInsertResult{}, fmt.Errorf("%w: at least one movie is required", domain.ErrValidation)
	}
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return movie.BatchInsertResult{}, fmt.Errorf("movie %d: %w", i, err)
		}
	}
	return s.repo.CreateMany(ctx, reqs)
}

// Update applies a partial update to one movie and returns the stored result.
func (s *Service) Update(ctx context.Context, rawID string, req movie.UpdateRequest) (movie.Movie, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return movie.Movie{}, err
	}
	if req.IsEmpty() {
		return movie.Movie{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	matched, err := s.repo.Update(ctx, id, req.Fields())
	if err != nil {
		return movie.Movie{}, err
	}
	if matched == 0 {
		return movie.Movie{}, domain.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// UpdateMany applies a partial update to every movie matching the filter.
// An empty filter or an empty update is rejected rather than applied
// collection-wide.
func (s *Service) UpdateMany(ctx context.Context, f movie.Filter, req movie.UpdateRequest) (movie.BatchUpdateResult, error) {
	if f.IsEmpty() {
		return movie.BatchUpdateResult{}, fmt.Errorf("%w: filter is required", domain.ErrValidation)
	}
	if req.IsEmpty() {
		return movie.BatchUpdateResult{}, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	return s.repo.UpdateMany(ctx, f, req.Fields())
}

// Delete removes one movie.
func (s *Service) Delete(ctx context.Context, rawID string) (movie.DeleteResult, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return movie.DeleteResult{}, err
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return movie.DeleteResult{}, err
	}
	if deleted == 0 {
		return movie.DeleteResult{}, domain.ErrNotFound
	}
	return movie.DeleteResult{DeletedCount: deleted}, nil
}

// DeleteMany removes every movie matching the filter. Matching nothing is
// a success with a zero count.
func (s *Service) DeleteMany(ctx context.Context, f movie.Filter) (movie.DeleteResult, error) {
	if f.IsEmpty() {
		return movie.DeleteResult{}, fmt.Errorf("%w: filter is required", domain.ErrValidation)
	}
	return s.repo.DeleteMany(ctx, f)
}

// FindAndDelete atomically removes one movie and returns it.
func (s *Service) FindAndDelete(ctx context.Context, rawID string) (movie.Movie, error) {
	id, err := domain.ParseID(rawID)
	if err != nil {
		return movie.Movie{}, err
	}
	return s.repo.FindAndDelete(ctx, id)
}

// Genres returns every distinct genre in the catalog.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	return s.repo.DistinctGenres(ctx)
}
