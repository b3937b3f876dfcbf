// Package search implements the compound full-text search use case.
package search

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// Service handles compound search over the catalog index. Request
// validation happens at construction time in the domain type; by the
// time a Request reaches here it is well-formed.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs the compound query and returns the page with its total count.
func (s *Service) Search(ctx context.Context, req search.Request) (search.Response, error) {
	return s.repo.Search(ctx, req)
}
