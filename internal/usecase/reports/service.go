// Package reports implements the catalog reporting use cases.
package reports

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/report"
)

// Service handles the reporting aggregations.
type Service struct {
	repo Repository
}

// New creates a reports service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// CommentActivity reports recent comment traffic, optionally narrowed to
// one movie by its hex identifier.
func (s *Service) CommentActivity(ctx context.Context, rawMovieID string, limit int) ([]report.CommentActivity, error) {
	var movieID *primitive.ObjectID
	if rawMovieID != "" {
		id, err := domain.ParseID(rawMovieID)
		if err != nil {
			return nil, err
		}
		movieID = &id
	}

	if limit == 0 {
		limit = report.CommentsDefaultLimit
	}
	if limit < 1 || limit > report.CommentsMaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, report.CommentsMaxLimit)
	}

	return s.repo.CommentActivity(ctx, movieID, limit)
}

// ByYear reports per-year catalog statistics.
func (s *Service) ByYear(ctx context.Context) ([]report.YearStats, error) {
	return s.repo.ByYear(ctx)
}

// ByDirectors reports the most prolific directors.
func (s *Service) ByDirectors(ctx context.Context, limit int) ([]report.DirectorStats, error) {
	if limit == 0 {
		limit = report.DirectorsDefaultLimit
	}
	if limit < 1 || limit > report.DirectorsMaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, report.DirectorsMaxLimit)
	}
	return s.repo.ByDirectors(ctx, limit)
}
