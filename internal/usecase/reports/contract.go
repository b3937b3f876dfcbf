package reports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/cinedex/internal/domain/report"
)

// Repository defines the storage contract for the reporting aggregations.
type Repository interface {
	CommentActivity(ctx context.Context, movieID *primitive.ObjectID, limit int) ([]report.CommentActivity, error)
	ByYear(ctx context.Context) ([]report.YearStats, error)
	ByDirectors(ctx context.Context, limit int) ([]report.DirectorStats, error)
}
