package movies

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// Repository defines the storage contract for catalog CRUD operations.
type Repository interface {
	List(ctx context.Context, q movie.ListQuery) ([]movie.Movie, error)
	Get(ctx context.Context, id primitive.ObjectID) (movie.Movie, error)
	Create(ctx context.Context, req movie.CreateRequest) (movie.Movie, error)
	CreateMany(ctx context.Context, reqs []movie.CreateRequest) (movie.BatchInsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error)
	UpdateMany(ctx context.Context, f movie.Filter, fields map[string]any) (movie.BatchUpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteMany(ctx context.Context, f movie.Filter) (movie.DeleteResult, error)
	FindAndDelete(ctx context.Context, id primitive.ObjectID) (movie.Movie, error)
	DistinctGenres(ctx context.Context) ([]string, error)
}
