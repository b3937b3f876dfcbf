// Package reports runs the catalog reporting aggregations.
package reports

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/report"
	"github.com/kailas-cloud/cinedex/internal/repository/movies"
)

// Repo executes reporting pipelines on the catalog collection.
type Repo struct {
	col *mongo.Collection
}

// NewRepo creates a reports repository over the given database.
func NewRepo(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(movies.CollectionName)}
}

// CommentActivity reports the movies with the most recent comment traffic,
// optionally narrowed to one movie.
func (r *Repo) CommentActivity(ctx context.Context, movieID *primitive.ObjectID, limit int) ([]report.CommentActivity, error) {
	cur, err := r.col.Aggregate(ctx, BuildCommentsPipeline(movieID, limit))
	if err != nil {
		return nil, reportErr("comment activity", err)
	}
	defer cur.Close(ctx)

	var docs []commentActivityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, reportErr("comment activity decode", err)
	}

	rows := make([]report.CommentActivity, len(docs))
	for i, d := range docs {
		rows[i] = report.CommentActivity{
			OID:           d.OID,
			ID:            d.OID.Hex(),
			Title:         d.Title,
			Year:          d.Year,
			Genres:        d.Genres,
			ImdbRating:    asFloat(d.ImdbRating),
			RecentComment: d.RecentComments,
			TotalComments: d.TotalComments,
		}
	}
	return rows, nil
}

// ByYear reports per-year catalog volume and rating statistics.
func (r *Repo) ByYear(ctx context.Context) ([]report.YearStats, error) {
	cur, err := r.col.Aggregate(ctx, BuildYearPipeline())
	if err != nil {
		return nil, reportErr("by year", err)
	}
	defer cur.Close(ctx)

	rows := []report.YearStats{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, reportErr("by year decode", err)
	}
	return rows, nil
}

// ByDirectors reports the most prolific directors with their average rating.
func (r *Repo) ByDirectors(ctx context.Context, limit int) ([]report.DirectorStats, error) {
	cur, err := r.col.Aggregate(ctx, BuildDirectorsPipeline(limit))
	if err != nil {
		return nil, reportErr("by directors", err)
	}
	defer cur.Close(ctx)

	rows := []report.DirectorStats{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, reportErr("by directors decode", err)
	}
	return rows, nil
}

// commentActivityDoc is the raw aggregation row. The flattened rating is
// decoded loosely: legacy documents store it as a string, which must drop
// out rather than fail the whole report.
type commentActivityDoc struct {
	OID            primitive.ObjectID     `bson:"_id"`
	Title          string                 `bson:"title"`
	Year           int                    `bson:"year"`
	Genres         []string               `bson:"genres"`
	ImdbRating     any                    `bson:"imdbRating"`
	RecentComments []report.RecentComment `bson:"recentComments"`
	TotalComments  int                    `bson:"totalComments"`
}

func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func reportErr(op string, err error) error {
	return fmt.Errorf("%s report: %w: %s", op, domain.ErrDatabase, err)
}
