// Package vector runs semantic similarity queries against the embedded
// catalog collection.
package vector

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// CollectionName is the catalog copy carrying precomputed plot embeddings.
const CollectionName = "embedded_movies"

// Repo executes vector search pipelines on the embedded collection.
type Repo struct {
	col *mongo.Collection
}

// NewRepo creates a vector search repository over the given database.
func NewRepo(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(CollectionName)}
}

// Search returns movies ranked by similarity between the query vector and
// their stored plot embeddings.
func (r *Repo) Search(ctx context.Context, queryVector []float32, q search.VectorQuery) ([]search.VectorResult, error) {
	cur, err := r.col.Aggregate(ctx, BuildPipeline(queryVector, q))
	if err != nil {
		return nil, fmt.Errorf("vector search: %w: %s", domain.ErrDatabase, err)
	}
	defer cur.Close(ctx)

	var hits []vectorHit
	if err := cur.All(ctx, &hits); err != nil {
		return nil, fmt.Errorf("vector search decode: %w: %s", domain.ErrDatabase, err)
	}

	results := make([]search.VectorResult, len(hits))
	for i, h := range hits {
		results[i] = search.VectorResult{
			ID:        h.ID.Hex(),
			Title:     h.Title,
			Plot:      h.Plot,
			Poster:    h.Poster,
			Year:      h.Year,
			Genres:    h.Genres,
			Directors: h.Directors,
			Cast:      h.Cast,
			Score:     h.Score,
		}
	}
	return results, nil
}

// vectorHit mirrors the pipeline projection. The projection guarantees
// year is an integer or null, so typed decoding is safe here.
type vectorHit struct {
	ID        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Plot      string             `bson:"plot"`
	Poster    string             `bson:"poster"`
	Year      *int               `bson:"year"`
	Genres    []string           `bson:"genres"`
	Directors []string           `bson:"directors"`
	Cast      []string           `bson:"cast"`
	Score     float64            `bson:"score"`
}
