// Package search runs compound full-text queries against the catalog
// search index.
package search

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	"github.com/kailas-cloud/cinedex/internal/domain/search"
	"github.com/kailas-cloud/cinedex/internal/repository/movies"
)

// Repo executes compound search pipelines on the catalog collection.
type Repo struct {
	col *mongo.Collection
}

// NewRepo creates a search repository over the given database.
func NewRepo(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(movies.CollectionName)}
}

// Search runs the compound pipeline and returns the page plus the total
// match count. A query matching nothing is a success with an empty page.
func (r *Repo) Search(ctx context.Context, req search.Request) (search.Response, error) {
	cur, err := r.col.Aggregate(ctx, BuildPipeline(req))
	if err != nil {
		return search.Response{}, fmt.Errorf("compound search: %w: %s", domain.ErrDatabase, err)
	}
	defer cur.Close(ctx)

	var facets []facetDoc
	if err := cur.All(ctx, &facets); err != nil {
		return search.Response{}, fmt.Errorf("compound search decode: %w: %s", domain.ErrDatabase, err)
	}

	resp := search.Response{Movies: []movie.Movie{}}
	if len(facets) == 0 {
		return resp, nil
	}

	facet := facets[0]
	if len(facet.TotalCount) > 0 {
		resp.TotalCount = facet.TotalCount[0].Count
	}
	for _, doc := range facet.Results {
		if m, ok := movie.FromDocument(doc); ok {
			resp.Movies = append(resp.Movies, m)
		}
	}
	return resp, nil
}

// facetDoc is the single document a count-and-page $facet stage emits.
type facetDoc struct {
	TotalCount []countDoc `bson:"totalCount"`
	Results    []bson.M   `bson:"results"`
}

type countDoc struct {
	Count int64 `bson:"count"`
}
