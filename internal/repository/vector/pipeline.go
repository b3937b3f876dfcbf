package vector

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// Vector index coordinates on the embedded catalog collection.
const (
	IndexName      = "vector_index"
	EmbeddingField = "plot_embedding_voyage_3_large"
)

// BuildPipeline assembles the semantic search pipeline: $vectorSearch over
// the plot embedding field followed by a projection that flattens the
// similarity score. The year is projected only when it is already stored
// as an integer; legacy free-text years are dropped instead of surfaced.
func BuildPipeline(queryVector []float32, q search.VectorQuery) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$vectorSearch", Value: bson.M{
			"index":         IndexName,
			"path":          EmbeddingField,
			"queryVector":   queryVector,
			"numCandidates": q.NumCandidates(),
			"limit":         q.Limit,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":       1,
			"title":     1,
			"plot":      1,
			"poster":    1,
			"genres":    1,
			"directors": 1,
			"cast":      1,
			"score":     bson.M{"$meta": "vectorSearchScore"},
			"year": bson.M{"$cond": bson.M{
				"if":   bson.M{"$eq": bson.A{bson.M{"$type": "$year"}, "int"}},
				"then": "$year",
				"else": nil,
			}},
		}}},
	}
}
