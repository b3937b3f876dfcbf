// Package indexes provisions the Atlas Search and Vector Search indexes
// the query pipelines depend on.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/repository/movies"
	"github.com/kailas-cloud/cinedex/internal/repository/search"
	"github.com/kailas-cloud/cinedex/internal/repository/vector"
)

// EnsureAll creates the compound search index and the vector index when
// they are missing. Index builds are asynchronous on the server side;
// this only guarantees the definitions exist, not that they are queryable
// yet.
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	if err := ensureSearchIndex(ctx, db, log); err != nil {
		return err
	}
	return ensureVectorIndex(ctx, db, log)
}

func ensureSearchIndex(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	col := db.Collection(movies.CollectionName)

	exists, err := hasSearchIndex(ctx, col, search.IndexName)
	if err != nil {
		return fmt.Errorf("list search indexes: %w", err)
	}
	if exists {
		log.Debug("search index present", zap.String("index", search.IndexName))
		return nil
	}

	definition := bson.M{
		"mappings": bson.M{
			"dynamic": false,
			"fields": bson.M{
				"plot":      standardStringField(),
				"fullplot":  standardStringField(),
				"directors": standardStringField(),
				"writers":   standardStringField(),
				"cast":      standardStringField(),
			},
		},
	}
	_, err = col.SearchIndexes().CreateOne(ctx, mongo.SearchIndexModel{
		Definition: definition,
		Options:    options.SearchIndexes().SetName(search.IndexName),
	})
	if err != nil {
		return fmt.Errorf("create search index %s: %w", search.IndexName, err)
	}
	log.Info("search index created", zap.String("index", search.IndexName))
	return nil
}

func ensureVectorIndex(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	col := db.Collection(vector.CollectionName)

	exists, err := hasSearchIndex(ctx, col, vector.IndexName)
	if err != nil {
		return fmt.Errorf("list vector indexes: %w", err)
	}
	if exists {
		log.Debug("vector index present", zap.String("index", vector.IndexName))
		return nil
	}

	definition := bson.M{
		"fields": bson.A{bson.M{
			"type":          "vector",
			"path":          vector.EmbeddingField,
			"numDimensions": 2048,
			"similarity":    "cosine",
		}},
	}
	_, err = col.SearchIndexes().CreateOne(ctx, mongo.SearchIndexModel{
		Definition: definition,
		Options:    options.SearchIndexes().SetName(vector.IndexName).SetType("vectorSearch"),
	})
	if err != nil {
		return fmt.Errorf("create vector index %s: %w", vector.IndexName, err)
	}
	log.Info("vector index created", zap.String("index", vector.IndexName))
	return nil
}

func hasSearchIndex(ctx context.Context, col *mongo.Collection, name string) (bool, error) {
	cur, err := col.SearchIndexes().List(ctx, options.SearchIndexes().SetName(name))
	if err != nil {
		return false, err
	}
	defer cur.Close(ctx)
	return cur.Next(ctx), nil
}

func standardStringField() bson.M {
	return bson.M{"type": "string", "analyzer": "lucene.standard"}
}
