// Package movies persists catalog documents and answers listing queries.
package movies

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// CollectionName is the catalog collection.
const CollectionName = "movies"

// Repo stores movie documents in the catalog collection.
type Repo struct {
	col *mongo.Collection
}

// NewRepo creates a movie repository over the given database.
func NewRepo(db *mongo.Database) *Repo {
	return &Repo{col: db.Collection(CollectionName)}
}

// List returns a page of display-ready movies matching the query.
func (r *Repo) List(ctx context.Context, q movie.ListQuery) ([]movie.Movie, error) {
	opts := options.Find().
		SetSort(BuildListSort(q)).
		SetSkip(int64(q.Skip)).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, BuildListFilter(q), opts)
	if err != nil {
		return nil, storeErr("list movies", err)
	}
	return decodeMovies(ctx, cur)
}

// Get returns a single movie by identifier.
func (r *Repo) Get(ctx context.Context, id primitive.ObjectID) (movie.Movie, error) {
	var doc bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, domain.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, storeErr("get movie", err)
	}
	m, ok := movie.FromDocument(doc)
	if !ok {
		return movie.Movie{}, domain.ErrNotFound
	}
	return m, nil
}

// Create inserts a new movie and returns the stored document.
func (r *Repo) Create(ctx context.Context, req movie.CreateRequest) (movie.Movie, error) {
	res, err := r.col.InsertOne(ctx, req)
	if err != nil {
		return movie.Movie{}, storeErr("create movie", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return movie.Movie{}, fmt.Errorf("create movie: %w: unexpected inserted id type", domain.ErrDatabase)
	}
	return r.Get(ctx, id)
}

// CreateMany inserts a batch of movies in one round trip.
func (r *Repo) CreateMany(ctx context.Context, reqs []movie.CreateRequest) (movie.BatchInsertResult, error) {
	docs := make([]any, len(reqs))
	for i, req := range reqs {
		docs[i] = req
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return movie.BatchInsertResult{}, storeErr("create movies", err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		if id, ok := raw.(primitive.ObjectID); ok {
			ids = append(ids, id.Hex())
		}
	}
	return movie.BatchInsertResult{InsertedCount: len(res.InsertedIDs), InsertedIDs: ids}, nil
}

// Update applies a partial update to one movie and reports whether it matched.
func (r *Repo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (int64, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, storeErr("update movie", err)
	}
	return res.MatchedCount, nil
}

// UpdateMany applies a partial update to every movie matching the filter.
func (r *Repo) UpdateMany(ctx context.Context, f movie.Filter, fields map[string]any) (movie.BatchUpdateResult, error) {
	filter, err := BuildBatchFilter(f)
	if err != nil {
		return movie.BatchUpdateResult{}, err
	}
	res, err := r.col.UpdateMany(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return movie.BatchUpdateResult{}, storeErr("update movies", err)
	}
	return movie.BatchUpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes one movie and reports how many documents went away.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, storeErr("delete movie", err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every movie matching the filter.
func (r *Repo) DeleteMany(ctx context.Context, f movie.Filter) (movie.DeleteResult, error) {
	filter, err := BuildBatchFilter(f)
	if err != nil {
		return movie.DeleteResult{}, err
	}
	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return movie.DeleteResult{}, storeErr("delete movies", err)
	}
	return movie.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// FindAndDelete atomically removes one movie and returns it.
func (r *Repo) FindAndDelete(ctx context.Context, id primitive.ObjectID) (movie.Movie, error) {
	var doc bson.M
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, domain.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, storeErr("find and delete movie", err)
	}
	m, ok := movie.FromDocument(doc)
	if !ok {
		return movie.Movie{}, domain.ErrNotFound
	}
	return m, nil
}

// DistinctGenres returns every genre present in the catalog, sorted ascending.
func (r *Repo) DistinctGenres(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "genres", bson.M{})
	if err != nil {
		return nil, storeErr("distinct genres", err)
	}
	genres := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			genres = append(genres, s)
		}
	}
	sort.Strings(genres)
	return genres, nil
}

func decodeMovies(ctx context.Context, cur *mongo.Cursor) ([]movie.Movie, error) {
	defer cur.Close(ctx)

	out := []movie.Movie{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr("decode movie", err)
		}
		if m, ok := movie.FromDocument(doc); ok {
			out = append(out, m)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("iterate movies", err)
	}
	return out, nil
}

func storeErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w: %s", op, domain.ErrDatabase, err)
}
