package movies

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// BuildListFilter translates a validated listing query into a store filter.
// Free-text search uses the collection text index; title and genre are
// case-insensitive partial matches.
func BuildListFilter(q movie.ListQuery) bson.M {
	filter := bson.M{}
	if q.Text != "" {
		filter["$text"] = bson.M{"$search": q.Text}
	}
	if q.Title != "" {
		filter["title"] = bson.M{"$regex": q.Title, "$options": "i"}
	}
	if q.Genre != "" {
		filter["genres"] = bson.M{"$regex": q.Genre, "$options": "i"}
	}
	if q.Year != nil {
		filter["year"] = *q.Year
	}
	if rng := ratingRange(q.MinRating, q.MaxRating); rng != nil {
		filter["imdb.rating"] = rng
	}
	return filter
}

// BuildListSort returns the sort document for a listing query.
func BuildListSort(q movie.ListQuery) bson.D {
	dir := 1
	if q.SortDesc {
		dir = -1
	}
	return bson.D{{Key: q.SortBy, Value: dir}}
}

// BuildBatchFilter translates the closed batch filter into a store filter.
// Identifiers are parsed here so a malformed id fails the whole request
// before any write happens.
func BuildBatchFilter(f movie.Filter) (bson.M, error) {
	filter := bson.M{}
	if len(f.IDs) > 0 {
		ids, err := domain.ParseIDs(f.IDs)
		if err != nil {
			return nil, fmt.Errorf("batch filter: %w", err)
		}
		filter["_id"] = bson.M{"$in": ids}
	}
	switch {
	case f.TitlePattern != "":
		filter["title"] = bson.M{"$regex": f.TitlePattern, "$options": "i"}
	case f.Title != "":
		filter["title"] = f.Title
	}
	if f.Year != nil {
		filter["year"] = *f.Year
	}
	if len(f.Genres) > 0 {
		filter["genres"] = bson.M{"$in": f.Genres}
	}
	if len(f.Directors) > 0 {
		filter["directors"] = bson.M{"$in": f.Directors}
	}
	if len(f.Cast) > 0 {
		filter["cast"] = bson.M{"$in": f.Cast}
	}
	if f.Rated != "" {
		filter["rated"] = f.Rated
	}
	if rng := ratingRange(f.MinRating, f.MaxRating); rng != nil {
		filter["imdb.rating"] = rng
	}
	return filter, nil
}

func ratingRange(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	rng := bson.M{}
	if min != nil {
		rng["$gte"] = *min
	}
	if max != nil {
		rng["$lte"] = *max
	}
	return rng
}
