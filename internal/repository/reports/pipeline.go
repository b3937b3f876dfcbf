package reports

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Caps on the number of movies a comment-activity report returns. A
// single-movie report can afford a deeper scan than the collection-wide one.
const (
	singleMovieCap = 50
	activityCap    = 20
)

// numericYear matches only documents whose year survived as a number;
// legacy free-text years would corrupt grouping keys.
func numericYear() bson.M {
	return bson.M{"year": bson.M{"$type": "number"}}
}

// BuildCommentsPipeline joins each movie with its comments and keeps the
// most recent ones, newest activity first.
func BuildCommentsPipeline(movieID *primitive.ObjectID, limit int) mongo.Pipeline {
	match := numericYear()
	pageCap := activityCap
	if movieID != nil {
		match["_id"] = *movieID
		pageCap = singleMovieCap
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "comments",
			"localField":   "_id",
			"foreignField": "movie_id",
			"as":           "comments",
		}}},
		{{Key: "$match", Value: bson.M{"comments": bson.M{"$ne": bson.A{}}}}},
		{{Key: "$addFields", Value: bson.M{
			"recentComments": bson.M{"$slice": bson.A{
				bson.M{"$sortArray": bson.M{
					"input":  "$comments",
					"sortBy": bson.M{"date": -1},
				}},
				limit,
			}},
			"mostRecentCommentDate": bson.M{"$max": "$comments.date"},
		}}},
		{{Key: "$sort", Value: bson.M{"mostRecentCommentDate": -1}}},
		{{Key: "$limit", Value: pageCap}},
		{{Key: "$project", Value: bson.M{
			"_id":        1,
			"title":      1,
			"year":       1,
			"genres":     1,
			"imdbRating": "$imdb.rating",
			"recentComments": bson.M{"$map": bson.M{
				"input": "$recentComments",
				"as":    "c",
				"in": bson.M{
					"userName":  "$$c.name",
					"userEmail": "$$c.email",
					"text":      "$$c.text",
					"date":      "$$c.date",
				},
			}},
			"totalComments": bson.M{"$size": "$comments"},
		}}},
	}
}

// BuildYearPipeline groups the catalog by release year with rating
// statistics, newest year first.
func BuildYearPipeline() mongo.Pipeline {
	rating := validRating()
	return mongo.Pipeline{
		{{Key: "$match", Value: numericYear()}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$year",
			"movieCount":    bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": rating},
			"highestRating": bson.M{"$max": rating},
			"lowestRating":  bson.M{"$min": rating},
			"totalVotes":    bson.M{"$sum": "$imdb.votes"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"year":          "$_id",
			"movieCount":    1,
			"averageRating": bson.M{"$round": bson.A{"$averageRating", 2}},
			"highestRating": 1,
			"lowestRating":  1,
			"totalVotes":    1,
		}}},
		{{Key: "$sort", Value: bson.M{"year": -1}}},
	}
}

// validRating admits a rating into the year statistics only when it is
// present, non-empty, and stored as a double. Excluded values vanish from
// the accumulator instead of skewing it as zeros.
func validRating() bson.M {
	return bson.M{"$cond": bson.M{
		"if": bson.M{"$and": bson.A{
			bson.M{"$ne": bson.A{"$imdb.rating", nil}},
			bson.M{"$ne": bson.A{"$imdb.rating", ""}},
			bson.M{"$eq": bson.A{bson.M{"$type": "$imdb.rating"}, "double"}},
		}},
		"then": "$imdb.rating",
		"else": "$$REMOVE",
	}}
}

// BuildDirectorsPipeline unwinds director credits and ranks directors by
// catalog volume. The average intentionally has no type guard: the
// accumulator skips non-numeric ratings on its own.
func BuildDirectorsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"directors": bson.M{
				"$exists": true,
				"$ne":     nil,
				"$not":    bson.M{"$size": 0},
			},
			"year": bson.M{"$type": "number"},
		}}},
		{{Key: "$unwind", Value: "$directors"}},
		{{Key: "$match", Value: bson.M{"directors": bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$directors",
			"movieCount":    bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$imdb.rating"},
		}}},
		{{Key: "$sort", Value: bson.M{"movieCount": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"director":      "$_id",
			"movieCount":    1,
			"averageRating": bson.M{"$round": bson.A{"$averageRating", 2}},
		}}},
	}
}
