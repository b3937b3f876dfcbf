package search

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// IndexName is the Atlas Search index the compound pipeline queries.
const IndexName = "movieSearchIndex"

// BuildPipeline assembles the two-stage compound search pipeline: a
// $search stage combining one clause per populated field under the
// requested operator, then a $facet that counts the full match set and
// pages the projected results in the same round trip.
func BuildPipeline(req search.Request) mongo.Pipeline {
	clauses := make([]bson.M, 0, 5)
	if req.Plot != "" {
		clauses = append(clauses, phraseClause("plot", req.Plot))
	}
	if req.Fullplot != "" {
		clauses = append(clauses, phraseClause("fullplot", req.Fullplot))
	}
	if req.Directors != "" {
		clauses = append(clauses, personClause("directors", req.Directors))
	}
	if req.Writers != "" {
		clauses = append(clauses, personClause("writers", req.Writers))
	}
	if req.Cast != "" {
		clauses = append(clauses, personClause("cast", req.Cast))
	}

	return mongo.Pipeline{
		{{Key: "$search", Value: bson.M{
			"index":    IndexName,
			"compound": bson.M{string(req.Operator): clauses},
		}}},
		{{Key: "$facet", Value: bson.M{
			"totalCount": []bson.M{{"$count": "count"}},
			"results": []bson.M{
				{"$skip": req.Skip},
				{"$limit": req.Limit},
				{"$project": resultProjection()},
			},
		}}},
	}
}

// phraseClause matches the query as an exact phrase within one field.
// Used for the narrative fields where word order carries meaning.
func phraseClause(field, query string) bson.M {
	return bson.M{"phrase": bson.M{"query": query, "path": field}}
}

// personClause matches a name field with graduated strictness: exact
// phrase, then all-words, then all-words with single-edit fuzziness and
// a protected prefix. Any one tier matching is enough.
func personClause(field, query string) bson.M {
	return bson.M{
		"compound": bson.M{
			"should": []bson.M{
				{"phrase": bson.M{"query": query, "path": field}},
				{"text": bson.M{
					"query":         query,
					"path":          field,
					"matchCriteria": "all",
				}},
				{"text": bson.M{
					"query":         query,
					"path":          field,
					"matchCriteria": "all",
					"fuzzy":         bson.M{"maxEdits": 1, "prefixLength": 2},
				}},
			},
			"minimumShouldMatch": 1,
		},
	}
}

func resultProjection() bson.M {
	return bson.M{
		"_id":       1,
		"title":     1,
		"year":      1,
		"plot":      1,
		"fullplot":  1,
		"released":  1,
		"runtime":   1,
		"poster":    1,
		"genres":    1,
		"directors": 1,
		"writers":   1,
		"cast":      1,
		"countries": 1,
		"languages": 1,
		"rated":     1,
		"awards":    1,
		"imdb":      1,
	}
}
