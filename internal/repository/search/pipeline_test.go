package search

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

func mustRequest(t *testing.T, plot, fullplot, directors, writers, cast string, op search.Operator, limit, skip int) search.Request {
	t.Helper()
	req, err := search.NewRequest(plot, fullplot, directors, writers, cast, op, limit, skip)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	return req
}

func searchStage(t *testing.T, req search.Request) bson.M {
	t.Helper()
	pipeline := BuildPipeline(req)
	if len(pipeline) != 2 {
		t.Fatalf("pipeline has %d stages, want 2", len(pipeline))
	}
	stage := pipeline[0]
	if stage[0].Key != "$search" {
		t.Fatalf("first stage is %q, want $search", stage[0].Key)
	}
	return stage[0].Value.(bson.M)
}

func TestBuildPipelinePhraseFields(t *testing.T) {
	req := mustRequest(t, "heist gone wrong", "", "", "", "", search.OperatorMust, 0, 0)

	stage := searchStage(t, req)
	if got := stage["index"]; got != IndexName {
		t.Errorf("index = %v, want %v", got, IndexName)
	}

	clauses := stage["compound"].(bson.M)["must"].([]bson.M)
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	want := bson.M{"phrase": bson.M{"query": "heist gone wrong", "path": "plot"}}
	if !reflect.DeepEqual(clauses[0], want) {
		t.Errorf("plot clause = %#v, want %#v", clauses[0], want)
	}
}

func TestBuildPipelinePersonFields(t *testing.T) {
	req := mustRequest(t, "", "", "Kurosawa", "", "", search.OperatorMust, 0, 0)

	clauses := searchStage(t, req)["compound"].(bson.M)["must"].([]bson.M)
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}

	inner := clauses[0]["compound"].(bson.M)
	if got := inner["minimumShouldMatch"]; got != 1 {
		t.Errorf("minimumShouldMatch = %v, want 1", got)
	}

	tiers := inner["should"].([]bson.M)
	if len(tiers) != 3 {
		t.Fatalf("got %d should tiers, want 3", len(tiers))
	}
	if _, ok := tiers[0]["phrase"]; !ok {
		t.Error("first tier is not a phrase clause")
	}
	if got := tiers[1]["text"].(bson.M)["matchCriteria"]; got != "all" {
		t.Errorf("second tier matchCriteria = %v, want all", got)
	}
	fuzzyTier := tiers[2]["text"].(bson.M)
	if got := fuzzyTier["matchCriteria"]; got != "all" {
		t.Errorf("fuzzy tier matchCriteria = %v, want all", got)
	}
	fuzzy := fuzzyTier["fuzzy"].(bson.M)
	if !reflect.DeepEqual(fuzzy, bson.M{"maxEdits": 1, "prefixLength": 2}) {
		t.Errorf("fuzzy tier = %#v", fuzzy)
	}
}

func TestBuildPipelineOperatorPlacement(t *testing.T) {
	for _, op := range []search.Operator{
		search.OperatorMust, search.OperatorShould, search.OperatorMustNot, search.OperatorFilter,
	} {
		req := mustRequest(t, "war", "", "", "", "", op, 0, 0)
		compound := searchStage(t, req)["compound"].(bson.M)
		if _, ok := compound[string(op)]; !ok {
			t.Errorf("operator %q missing from compound stage keys %v", op, compound)
		}
		if len(compound) != 1 {
			t.Errorf("operator %q: compound has %d keys, want 1", op, len(compound))
		}
	}
}

func TestBuildPipelineFacetPaging(t *testing.T) {
	req := mustRequest(t, "", "desert planet", "", "", "", search.OperatorMust, 5, 15)

	pipeline := BuildPipeline(req)
	facet := pipeline[1][0]
	if facet.Key != "$facet" {
		t.Fatalf("second stage is %q, want $facet", facet.Key)
	}
	facetDoc := facet.Value.(bson.M)

	count := facetDoc["totalCount"].([]bson.M)
	if !reflect.DeepEqual(count, []bson.M{{"$count": "count"}}) {
		t.Errorf("totalCount branch = %#v", count)
	}

	results := facetDoc["results"].([]bson.M)
	if len(results) != 3 {
		t.Fatalf("results branch has %d stages, want 3", len(results))
	}
	if got := results[0]["$skip"]; got != 15 {
		t.Errorf("$skip = %v, want 15", got)
	}
	if got := results[1]["$limit"]; got != 5 {
		t.Errorf("$limit = %v, want 5", got)
	}
	proj := results[2]["$project"].(bson.M)
	for _, field := range []string{"title", "fullplot", "awards", "imdb"} {
		if _, ok := proj[field]; !ok {
			t.Errorf("projection missing %q", field)
		}
	}
}

func TestBuildPipelineAllFieldsContribute(t *testing.T) {
	req := mustRequest(t, "a", "b", "c", "d", "e", search.OperatorShould, 0, 0)
	clauses := searchStage(t, req)["compound"].(bson.M)["should"].([]bson.M)
	if len(clauses) != 5 {
		t.Errorf("got %d clauses, want 5", len(clauses))
	}
}
