package movies

import (
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestBuildListFilter(t *testing.T) {
	tests := []struct {
		name string
		q    movie.ListQuery
		want bson.M
	}{
		{
			name: "empty query matches everything",
			q:    movie.ListQuery{},
			want: bson.M{},
		},
		{
			name: "free text uses text index",
			q:    movie.ListQuery{Text: "space opera"},
			want: bson.M{"$text": bson.M{"$search": "space opera"}},
		},
		{
			name: "title and genre are case-insensitive partials",
			q:    movie.ListQuery{Title: "star", Genre: "sci"},
			want: bson.M{
				"title":  bson.M{"$regex": "star", "$options": "i"},
				"genres": bson.M{"$regex": "sci", "$options": "i"},
			},
		},
		{
			name: "year is exact",
			q:    movie.ListQuery{Year: intPtr(1977)},
			want: bson.M{"year": 1977},
		},
		{
			name: "rating bounds combine into one range",
			q:    movie.ListQuery{MinRating: floatPtr(7.0), MaxRating: floatPtr(9.5)},
			want: bson.M{"imdb.rating": bson.M{"$gte": 7.0, "$lte": 9.5}},
		},
		{
			name: "min rating alone",
			q:    movie.ListQuery{MinRating: floatPtr(8.0)},
			want: bson.M{"imdb.rating": bson.M{"$gte": 8.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildListFilter(tt.q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildListFilter() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBuildListSort(t *testing.T) {
	asc := BuildListSort(movie.ListQuery{SortBy: "year"})
	if want := (bson.D{{Key: "year", Value: 1}}); !reflect.DeepEqual(asc, want) {
		t.Errorf("ascending sort = %#v, want %#v", asc, want)
	}

	desc := BuildListSort(movie.ListQuery{SortBy: "imdb.rating", SortDesc: true})
	if want := (bson.D{{Key: "imdb.rating", Value: -1}}); !reflect.DeepEqual(desc, want) {
		t.Errorf("descending sort = %#v, want %#v", desc, want)
	}
}

func TestBuildBatchFilter(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := BuildBatchFilter(movie.Filter{
		IDs:       []string{id.Hex()},
		Genres:    []string{"Drama", "Comedy"},
		Rated:     "PG",
		MinRating: floatPtr(6.0),
	})
	if err != nil {
		t.Fatalf("BuildBatchFilter() error = %v", err)
	}
	want := bson.M{
		"_id":         bson.M{"$in": []primitive.ObjectID{id}},
		"genres":      bson.M{"$in": []string{"Drama", "Comedy"}},
		"rated":       "PG",
		"imdb.rating": bson.M{"$gte": 6.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildBatchFilter() = %#v, want %#v", got, want)
	}
}

func TestBuildBatchFilterTitlePatternWinsOverExact(t *testing.T) {
	got, err := BuildBatchFilter(movie.Filter{Title: "Alien", TitlePattern: "^Alien"})
	if err != nil {
		t.Fatalf("BuildBatchFilter() error = %v", err)
	}
	want := bson.M{"title": bson.M{"$regex": "^Alien", "$options": "i"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildBatchFilter() = %#v, want %#v", got, want)
	}
}

func TestBuildBatchFilterRejectsMalformedID(t *testing.T) {
	_, err := BuildBatchFilter(movie.Filter{IDs: []string{"not-an-id"}})
	if !errors.Is(err, domain.ErrInvalidID) {
		t.Errorf("BuildBatchFilter() error = %v, want ErrInvalidID", err)
	}
}
