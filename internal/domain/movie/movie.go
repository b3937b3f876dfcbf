// Package movie holds the movie catalog document types and the shaping
// logic that turns raw store documents into display-ready API records.
package movie

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Awards holds the awards summary nested in a movie document.
type Awards struct {
	Wins        *int   `bson:"wins,omitempty" json:"wins,omitempty"`
	Nominations *int   `bson:"nominations,omitempty" json:"nominations,omitempty"`
	Text        string `bson:"text,omitempty" json:"text,omitempty"`
}

// Imdb holds the IMDB rating info nested in a movie document.
type Imdb struct {
	Rating *float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  *int     `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     *int     `bson:"id,omitempty" json:"id,omitempty"`
}

// Movie is the API representation of a catalog document. The identifier is
// assigned by the store on creation and rendered in its hex string form.
type Movie struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Year      *int       `json:"year,omitempty"`
	Plot      string     `json:"plot,omitempty"`
	Fullplot  string     `json:"fullplot,omitempty"`
	Released  *time.Time `json:"released,omitempty"`
	Runtime   *int       `json:"runtime,omitempty"`
	Poster    string     `json:"poster,omitempty"`
	Genres    []string   `json:"genres,omitempty"`
	Directors []string   `json:"directors,omitempty"`
	Writers   []string   `json:"writers,omitempty"`
	Cast      []string   `json:"cast,omitempty"`
	Countries []string   `json:"countries,omitempty"`
	Languages []string   `json:"languages,omitempty"`
	Rated     string     `json:"rated,omitempty"`
	Awards    *Awards    `json:"awards,omitempty"`
	Imdb      *Imdb      `json:"imdb,omitempty"`
}

// FromDocument shapes a raw store document into a Movie. Returns false when
// the document has no title: listing results must be display-ready, so such
// records are dropped rather than surfaced as errors.
func FromDocument(doc bson.M) (Movie, bool) {
	title, ok := doc["title"].(string)
	if !ok || title == "" {
		return Movie{}, false
	}

	m := Movie{
		Title:     title,
		Year:      NormalizeYear(doc["year"]),
		Plot:      asString(doc["plot"]),
		Fullplot:  asString(doc["fullplot"]),
		Released:  asTime(doc["released"]),
		Runtime:   asInt(doc["runtime"]),
		Poster:    asString(doc["poster"]),
		Genres:    asStringSlice(doc["genres"]),
		Directors: asStringSlice(doc["directors"]),
		Writers:   asStringSlice(doc["writers"]),
		Cast:      asStringSlice(doc["cast"]),
		Countries: asStringSlice(doc["countries"]),
		Languages: asStringSlice(doc["languages"]),
		Rated:     asString(doc["rated"]),
	}

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		m.ID = oid.Hex()
	}
	if awards, ok := doc["awards"].(bson.M); ok {
		m.Awards = &Awards{
			Wins:        asInt(awards["wins"]),
			Nominations: asInt(awards["nominations"]),
			Text:        asString(awards["text"]),
		}
	}
	if imdb, ok := doc["imdb"].(bson.M); ok {
		m.Imdb = &Imdb{
			Rating: asFloat(imdb["rating"]),
			Votes:  asInt(imdb["votes"]),
			ID:     asInt(imdb["id"]),
		}
	}

	return m, true
}

// NormalizeYear coerces a year value of any legacy type to an int.
// Native integers pass through; anything else is text-normalized by
// stripping non-digit characters and re-parsing, nil on failure. The
// dataset carries free-text years like "1998è" that would otherwise
// leak into responses.
func NormalizeYear(v any) *int {
	switch y := v.(type) {
	case nil:
		return nil
	case int:
		return &y
	case int32:
		n := int(y)
		return &n
	case int64:
		n := int(y)
		return &n
	default:
		digits := stripNonDigits(fmt.Sprintf("%v", v))
		if digits == "" {
			return nil
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil
		}
		return &n
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) *int {
	switch n := v.(type) {
	case int:
		return &n
	case int32:
		i := int(n)
		return &i
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	default:
		return nil
	}
}

func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	default:
		return nil
	}
}

func asTime(v any) *time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		tt := t.Time().UTC()
		return &tt
	case time.Time:
		tt := t.UTC()
		return &tt
	default:
		return nil
	}
}

func asStringSlice(v any) []string {
	switch vals := v.(type) {
	case bson.A:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		return vals
	default:
		return nil
	}
}
