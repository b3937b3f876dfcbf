package movie

import (
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

// CreateRequest carries the writable field set for a new movie.
// The identifier is store-generated; callers cannot supply one.
type CreateRequest struct {
	Title     string   `bson:"title" json:"title"`
	Year      *int     `bson:"year,omitempty" json:"year,omitempty"`
	Plot      string   `bson:"plot,omitempty" json:"plot,omitempty"`
	Fullplot  string   `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Genres    []string `bson:"genres,omitempty" json:"genres,omitempty"`
	Directors []string `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers   []string `bson:"writers,omitempty" json:"writers,omitempty"`
	Cast      []string `bson:"cast,omitempty" json:"cast,omitempty"`
	Countries []string `bson:"countries,omitempty" json:"countries,omitempty"`
	Languages []string `bson:"languages,omitempty" json:"languages,omitempty"`
	Rated     string   `bson:"rated,omitempty" json:"rated,omitempty"`
	Runtime   *int     `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Poster    string   `bson:"poster,omitempty" json:"poster,omitempty"`
}

// Validate checks the request for required fields.
func (r *CreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return nil
}

// UpdateRequest carries a partial movie update; only non-nil fields are set.
type UpdateRequest struct {
	Title     *string   `json:"title,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Plot      *string   `json:"plot,omitempty"`
	Fullplot  *string   `json:"fullplot,omitempty"`
	Genres    *[]string `json:"genres,omitempty"`
	Directors *[]string `json:"directors,omitempty"`
	Writers   *[]string `json:"writers,omitempty"`
	Cast      *[]string `json:"cast,omitempty"`
	Countries *[]string `json:"countries,omitempty"`
	Languages *[]string `json:"languages,omitempty"`
	Rated     *string   `json:"rated,omitempty"`
	Runtime   *int      `json:"runtime,omitempty"`
	Poster    *string   `json:"poster,omitempty"`
}

// Fields returns the supplied field values keyed by document field name.
func (r *UpdateRequest) Fields() map[string]any {
	set := make(map[string]any)
	add := func(name string, v any, present bool) {
		if present {
			set[name] = v
		}
	}
	add("title", deref(r.Title), r.Title != nil)
	add("year", deref(r.Year), r.Year != nil)
	add("plot", deref(r.Plot), r.Plot != nil)
	add("fullplot", deref(r.Fullplot), r.Fullplot != nil)
	add("genres", deref(r.Genres), r.Genres != nil)
	add("directors", deref(r.Directors), r.Directors != nil)
	add("writers", deref(r.Writers), r.Writers != nil)
	add("cast", deref(r.Cast), r.Cast != nil)
	add("countries", deref(r.Countries), r.Countries != nil)
	add("languages", deref(r.Languages), r.Languages != nil)
	add("rated", deref(r.Rated), r.Rated != nil)
	add("runtime", deref(r.Runtime), r.Runtime != nil)
	add("poster", deref(r.Poster), r.Poster != nil)
	return set
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateRequest) IsEmpty() bool {
	return len(r.Fields()) == 0
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
