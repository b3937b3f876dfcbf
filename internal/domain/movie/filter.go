package movie

// Filter is the closed set of match conditions accepted for batch update
// and batch delete bodies. Callers cannot smuggle arbitrary query operators
// to the store; anything outside this shape is rejected at decode time.
type Filter struct {
	IDs          []string `json:"ids,omitempty"`          // set-membership over identifiers
	Title        string   `json:"title,omitempty"`        // exact match
	TitlePattern string   `json:"titlePattern,omitempty"` // case-insensitive regex, wins over Title
	Year         *int     `json:"year,omitempty"`
	Genres       []string `json:"genres,omitempty"`    // any-of
	Directors    []string `json:"directors,omitempty"` // any-of
	Cast         []string `json:"cast,omitempty"`      // any-of
	Rated        string   `json:"rated,omitempty"`
	MinRating    *float64 `json:"minRating,omitempty"`
	MaxRating    *float64 `json:"maxRating,omitempty"`
}

// IsEmpty reports whether no condition was supplied. Batch operations
// require a non-empty filter so an accidental empty body cannot touch
// the whole collection.
func (f *Filter) IsEmpty() bool {
	return len(f.IDs) == 0 &&
		f.Title == "" &&
		f.TitlePattern == "" &&
		f.Year == nil &&
		len(f.Genres) == 0 &&
		len(f.Directors) == 0 &&
		len(f.Cast) == 0 &&
		f.Rated == "" &&
		f.MinRating == nil &&
		f.MaxRating == nil
}
