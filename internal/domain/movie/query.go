package movie

import (
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

// Listing pagination bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
	DefaultSort  = "title"
)

// ListQuery is a validated listing request: optional free-text search,
// field filters, pagination, and sort.
type ListQuery struct {
	Text      string // full-text match over indexed fields
	Title     string // case-insensitive partial match
	Genre     string // case-insensitive partial match
	Year      *int
	MinRating *float64
	MaxRating *float64
	Limit     int
	Skip      int
	SortBy    string
	SortDesc  bool
}

// NewListQuery validates pagination bounds and applies defaults.
// Any sort direction other than "desc" sorts ascending.
func NewListQuery(
	text, title, genre string,
	year *int,
	minRating, maxRating *float64,
	limit, skip int,
	sortBy, sortOrder string,
) (ListQuery, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return ListQuery{}, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, MaxLimit)
	}
	if skip < 0 {
		return ListQuery{}, fmt.Errorf("%w: skip must be >= 0", domain.ErrValidation)
	}
	if sortBy == "" {
		sortBy = DefaultSort
	}

	return ListQuery{
		Text:      text,
		Title:     title,
		Genre:     genre,
		Year:      year,
		MinRating: minRating,
		MaxRating: maxRating,
		Limit:     limit,
		Skip:      skip,
		SortBy:    sortBy,
		SortDesc:  sortOrder == "desc",
	}, nil
}
