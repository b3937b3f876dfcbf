// Package search holds the validated request and result types for the
// compound full-text and vector search operations.
package search

import (
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// Operator is the boolean combinator joining the per-field search clauses.
type Operator string

// Compound combinators.
const (
	OperatorMust    Operator = "must"
	OperatorShould  Operator = "should"
	OperatorMustNot Operator = "mustNot"
	OperatorFilter  Operator = "filter"
)

// IsValid reports whether the operator is one of the four combinators.
func (o Operator) IsValid() bool {
	switch o {
	case OperatorMust, OperatorShould, OperatorMustNot, OperatorFilter:
		return true
	}
	return false
}

// Pagination bounds for compound search.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Request is a validated compound search query. Each populated field
// contributes one clause; the operator combines them.
type Request struct {
	Plot      string
	Fullplot  string
	Directors string
	Writers   string
	Cast      string
	Operator  Operator
	Limit     int
	Skip      int
}

// NewRequest validates operator, field presence, and pagination bounds.
// Defaults: operator=must, limit=20, skip=0.
func NewRequest(plot, fullplot, directors, writers, cast string, operator Operator, limit, skip int) (Request, error) {
	if operator == "" {
		operator = OperatorMust
	}
	if !operator.IsValid() {
		return Request{}, fmt.Errorf(
			"%w: %q must be one of must, should, mustNot, filter", domain.ErrInvalidOperator, operator)
	}
	if plot == "" && fullplot == "" && directors == "" && writers == "" && cast == "" {
		return Request{}, domain.ErrMissingSearchTerm
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return Request{}, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, MaxLimit)
	}
	if skip < 0 {
		return Request{}, fmt.Errorf("%w: skip must be >= 0", domain.ErrValidation)
	}

	return Request{
		Plot:      plot,
		Fullplot:  fullplot,
		Directors: directors,
		Writers:   writers,
		Cast:      cast,
		Operator:  operator,
		Limit:     limit,
		Skip:      skip,
	}, nil
}

// Response is the count-and-page result of a compound search.
type Response struct {
	Movies     []movie.Movie `json:"movies"`
	TotalCount int64         `json:"totalCount"`
}
