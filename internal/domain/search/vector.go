package search

import (
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

// Vector search pagination bounds.
const (
	VectorDefaultLimit = 10
	VectorMaxLimit     = 50

	// CandidateMultiplier sizes the over-fetch pool: searching 20x the
	// requested limit improves recall before truncation.
	CandidateMultiplier = 20
)

// VectorQuery is a validated semantic search request.
type VectorQuery struct {
	Text  string
	Limit int
}

// NewVectorQuery validates the query text and limit bounds.
func NewVectorQuery(text string, limit int) (VectorQuery, error) {
	if text == "" {
		return VectorQuery{}, fmt.Errorf("%w: query text is required", domain.ErrValidation)
	}
	if limit == 0 {
		limit = VectorDefaultLimit
	}
	if limit < 1 || limit > VectorMaxLimit {
		return VectorQuery{}, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, VectorMaxLimit)
	}
	return VectorQuery{Text: text, Limit: limit}, nil
}

// NumCandidates returns the over-fetch candidate pool size for the query.
func (q VectorQuery) NumCandidates() int {
	return q.Limit * CandidateMultiplier
}

// VectorResult is one semantic search hit: a projection subset of the
// movie plus the engine-reported similarity score (higher = more similar).
type VectorResult struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Plot      string   `json:"plot,omitempty"`
	Poster    string   `json:"poster,omitempty"`
	Year      *int     `json:"year,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Directors []string `json:"directors,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	Score     float64  `json:"score"`
}
