package search

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

func TestNewRequest_OperatorValidation(t *testing.T) {
	valid := []Operator{"", OperatorMust, OperatorShould, OperatorMustNot, OperatorFilter}
	for _, op := range valid {
		t.Run("operator="+string(op), func(t *testing.T) {
			req, err := NewRequest("heist", "", "", "", "", op, 0, 0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if op == "" && req.Operator != OperatorMust {
				t.Errorf("expected default operator must, got %q", req.Operator)
			}
		})
	}

	_, err := NewRequest("heist", "", "", "", "", "and", 0, 0)
	if !errors.Is(err, domain.ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestNewRequest_RequiresAtLeastOneField(t *testing.T) {
	_, err := NewRequest("", "", "", "", "", OperatorMust, 10, 0)
	if !errors.Is(err, domain.ErrMissingSearchTerm) {
		t.Errorf("expected ErrMissingSearchTerm, got %v", err)
	}
}

func TestNewRequest_InvalidOperatorWinsOverMissingFields(t *testing.T) {
	// Operator is checked first: a bad combinator is rejected regardless
	// of which fields are populated.
	_, err := NewRequest("", "", "", "", "", "nor", 0, 0)
	if !errors.Is(err, domain.ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator, got %v", err)
	}
}

func TestNewRequest_PaginationBounds(t *testing.T) {
	if _, err := NewRequest("x", "", "", "", "", OperatorMust, 101, 0); !errors.Is(err, domain.ErrValidation) {
		t.Error("expected validation error for limit > 100")
	}
	if _, err := NewRequest("x", "", "", "", "", OperatorMust, 0, -5); !errors.Is(err, domain.ErrValidation) {
		t.Error("expected validation error for negative skip")
	}

	req, err := NewRequest("x", "", "", "", "", OperatorMust, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, req.Limit)
	}
}

func TestNewVectorQuery(t *testing.T) {
	if _, err := NewVectorQuery("", 10); !errors.Is(err, domain.ErrValidation) {
		t.Error("expected validation error for empty query")
	}
	if _, err := NewVectorQuery("space opera", 51); !errors.Is(err, domain.ErrValidation) {
		t.Error("expected validation error for limit > 50")
	}

	q, err := NewVectorQuery("space opera", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit != VectorDefaultLimit {
		t.Errorf("expected default limit %d, got %d", VectorDefaultLimit, q.Limit)
	}
	if q.NumCandidates() != VectorDefaultLimit*CandidateMultiplier {
		t.Errorf("expected %d candidates, got %d", VectorDefaultLimit*CandidateMultiplier, q.NumCandidates())
	}
}
