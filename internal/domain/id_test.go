package domain

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID_RoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := ParseID(oid.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != oid {
		t.Errorf("round trip mismatch: got %s, want %s", parsed.Hex(), oid.Hex())
	}
}

func TestParseID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "507f1f77bcf86cd79943901"},
		{"too long", "507f1f77bcf86cd7994390111"},
		{"bad charset", "507f1f77bcf86cd79943901z"},
		{"not hex at all", "definitely-not-an-id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseID(tc.raw)
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("expected ErrInvalidID, got %v", err)
			}
		})
	}
}

func TestParseIDs_FailsOnFirstBadID(t *testing.T) {
	good := primitive.NewObjectID().Hex()

	_, err := ParseIDs([]string{good, "nope"})
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}

	ids, err := ParseIDs([]string{good})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0].Hex() != good {
		t.Errorf("unexpected ids: %v", ids)
	}
}
