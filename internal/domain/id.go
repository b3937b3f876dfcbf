package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts an externally supplied hex string into an ObjectID.
// Wrong length or charset yields ErrInvalidID; every single-record
// operation parses before touching the store.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a valid ObjectId", ErrInvalidID, raw)
	}
	return id, nil
}

// ParseIDs converts a list of hex strings, failing on the first malformed one.
func ParseIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(raw))
	for i, r := range raw {
		id, err := ParseID(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
