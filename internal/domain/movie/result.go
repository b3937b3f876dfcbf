package movie

// BatchInsertResult reports the outcome of a multi-document insert.
type BatchInsertResult struct {
	InsertedCount int      `json:"insertedCount"`
	InsertedIDs   []string `json:"insertedIds"`
}

// BatchUpdateResult reports the outcome of a filtered multi-document update.
type BatchUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports the number of documents removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
