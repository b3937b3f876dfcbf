// Package report holds the row types produced by the reporting aggregations.
package report

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecentComment is one joined comment, renamed for display.
type RecentComment struct {
	UserName  string    `bson:"userName" json:"userName"`
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Text      string    `bson:"text" json:"text"`
	Date      time.Time `bson:"date" json:"date"`
}

// CommentActivity is one movie with its most recent comments.
type CommentActivity struct {
	OID           primitive.ObjectID `bson:"_id" json:"-"`
	ID            string             `bson:"-" json:"_id"`
	Title         string             `bson:"title" json:"title"`
	Year          int                `bson:"year" json:"year"`
	Genres        []string           `bson:"genres" json:"genres,omitempty"`
	ImdbRating    *float64           `bson:"imdbRating" json:"imdbRating,omitempty"`
	RecentComment []RecentComment    `bson:"recentComments" json:"recentComments"`
	TotalComments int                `bson:"totalComments" json:"totalComments"`
}

// YearStats is the per-year grouping row. Rating statistics cover only
// ratings that were present and numeric; a year with no valid rating
// carries a nil average, not zero.
type YearStats struct {
	Year          int      `bson:"year" json:"year"`
	MovieCount    int      `bson:"movieCount" json:"movieCount"`
	AverageRating *float64 `bson:"averageRating" json:"averageRating"`
	HighestRating *float64 `bson:"highestRating" json:"highestRating"`
	LowestRating  *float64 `bson:"lowestRating" json:"lowestRating"`
	TotalVotes    int64    `bson:"totalVotes" json:"totalVotes"`
}

// DirectorStats is the per-director grouping row.
type DirectorStats struct {
	Director      string   `bson:"director" json:"director"`
	MovieCount    int      `bson:"movieCount" json:"movieCount"`
	AverageRating *float64 `bson:"averageRating" json:"averageRating"`
}

// Comment-report pagination bounds.
const (
	CommentsDefaultLimit = 10
	CommentsMaxLimit     = 50
)

// Director-report pagination bounds.
const (
	DirectorsDefaultLimit = 20
	DirectorsMaxLimit     = 100
)
