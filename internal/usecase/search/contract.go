package search

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// Repository defines the storage contract for compound search.
type Repository interface {
	Search(ctx context.Context, req search.Request) (search.Response, error)
}
