package vector

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// Repository defines the storage contract for vector search.
type Repository interface {
	Search(ctx context.Context, queryVector []float32, q search.VectorQuery) ([]search.VectorResult, error)
}
