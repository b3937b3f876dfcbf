// Package vector implements the semantic search use case.
package vector

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// Service handles semantic search: query embedding followed by vector
// similarity over the embedded catalog.
type Service struct {
	repo  Repository
	embed domain.Embedder
}

// New creates a vector search service. A nil embedder marks the provider
// as unconfigured; searches then fail fast without touching the store.
func New(repo Repository, embed domain.Embedder) *Service {
	return &Service{repo: repo, embed: embed}
}

// Configured reports whether an embedding provider is wired in.
func (s *Service) Configured() bool {
	return s.embed != nil
}

// Search embeds the query text and returns the most similar movies.
// Provider errors pass through untranslated so the transport layer can
// map their type and status.
func (s *Service) Search(ctx context.Context, q search.VectorQuery) ([]search.VectorResult, error) {
	if s.embed == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	emb, err := s.embed.Embed(ctx, q.Text, domain.EmbedModeQuery)
	if err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, emb.Embedding, q)
}
