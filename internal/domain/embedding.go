package domain

import "context"

// EmbedMode tells the provider how the text will be used; query and
// document embeddings are asymmetric in the Voyage models.
type EmbedMode string

// Embedding input types.
const (
	EmbedModeQuery    EmbedMode = "query"
	EmbedModeDocument EmbedMode = "document"
)

// EmbeddingResult carries the vector and token usage of one embedding call.
type EmbeddingResult struct {
	Embedding   []float32
	TotalTokens int
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string, mode EmbedMode) (EmbeddingResult, error)
}
