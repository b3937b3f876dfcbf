package vector

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/search"
)

// --- Mocks ---

type mockRepo struct {
	results    []search.VectorResult
	err        error
	called     bool
	lastVector []float32
	lastQuery  search.VectorQuery
}

func (m *mockRepo) Search(_ context.Context, vec []float32, q search.VectorQuery) ([]search.VectorResult, error) {
	m.called = true
	m.lastVector = vec
	m.lastQuery = q
	return m.results, m.err
}

type mockEmbedder struct {
	vec      []float32
	err      error
	lastMode domain.EmbedMode
	lastText string
}

func (m *mockEmbedder) Embed(_ context.Context, text string, mode domain.EmbedMode) (domain.EmbeddingResult, error) {
	m.lastText = text
	m.lastMode = mode
	return domain.EmbeddingResult{Embedding: m.vec, TotalTokens: 3}, m.err
}

func mustQuery(t *testing.T, text string, limit int) search.VectorQuery {
	t.Helper()
	q, err := search.NewVectorQuery(text, limit)
	if err != nil {
		t.Fatalf("NewVectorQuery() error = %v", err)
	}
	return q
}

// --- Tests ---

func TestSearchUnconfiguredEmbedder(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, nil)

	if svc.Configured() {
		t.Error("Configured() = true with nil embedder")
	}

	_, err := svc.Search(context.Background(), mustQuery(t, "space western", 0))
	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Errorf("Search() error = %v, want ErrEmbeddingUnavailable", err)
	}
	if repo.called {
		t.Error("store was touched without an embedder")
	}
}

func TestSearchEmbedsAsQuery(t *testing.T) {
	repo := &mockRepo{results: []search.VectorResult{{Title: "Solaris", Score: 0.92}}}
	emb := &mockEmbedder{vec: []float32{0.4, 0.5}}
	svc := New(repo, emb)

	got, err := svc.Search(context.Background(), mustQuery(t, "sentient ocean", 5))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Solaris" {
		t.Errorf("results = %+v", got)
	}
	if emb.lastMode != domain.EmbedModeQuery {
		t.Errorf("embed mode = %q, want query", emb.lastMode)
	}
	if emb.lastText != "sentient ocean" {
		t.Errorf("embed text = %q", emb.lastText)
	}
	if len(repo.lastVector) != 2 {
		t.Errorf("query vector = %v", repo.lastVector)
	}
	if repo.lastQuery.Limit != 5 {
		t.Errorf("limit = %d, want 5", repo.lastQuery.Limit)
	}
}

func TestSearchProviderErrorPassesThrough(t *testing.T) {
	provErr := domain.NewVoyageAuthError("")
	svc := New(&mockRepo{}, &mockEmbedder{err: provErr})

	_, err := svc.Search(context.Background(), mustQuery(t, "x", 0))
	var authErr *domain.VoyageAuthError
	if !errors.As(err, &authErr) {
		t.Errorf("Search() error = %v, want untranslated VoyageAuthError", err)
	}
}
