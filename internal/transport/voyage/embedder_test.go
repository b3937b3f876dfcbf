package voyage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain"
)

func newTestEmbedder(t *testing.T, handler http.HandlerFunc) *Embedder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewEmbedder(&Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Model:      "voyage-3-large",
		Dimensions: 2048,
		Logger:     zap.NewNop(),
	})
}

func TestEmbedSuccess(t *testing.T) {
	var gotReq embeddingRequest
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q, want /embeddings", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"embedding": []float32{0.1, 0.2}}},
			"usage": map[string]any{"total_tokens": 7},
		})
	})

	res, err := e.Embed(context.Background(), "lonely robot", domain.EmbedModeQuery)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(res.Embedding) != 2 || res.TotalTokens != 7 {
		t.Errorf("result = %+v", res)
	}
	if gotReq.InputType != "query" {
		t.Errorf("input_type = %q, want query", gotReq.InputType)
	}
	if gotReq.OutputDimension != 2048 {
		t.Errorf("output_dimension = %d, want 2048", gotReq.OutputDimension)
	}
	if gotReq.Model != "voyage-3-large" {
		t.Errorf("model = %q", gotReq.Model)
	}
}

func TestEmbedAuthFailure(t *testing.T) {
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Provided API key is invalid"}`))
	})

	_, err := e.Embed(context.Background(), "x", domain.EmbedModeQuery)
	var authErr *domain.VoyageAuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want VoyageAuthError", err)
	}
	if authErr.Message != "Provided API key is invalid" {
		t.Errorf("message = %q", authErr.Message)
	}
}

func TestEmbedStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		wantStatus int
	}{
		{"invalid request", http.StatusBadRequest, http.StatusBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity, http.StatusBadRequest},
		{"rate limited", http.StatusTooManyRequests, http.StatusTooManyRequests},
		{"unavailable", http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{"bad gateway", http.StatusBadGateway, http.StatusServiceUnavailable},
		{"unexpected", http.StatusTeapot, http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.upstream)
			})
			_, err := e.Embed(context.Background(), "x", domain.EmbedModeQuery)
			var apiErr *domain.VoyageAPIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want VoyageAPIError", err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestEmbedTransportFailure(t *testing.T) {
	e := NewEmbedder(&Config{
		APIKey:  "k",
		BaseURL: "http://127.0.0.1:1",
		Model:   "voyage-3-large",
		Logger:  zap.NewNop(),
	})

	_, err := e.Embed(context.Background(), "x", domain.EmbedModeQuery)
	var apiErr *domain.VoyageAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want VoyageAPIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
}

func TestEmbedEmptyData(t *testing.T) {
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"usage":{"total_tokens":0}}`))
	})

	_, err := e.Embed(context.Background(), "x", domain.EmbedModeDocument)
	var apiErr *domain.VoyageAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want VoyageAPIError", err)
	}
}
