// Package voyage is a minimal client for the Voyage AI embeddings API.
// The official surface needed here (input_type, output_dimension) is not
// expressible through the generic OpenAI-compatible SDKs, so the HTTP
// call is made directly.
package voyage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/metrics"
)

const provider = "voyage"

// Embedder is an embedding provider backed by the Voyage AI API.
type Embedder struct {
	apiKey     string
	baseURL    string
	model      string
	dimensions int
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds the embedding provider settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
	Logger     *zap.Logger
}

// NewEmbedder creates a Voyage embedding provider.
func NewEmbedder(cfg *Config) *Embedder {
	return &Embedder{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		httpClient: &http.Client{},
		logger:     cfg.Logger,
	}
}

type embeddingRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	InputType       string   `json:"input_type,omitempty"`
	OutputDimension int      `json:"output_dimension,omitempty"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Embed implements domain.Embedder. Returns the vector and token usage
// with transport-level metrics.
func (e *Embedder) Embed(ctx context.Context, text string, mode domain.EmbedMode) (domain.EmbeddingResult, error) {
	payload := embeddingRequest{
		Input:     []string{text},
		Model:     e.model,
		InputType: string(mode),
	}
	if e.dimensions > 0 {
		payload.OutputDimension = e.dimensions
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("encode embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("build embedding request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()

	resp, err := e.httpClient.Do(req)

	duration := time.Since(start)

	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(provider, e.model, "transport_error").Inc()
		return domain.EmbeddingResult{}, domain.NewVoyageAPIError(
			fmt.Sprintf("Failed to generate embedding: %s", err), http.StatusInternalServerError)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(provider, e.model, "transport_error").Inc()
		return domain.EmbeddingResult{}, domain.NewVoyageAPIError(
			fmt.Sprintf("Failed to read embedding response: %s", err), http.StatusInternalServerError)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(provider, e.model, "api_error").Inc()
		return domain.EmbeddingResult{}, apiError(resp.StatusCode, raw)
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(provider, e.model, "decode_error").Inc()
		return domain.EmbeddingResult{}, domain.NewVoyageAPIError(
			fmt.Sprintf("Malformed embedding response: %s", err), http.StatusInternalServerError)
	}
	if len(parsed.Data) == 0 {
		metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "error").Inc()
		metrics.EmbeddingErrorsTotal.WithLabelValues(provider, e.model, "empty_response").Inc()
		return domain.EmbeddingResult{}, domain.NewVoyageAPIError(
			"Empty embedding response", http.StatusInternalServerError)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(provider, e.model, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(provider, e.model).Observe(duration.Seconds())
	if parsed.Usage.TotalTokens > 0 {
		metrics.EmbeddingTokensTotal.WithLabelValues(provider, e.model).Add(float64(parsed.Usage.TotalTokens))
	}

	return domain.EmbeddingResult{
		Embedding:   parsed.Data[0].Embedding,
		TotalTokens: parsed.Usage.TotalTokens,
	}, nil
}

// apiError maps an upstream failure status onto the domain error types.
// Auth failures get their own type; everything else keeps the upstream
// status so the caller can relay it.
func apiError(status int, body []byte) error {
	detail := extractDetail(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		if detail == "" {
			return domain.NewVoyageAuthError("")
		}
		return domain.NewVoyageAuthError(detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewVoyageAPIError(message(detail, "Invalid embedding request"), http.StatusBadRequest)
	case http.StatusTooManyRequests:
		return domain.NewVoyageAPIError(message(detail, "Voyage AI rate limit exceeded"), http.StatusTooManyRequests)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return domain.NewVoyageAPIError(message(detail, "Voyage AI service unavailable"), http.StatusServiceUnavailable)
	default:
		return domain.NewVoyageAPIError(message(detail, fmt.Sprintf("Voyage AI error %d", status)), status)
	}
}

func message(detail, fallback string) string {
	if detail != "" {
		return detail
	}
	return fallback
}

// extractDetail pulls the "detail" field from a Voyage error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
