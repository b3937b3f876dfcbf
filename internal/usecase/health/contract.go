package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingReporter reports whether an embedding provider is wired in.
type EmbeddingReporter interface {
	Configured() bool
}
