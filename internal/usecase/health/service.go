// Package health aggregates component availability checks.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all required components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckNotConfigured indicates an optional component that is not wired in.
	CheckNotConfigured CheckResult = "not_configured"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks.
type Service struct {
	db        DBPinger
	embedding EmbeddingReporter
}

// New creates a health service.
func New(db DBPinger, embedding EmbeddingReporter) *Service {
	return &Service{db: db, embedding: embedding}
}

// Check runs the component checks. The embedding provider is optional;
// its absence is reported but does not degrade the service.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	status := Healthy
	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		status = Degraded
	} else {
		checks["database"] = CheckOK
	}

	if s.embedding != nil && s.embedding.Configured() {
		checks["embedding"] = CheckOK
	} else {
		checks["embedding"] = CheckNotConfigured
	}

	return Report{Status: status, Checks: checks}
}
