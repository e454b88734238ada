package metrics

import "time"

// Outcome enumerates configuration load results for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid" // rejected by validation
	OutcomeError   Outcome = "error"   // could not be read or decoded
)

// Recorder defines observability hooks for configuration loading.
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadOutcome(outcome Outcome)
	IncValidationFailure(field string)
	SetCatalogDocuments(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadOutcome(Outcome)            {}
func (NoopRecorder) IncValidationFailure(string)       {}
func (NoopRecorder) SetCatalogDocuments(int)           {}
