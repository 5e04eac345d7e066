package metrics

import "time"

// ResultLabel enumerates per-event result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning" // written, but some challenges were skipped
	ResultFailed  ResultLabel = "failed"
)

// OutcomeLabel enumerates whole-run outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeWarning OutcomeLabel = "warning"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for conversion runs.
type Recorder interface {
	ObserveEventDuration(event string, d time.Duration)
	IncEventResult(result ResultLabel)
	AddPages(n int)
	AddAssets(n int)
	AddSkipped(n int)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveEventDuration(string, time.Duration) {}
func (NoopRecorder) IncEventResult(ResultLabel)                 {}
func (NoopRecorder) AddPages(int)                               {}
func (NoopRecorder) AddAssets(int)                              {}
func (NoopRecorder) AddSkipped(int)                             {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                 {}
