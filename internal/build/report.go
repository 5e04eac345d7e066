package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/ctfpress/internal/metrics"
)

// Outcome is the typed enumeration of final run result states.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning" // every event written, some challenges skipped
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// EventResult is the isolated outcome of one event folder.
type EventResult struct {
	Name     string        `json:"name"`
	Pages    int           `json:"pages"`
	Assets   int           `json:"assets"`
	Skipped  []string      `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`

	err error
}

// Err returns the error that failed the event, if any.
func (r EventResult) Err() error { return r.err }

// Failed reports whether the event failed to load or to write.
func (r EventResult) Failed() bool { return r.err != nil }

func (r *EventResult) setErr(err error) {
	r.err = err
	if err != nil {
		r.Error = err.Error()
	}
}

func (r EventResult) resultLabel() metrics.ResultLabel {
	switch {
	case r.Failed():
		return metrics.ResultFailed
	case len(r.Skipped) > 0:
		return metrics.ResultWarning
	default:
		return metrics.ResultSuccess
	}
}

// Report captures a whole conversion run.
type Report struct {
	SchemaVersion int           `json:"schema_version"`
	RunID         string        `json:"run_id"`
	Input         string        `json:"input"`
	Output        string        `json:"output"`
	Dialect       string        `json:"dialect"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	Events        []EventResult `json:"events"`
	Outcome       Outcome       `json:"outcome"`
}

func newReport(runID, input, output, dialect string) *Report {
	return &Report{
		SchemaVersion: 1,
		RunID:         runID,
		Input:         input,
		Output:        output,
		Dialect:       dialect,
		Start:         time.Now(),
		Events:        []EventResult{},
	}
}

// Pages is the number of pages written across all events.
func (r *Report) Pages() int {
	n := 0
	for _, e := range r.Events {
		n += e.Pages
	}
	return n
}

// Assets is the number of assets copied across all events.
func (r *Report) Assets() int {
	n := 0
	for _, e := range r.Events {
		n += e.Assets
	}
	return n
}

// Skipped is the number of challenges dropped across all events.
func (r *Report) Skipped() int {
	n := 0
	for _, e := range r.Events {
		n += len(e.Skipped)
	}
	return n
}

// FailedEvents returns the results of events that failed.
func (r *Report) FailedEvents() []EventResult {
	var out []EventResult
	for _, e := range r.Events {
		if e.Failed() {
			out = append(out, e)
		}
	}
	return out
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	dur := r.End.Sub(r.Start)
	return fmt.Sprintf("events=%d failed=%d pages=%d assets=%d skipped=%d duration=%s outcome=%s",
		len(r.Events), len(r.FailedEvents()), r.Pages(), r.Assets(), r.Skipped(), dur.Truncate(time.Millisecond), r.Outcome)
}

func (r *Report) finish(canceled bool) {
	r.End = time.Now()
	switch {
	case canceled:
		r.Outcome = OutcomeCanceled
	case len(r.FailedEvents()) > 0:
		r.Outcome = OutcomeFailed
	case r.Skipped() > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

func (r *Report) metricsOutcome() metrics.OutcomeLabel {
	switch r.Outcome {
	case OutcomeSuccess:
		return metrics.OutcomeSuccess
	case OutcomeWarning:
		return metrics.OutcomeWarning
	default:
		return metrics.OutcomeFailed
	}
}

// Persist writes the report as indented JSON to path, atomically.
func (r *Report) Persist(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure folder for report: %w", err)
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp report json: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atomic rename report json: %w", err)
	}
	return nil
}
