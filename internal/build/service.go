package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/ctfpress/internal/config"
	"git.home.luguber.info/inful/ctfpress/internal/event"
	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
	"git.home.luguber.info/inful/ctfpress/internal/logfields"
	"git.home.luguber.info/inful/ctfpress/internal/metrics"
	"git.home.luguber.info/inful/ctfpress/internal/output"
)

// Service runs conversions. The zero value is not usable; use NewService.
type Service struct {
	recorder metrics.Recorder
	newRunID func() string
}

// NewService returns a Service that records no metrics.
func NewService() *Service {
	return &Service{
		recorder: metrics.NoopRecorder{},
		newRunID: uuid.NewString,
	}
}

// WithRecorder sets the metrics recorder. A nil recorder restores the no-op one.
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Options maps the run configuration onto the processor's options.
func Options(cfg config.Config) event.Options {
	return event.Options{
		Dialect:       cfg.DialectValue(),
		RewritePrefix: cfg.Prefix(),
		Authors:       cfg.AuthorList(),
	}
}

// Run converts every event under cfg.Input into cfg.Output. The report is
// always returned, also on error. The error is non-nil when the input root
// cannot be enumerated, the context is canceled or any event failed.
func (s *Service) Run(ctx context.Context, cfg config.Config) (*Report, error) {
	report := newReport(s.newRunID(), cfg.Input, cfg.Output, cfg.DialectValue().String())
	logger := slog.Default().With(logfields.RunID(report.RunID))
	logger.Info("Starting conversion",
		slog.String("input", cfg.Input),
		slog.String("output", cfg.Output),
		logfields.Dialect(report.Dialect))

	dirs, err := DiscoverEvents(cfg.Input)
	if err != nil {
		report.finish(false)
		s.finish(logger, report)
		return report, err
	}

	opts := Options(cfg)
	writer := output.NewWriter(cfg.Output)

	for _, dir := range dirs {
		if ctx.Err() != nil {
			report.finish(true)
			s.finish(logger, report)
			return report, ferrors.WrapError(ctx.Err(), ferrors.CategoryRuntime, "conversion canceled").Build()
		}
		result := s.runEvent(logger, dir, opts, writer)
		report.Events = append(report.Events, result)
	}

	report.finish(false)
	s.finish(logger, report)
	return report, failureError(report)
}

func (s *Service) runEvent(logger *slog.Logger, dir string, opts event.Options, writer *output.Writer) (result EventResult) {
	start := time.Now()
	result.Name = filepath.Base(dir)
	logger = logger.With(logfields.Event(result.Name))

	defer func() {
		result.Duration = time.Since(start)
		s.recorder.ObserveEventDuration(result.Name, result.Duration)
		s.recorder.IncEventResult(result.resultLabel())
		s.recorder.AddPages(result.Pages)
		s.recorder.AddAssets(result.Assets)
		s.recorder.AddSkipped(len(result.Skipped))
	}()

	plan, err := event.Process(dir, opts)
	if err != nil {
		result.setErr(err)
		logger.Error("Event failed to load", logfields.Error(err))
		return result
	}
	for _, sk := range plan.Skipped {
		result.Skipped = append(result.Skipped, sk.Key)
	}

	written, err := writer.Write(plan)
	result.Pages = written.Pages
	result.Assets = written.Assets
	if err != nil {
		result.setErr(err)
		logger.Error("Event output incomplete", logfields.Error(err))
		return result
	}

	logger.Info("Event converted",
		logfields.Pages(result.Pages),
		logfields.Assets(result.Assets),
		logfields.Skipped(len(result.Skipped)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return result
}

func (s *Service) finish(logger *slog.Logger, report *Report) {
	s.recorder.ObserveRunDuration(report.End.Sub(report.Start))
	s.recorder.IncRunOutcome(report.metricsOutcome())
	logger.Info("Conversion finished", slog.String("summary", report.Summary()))
}

// failureError joins the errors of all failed events under a classified
// error carrying the first failure's category.
func failureError(report *Report) error {
	failed := report.FailedEvents()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, f := range failed {
		errs = append(errs, fmt.Errorf("%s: %w", f.Name, f.Err()))
	}
	return ferrors.WrapError(errors.Join(errs...), ferrors.GetCategory(failed[0].Err()),
		fmt.Sprintf("%d of %d events failed", len(failed), len(report.Events))).
		WithContext("failed", len(failed)).
		Build()
}
