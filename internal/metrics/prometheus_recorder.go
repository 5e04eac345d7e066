package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "ctfpress"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	eventDuration *prom.HistogramVec
	eventResults  *prom.CounterVec
	pages         prom.Counter
	assets        prom.Counter
	skipped       prom.Counter
	runDuration   prom.Histogram
	runOutcome    *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		eventDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "event_duration_seconds",
			Help:      "Duration of processing and writing one event folder",
			Buckets:   prom.DefBuckets,
		}, []string{"event"}),
		eventResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "event_results_total",
			Help:      "Event results by outcome",
		}, []string{"result"}),
		pages: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_written_total",
			Help:      "Index and challenge pages written",
		}),
		assets: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "assets_copied_total",
			Help:      "Asset files copied verbatim",
		}),
		skipped: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "challenges_skipped_total",
			Help:      "Declared challenges dropped because their document was unreadable",
		}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total conversion run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.eventDuration, pr.eventResults, pr.pages, pr.assets, pr.skipped, pr.runDuration, pr.runOutcome)
	return pr
}

func (p *PrometheusRecorder) ObserveEventDuration(event string, d time.Duration) {
	if p == nil {
		return
	}
	p.eventDuration.WithLabelValues(event).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncEventResult(result ResultLabel) {
	if p == nil {
		return
	}
	p.eventResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddPages(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.pages.Add(float64(n))
}

func (p *PrometheusRecorder) AddAssets(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.assets.Add(float64(n))
}

func (p *PrometheusRecorder) AddSkipped(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.skipped.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}
