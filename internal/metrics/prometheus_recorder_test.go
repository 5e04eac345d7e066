package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncEventResult(ResultSuccess)
	pr.IncEventResult(ResultSuccess)
	pr.IncEventResult(ResultFailed)
	pr.AddPages(3)
	pr.AddPages(0)
	pr.AddAssets(2)
	pr.AddSkipped(1)
	pr.IncRunOutcome(OutcomeWarning)
	pr.ObserveEventDuration("ev", 150*time.Millisecond)
	pr.ObserveRunDuration(500 * time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.eventResults.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.eventResults.WithLabelValues("failed")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.pages), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.assets), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.skipped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.runOutcome.WithLabelValues("warning")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncEventResult(ResultSuccess)
		pr.AddPages(1)
		pr.ObserveRunDuration(time.Second)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.AddPages(4)

	path := filepath.Join(t.TempDir(), "ctfpress.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ctfpress_pages_written_total 4")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	reg := prom.NewRegistry()
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"), reg)
	require.Error(t, err)
}
