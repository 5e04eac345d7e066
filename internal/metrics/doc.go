// Package metrics records per-run conversion metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	recorder := metrics.Recorder(metrics.NoopRecorder{})
//	if cfg.MetricsFile != "" {
//	    reg := prom.NewRegistry()
//	    recorder = metrics.NewPrometheusRecorder(reg)
//	    defer metrics.WriteTextfile(cfg.MetricsFile, reg)
//	}
//
// The Prometheus implementation is exported as a node-exporter style textfile
// at the end of a run rather than served over HTTP; a conversion run is a
// short-lived batch job.
package metrics
