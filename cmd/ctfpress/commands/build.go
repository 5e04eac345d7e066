package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/ctfpress/internal/build"
	"git.home.luguber.info/inful/ctfpress/internal/config"
	"git.home.luguber.info/inful/ctfpress/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	RunFlags `embed:""`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := b.Resolve(root)
	if err != nil {
		return err
	}
	return RunBuild(context.Background(), cfg, g.out())
}

// RunBuild performs one full conversion, then persists the report and the
// metrics textfile when configured. Persisting is best effort.
func RunBuild(ctx context.Context, cfg config.Config, out io.Writer) error {
	svc := build.NewService()
	var reg *prom.Registry
	if cfg.MetricsFile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	report, runErr := svc.Run(ctx, cfg)

	if cfg.ReportFile != "" && report != nil {
		if err := report.Persist(cfg.ReportFile); err != nil {
			slog.Warn("Failed to write run report", "path", cfg.ReportFile, "error", err)
		}
	}
	if reg != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			slog.Warn("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	if report != nil {
		_, _ = fmt.Fprintln(out, report.Summary())
	}
	return runErr
}
