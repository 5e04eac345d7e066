package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/ctfpress/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	RunFlags `embed:""`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := w.Resolve(root)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	out := g.out()
	watcher := watch.New(cfg.Input, func(ctx context.Context) error {
		return RunBuild(ctx, cfg, out)
	}).Ignore(cfg.Output)
	if cfg.ReportFile != "" {
		watcher.Ignore(cfg.ReportFile)
	}
	if cfg.MetricsFile != "" {
		watcher.Ignore(cfg.MetricsFile)
	}
	return watcher.Run(ctx)
}
