package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"git.home.luguber.info/inful/ctfpress/internal/build"
	"git.home.luguber.info/inful/ctfpress/internal/config"
	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	RunFlags `embed:""`
}

func (d *DiscoverCmd) Run(g *Global, root *CLI) error {
	cfg, err := d.Resolve(root)
	if err != nil {
		return err
	}
	return RunDiscover(context.Background(), cfg, g.out())
}

// RunDiscover prints what a build would produce. It fails when any event
// could not be planned.
func RunDiscover(ctx context.Context, cfg config.Config, out io.Writer) error {
	plans, err := build.PlanAll(ctx, cfg)
	if err != nil {
		return err
	}

	failed := 0
	for _, ep := range plans {
		if ep.Err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "%s: error: %v\n", ep.Name, ep.Err)
			continue
		}
		p := ep.Plan
		_, _ = fmt.Fprintf(out, "%s: %q (%s)\n", p.Folder, p.Meta.Name, p.Meta.Date)
		for _, page := range p.Pages {
			_, _ = fmt.Fprintf(out, "  page   %s\n", filepath.ToSlash(page.Path))
		}
		for _, sk := range p.Skipped {
			_, _ = fmt.Fprintf(out, "  skip   %s\n", sk.Key)
		}
		for _, a := range p.Assets {
			_, _ = fmt.Fprintf(out, "  asset  %s\n", filepath.ToSlash(a.RelPath))
		}
	}
	_, _ = fmt.Fprintf(out, "%d events, %d failed\n", len(plans), failed)

	if failed > 0 {
		return ferrors.MetadataError(fmt.Sprintf("%d of %d events could not be loaded", failed, len(plans))).Build()
	}
	return nil
}
