package build

import (
	"context"
	"path/filepath"

	"git.home.luguber.info/inful/ctfpress/internal/config"
	"git.home.luguber.info/inful/ctfpress/internal/event"
)

// EventPlan pairs an event folder with its plan or the error that prevented one.
type EventPlan struct {
	Name string
	Plan *event.Plan
	Err  error
}

// PlanAll processes every event under cfg.Input without writing anything.
func PlanAll(ctx context.Context, cfg config.Config) ([]EventPlan, error) {
	dirs, err := DiscoverEvents(cfg.Input)
	if err != nil {
		return nil, err
	}
	opts := Options(cfg)
	plans := make([]EventPlan, 0, len(dirs))
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return plans, err
		}
		plan, err := event.Process(dir, opts)
		plans = append(plans, EventPlan{Name: filepath.Base(dir), Plan: plan, Err: err})
	}
	return plans, nil
}
