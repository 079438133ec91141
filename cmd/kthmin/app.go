package main

import (
	"context"

	"github.com/kbukum/kthmin/extract"
	"github.com/kbukum/kthmin/finder"
	"github.com/kbukum/kthmin/logger"
	"github.com/kbukum/kthmin/observability"
	"github.com/kbukum/kthmin/selection"
	"github.com/kbukum/kthmin/source"
)

// app is the wired query pipeline.
type app struct {
	cfg    *AppConfig
	log    *logger.Logger
	router *source.Router
	finder *finder.Finder
}

// newApp wires sources, extraction and selection from cfg. metrics may be nil.
func newApp(ctx context.Context, cfg *AppConfig, log *logger.Logger, metrics *observability.Metrics) (*app, error) {
	router, err := source.New(ctx, cfg.Source, log)
	if err != nil {
		return nil, err
	}
	selector, err := selection.New(cfg.Selection)
	if err != nil {
		return nil, err
	}
	f := finder.New(
		extract.New(router, cfg.Extract, log),
		selector,
		finder.WithLogger(log),
		finder.WithMetrics(metrics),
		finder.WithServiceName(cfg.Name),
	)
	return &app{cfg: cfg, log: log, router: router, finder: f}, nil
}
