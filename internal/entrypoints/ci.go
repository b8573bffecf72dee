package entrypoints

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/metrics"
	"git.home.luguber.info/inful/ppt/internal/pipeline"
)

// RunLocalCI runs the configured CI steps and reports whether all of them passed.
func (a *App) RunLocalCI(ctx context.Context) bool {
	return a.LocalCI(ctx, a.Config.CI.ShowSummary).Passed
}

// LocalCI runs the CI steps, optionally printing a summary table, and returns the report.
// When a metrics textfile is configured the run's metrics are written to it.
func (a *App) LocalCI(ctx context.Context, showSummary bool) *pipeline.Report {
	_ = a.SetupLogging(slog.LevelDebug)
	log := a.log()
	cfg := a.Config

	recorder := a.Recorder
	var prom *metrics.PrometheusRecorder
	if recorder == nil && cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	opts := []pipeline.Option{
		pipeline.WithRecorder(recorder),
		pipeline.WithRepository(cfg.Project.Root),
	}
	if cfg.CI.Spinner {
		opts = append(opts, pipeline.WithProgress(a.Stderr))
	}

	p := pipeline.NewPipeline(pipeline.StepsFromConfig(cfg.CI.Steps, cfg.Project.Root), a.Runner, opts...)
	report := p.Run(ctx)

	if showSummary {
		report.WriteSummary(a.stdout())
	}
	if prom != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, prom.Registry()); err != nil {
			log.WarnContext(ctx, "Could not write metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return report
}
