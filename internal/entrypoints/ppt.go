package entrypoints

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/ppt/internal/cliargs"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// RunPPT runs the general entry point. Argument errors are returned; everything after
// parsing is logged rather than returned.
func (a *App) RunPPT(ctx context.Context, args []string) error {
	parsed, err := cliargs.ParseInput(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if parsed.Dev {
		level = slog.LevelDebug
	}
	_ = a.SetupLogging(level)

	log := a.log()
	log.InfoContext(ctx, "Successfully loaded in the following args", "args", parsed.String())

	if parsed.VBump != "" {
		newVersion := a.BumpVersion(ctx, parsed.VBump)
		log.InfoContext(ctx, "Version updated to: "+newVersion, logfields.Version(newVersion))
	}
	return nil
}

// BumpVersion bumps part of the configured version file and returns the new version, the
// live version for unknown parts, or versioning.NotAvailable.
func (a *App) BumpVersion(ctx context.Context, part string) string {
	v, _ := logging.Call(ctx, "bump_version", []any{part}, func() (string, error) {
		return a.Bumper().Bump(part), nil
	})
	return v
}
