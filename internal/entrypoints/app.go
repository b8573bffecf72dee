// Package entrypoints implements the ppt commands: the general entry point, documentation
// generation, the test run with coverage, and the local CI.
package entrypoints

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/ppt/internal/config"
	"git.home.luguber.info/inful/ppt/internal/logging"
	"git.home.luguber.info/inful/ppt/internal/metrics"
	"git.home.luguber.info/inful/ppt/internal/process"
	"git.home.luguber.info/inful/ppt/internal/versioning"
)

// App bundles what the entry points need. Fields left nil are filled by NewApp.
type App struct {
	Config   *config.Config
	Runner   process.Runner
	Opener   process.Opener
	Recorder metrics.Recorder
	Stdout   io.Writer
	Stderr   io.Writer

	// LogSetup installs the process logger at level. Tests replace it to keep the
	// global logger untouched.
	LogSetup func(level slog.Level) error
}

// NewApp returns an App wired to real processes and the configured logging dictionary.
func NewApp(cfg *config.Config) *App {
	runner := process.ExecRunner{}
	return &App{
		Config: cfg,
		Runner: runner,
		Opener: process.BrowserOpener{Runner: runner},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LogSetup: func(level slog.Level) error {
			_, err := logging.Setup(cfg.Logging.Config, level)
			return err
		},
	}
}

// SetupLogging installs the process logger at level. Failures are printed to Stderr.
func (a *App) SetupLogging(level slog.Level) error {
	if a.LogSetup == nil {
		return nil
	}
	if err := a.LogSetup(level); err != nil {
		_, _ = fmt.Fprintf(a.stderr(), "logging setup failed: %v\n", err)
		return err
	}
	return nil
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return io.Discard
	}
	return a.Stderr
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return io.Discard
	}
	return a.Stdout
}

func (a *App) log() *slog.Logger {
	return logging.Logger("ppt.entrypoints")
}

// LiveSource returns where the package's current version is read from.
func (a *App) LiveSource() versioning.Source {
	if a.Config.Project.VersionSource == config.VersionSourcePyproject {
		return versioning.PyprojectSource{Path: a.Config.PyprojectPath()}
	}
	return versioning.FileSource{Path: a.Config.VersionFilePath(), Marker: a.Config.Project.VersionMarker}
}

// Bumper returns a bumper for the configured version file.
func (a *App) Bumper() *versioning.Bumper {
	return &versioning.Bumper{
		Target: a.Config.VersionFilePath(),
		Marker: a.Config.Project.VersionMarker,
		Live:   a.LiveSource(),
	}
}
