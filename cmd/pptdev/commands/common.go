// Package commands defines the pptdev subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ppt/internal/config"
	"git.home.luguber.info/inful/ppt/internal/entrypoints"
)

// Global is shared by every subcommand. AfterApply fills Config and App.
type Global struct {
	Config *config.Config
	App    *entrypoints.App

	// ExitCode is the status main exits with when Run returns no error.
	ExitCode int

	// NewApp builds the App once the configuration is loaded. Nil means entrypoints.NewApp.
	NewApp func(cfg *config.Config) *entrypoints.App
	// Stdout receives command output. Nil means os.Stdout.
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Tool configuration file path" default:".configs/ppt.yaml" env:"PPT_CONFIG"`
	LogConfig string           `name:"log-config" help:"Override the JSON logging configuration path"`
	Dev       bool             `help:"Enable debug logging"`
	Version   kong.VersionFlag `short:"V" name:"version" help:"Show version and exit"`

	Docs  DocsCmd  `cmd:"" help:"Regenerate the Sphinx API docs and build the HTML site"`
	Test  TestCmd  `cmd:"" help:"Run the test suite under coverage"`
	CI    CICmd    `cmd:"" name:"ci" help:"Run the local CI steps"`
	Bump  BumpCmd  `cmd:"" help:"Bump the package version"`
	Info  InfoCmd  `cmd:"" help:"Show build and package version information"`
}

// AfterApply runs after flag parsing; loads the configuration and builds the App once.
func (c *CLI) AfterApply(g *Global) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.LogConfig != "" {
		cfg.Logging.Config = c.LogConfig
	}

	newApp := g.NewApp
	if newApp == nil {
		newApp = entrypoints.NewApp
	}
	g.Config = cfg
	g.App = newApp(cfg)
	return nil
}

func (c *CLI) level() slog.Level {
	if c.Dev {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
