// Command pptdev runs the development workflows of a Python package: documentation,
// tests with coverage, the local CI and version bumps.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ppt/cmd/pptdev/commands"
	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	var cli commands.CLI
	g := &commands.Global{}

	parser, err := kong.New(&cli,
		kong.Name("pptdev"),
		kong.Description("Development tooling for a Python package."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(g),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(args)
	adapter := errors.NewCLIErrorAdapter(cli.Dev, nil)
	if err != nil {
		// AfterApply errors are already classified; anything else is a usage error.
		if !errors.IsClassified(err) {
			err = errors.WrapError(err, errors.CategoryValidation, "invalid arguments").Build()
		}
		return adapter.Report(os.Stderr, err)
	}
	if err := kctx.Run(&cli); err != nil {
		return adapter.Report(os.Stderr, err)
	}
	return g.ExitCode
}
