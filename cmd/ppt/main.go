// Command ppt is the general project tooling entry point.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/ppt/internal/cliargs"
	"git.home.luguber.info/inful/ppt/internal/config"
	"git.home.luguber.info/inful/ppt/internal/entrypoints"
	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Getenv("PPT_CONFIG"))
	if err != nil {
		return errors.NewCLIErrorAdapter(false, nil).Report(os.Stderr, err)
	}

	err = entrypoints.NewApp(cfg).RunPPT(ctx, args)
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, cliargs.ErrHelp):
		cliargs.Usage(os.Stdout)
		return 0
	case errors.HasCategory(err, errors.CategoryValidation):
		cliargs.Usage(os.Stderr)
		_, _ = fmt.Fprintf(os.Stderr, "ppt: error: %v\n", err)
		return 2
	default:
		return errors.NewCLIErrorAdapter(false, nil).Report(os.Stderr, err)
	}
}
