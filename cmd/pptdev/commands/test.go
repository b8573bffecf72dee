package commands

import (
	"context"
)

// TestCmd implements the 'test' command.
type TestCmd struct {
	DisableCov bool `name:"disablecov" help:"Skip the HTML coverage report"`
}

func (t *TestCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	var args []string
	if root.Dev {
		args = append(args, "--dev")
	}
	if t.DisableCov {
		args = append(args, "--disablecov")
	}
	code, err := g.App.RunTesting(ctx, args)
	if err != nil {
		return err
	}
	g.ExitCode = code
	return nil
}
