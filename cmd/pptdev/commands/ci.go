package commands

import (
	"context"
)

// CICmd implements the 'ci' command.
type CICmd struct {
	NoSummary bool `name:"no-summary" help:"Do not print the summary table"`
}

func (c *CICmd) Run(ctx context.Context, g *Global) error {
	report := g.App.LocalCI(ctx, g.Config.CI.ShowSummary && !c.NoSummary)
	if !report.Passed {
		g.ExitCode = 1
	}
	return nil
}
