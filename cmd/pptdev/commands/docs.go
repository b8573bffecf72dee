package commands

import (
	"context"
	"fmt"
)

// DocsCmd implements the 'docs' command.
type DocsCmd struct{}

func (d *DocsCmd) Run(ctx context.Context, g *Global) error {
	index, err := g.App.GenerateDocumentation(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(g.stdout(), index)
	return nil
}
