package commands

import (
	"fmt"

	"git.home.luguber.info/inful/ppt/internal/version"
	"git.home.luguber.info/inful/ppt/internal/versioning"
)

// InfoCmd implements the 'info' command.
type InfoCmd struct{}

func (i *InfoCmd) Run(g *Global) error {
	live, err := g.App.LiveSource().Current()
	if err != nil {
		live = versioning.NotAvailable
	}
	w := g.stdout()
	_, _ = fmt.Fprintln(w, version.String())
	_, _ = fmt.Fprintf(w, "%s %s\n", g.Config.Project.Name, live)
	return nil
}
