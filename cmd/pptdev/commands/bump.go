package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// BumpCmd implements the 'bump' command.
type BumpCmd struct {
	Part string `arg:"" optional:"" default:"patch" help:"Version part to increment (major, minor or patch)"`
	File string `short:"f" help:"Version file to rewrite instead of the configured one" type:"path"`
}

// Run bumps the version strictly: unlike the ppt entry point an unknown part or a missing
// declaration is an error.
func (b *BumpCmd) Run(ctx context.Context, g *Global, root *CLI) error {
	_ = g.App.SetupLogging(root.level())

	bumper := g.App.Bumper()
	if b.File != "" {
		bumper.Target = b.File
	}
	v, err := bumper.BumpVersion(b.Part)
	if err != nil {
		return err
	}
	logging.Logger("ppt.pptdev").InfoContext(ctx, "Version bumped", logfields.Path(bumper.Target), logfields.Version(v.String()))
	_, _ = fmt.Fprintln(g.stdout(), v.String())
	return nil
}
