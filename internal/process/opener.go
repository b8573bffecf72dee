package process

import (
	"context"
	"runtime"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// Opener opens files in the user's browser.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// BrowserOpener hands a path to the platform's default opener through a Runner.
type BrowserOpener struct {
	Runner Runner
	// GOOS overrides runtime.GOOS; used by tests.
	GOOS string
}

// Open runs the platform opener for path.
func (o BrowserOpener) Open(ctx context.Context, path string) error {
	cmd := OpenCommand(o.goos(), path)
	code, err := o.Runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.ProcessError("open in browser failed").
			WithContext("path", path).
			WithContext("exit_code", code).
			Warning().
			Build()
	}
	return nil
}

func (o BrowserOpener) goos() string {
	if o.GOOS != "" {
		return o.GOOS
	}
	return runtime.GOOS
}

// OpenCommand returns the command that opens path on goos.
func OpenCommand(goos, path string) Command {
	switch goos {
	case "darwin":
		return Command{Name: "open", Args: []string{path}}
	case "windows":
		return Command{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler", path}}
	default:
		return Command{Name: "xdg-open", Args: []string{path}}
	}
}
