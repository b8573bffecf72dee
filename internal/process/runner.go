package process

import (
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// ErrBinaryNotFound is wrapped when a command's executable is not on PATH.
var ErrBinaryNotFound = stderrors.New("executable not found")

// Command describes one external invocation. Nil writers discard output.
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Argv returns the command line as a slice.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Runner runs a command to completion and returns its exit status. A non-zero exit is
// not an error; err is set only when the command could not be run at all, in which case
// the status is -1.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run starts cmd, waits for it and maps the outcome to an exit status.
func (ExecRunner) Run(ctx context.Context, cmd Command) (int, error) {
	log := logging.Logger("ppt.process")

	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return -1, errors.WrapError(stderrors.Join(ErrBinaryNotFound, err), errors.CategoryProcess, "command not found").
			WithContext("tool", cmd.Name).Build()
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	log.Debug("Running command", logfields.Tool(cmd.Name), "argv", cmd.String(), logfields.Path(cmd.Dir))
	err = c.Run()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case stderrors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, errors.WrapError(err, errors.CategoryProcess, "run command").
			WithContext("tool", cmd.Name).
			WithContext("dir", cmd.Dir).
			Build()
	}
}
