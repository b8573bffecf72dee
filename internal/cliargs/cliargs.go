// Package cliargs parses the flags of the general ppt entry point.
package cliargs

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// DefaultBumpPart is the value of a bare -v/--vbump.
const DefaultBumpPart = "patch"

// ErrHelp is returned when -h or --help was given.
var ErrHelp = pflag.ErrHelp

// Args holds the parsed command line.
type Args struct {
	// Dev enables debug logging.
	Dev bool
	// VBump names the version part to bump; empty when -v/--vbump was not given.
	VBump string
	// DisableCov skips the coverage report.
	DisableCov bool
}

func (a Args) String() string {
	vbump := "<unset>"
	if a.VBump != "" {
		vbump = a.VBump
	}
	return fmt.Sprintf("dev=%t vbump=%s disablecov=%t", a.Dev, vbump, a.DisableCov)
}

func newFlagSet(a *Args) *pflag.FlagSet {
	fs := pflag.NewFlagSet("ppt", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	fs.BoolVar(&a.Dev, "dev", false, "Enables dev mode.")
	fs.StringVarP(&a.VBump, "vbump", "v", "", "Increment version number (major, minor or patch).")
	fs.Lookup("vbump").NoOptDefVal = DefaultBumpPart
	fs.BoolVar(&a.DisableCov, "disablecov", false, "Disables coverage report generation.")
	return fs
}

// ParseInput parses args, defaulting to os.Args[1:] when args is nil.
// The value of -v/--vbump is optional and may follow the flag as a separate token.
func ParseInput(args []string) (Args, error) {
	if args == nil {
		args = os.Args[1:]
	}

	var parsed Args
	fs := newFlagSet(&parsed)
	if err := fs.Parse(attachOptionalValues(args)); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return Args{}, ErrHelp
		}
		return Args{}, errors.WrapError(err, errors.CategoryValidation, "invalid arguments").Build()
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Args{}, errors.ValidationError("unrecognized arguments: " + strings.Join(rest, " ")).Build()
	}

	logging.Logger("ppt.cliargs").Debug("Args read in", "args", parsed.String())
	return parsed, nil
}

// attachOptionalValues rewrites the separated and attached forms of -v/--vbump to
// "--vbump=part" so an optional value is consumed instead of becoming a positional.
func attachOptionalValues(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if (a == "-v" || a == "--vbump") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, "--vbump="+args[i+1])
			i++
			continue
		}
		if len(a) > 2 && strings.HasPrefix(a, "-v") && a[2] != '=' {
			out = append(out, "--vbump="+a[2:])
			continue
		}
		out = append(out, a)
	}
	return out
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	var a Args
	fs := newFlagSet(&a)
	_, _ = fmt.Fprintf(w, "usage: ppt [-h] [--dev] [-v [VBUMP]] [--disablecov]\n\nParse inputs from cli.\n\noptions:\n")
	_, _ = io.WriteString(w, fs.FlagUsages())
}
