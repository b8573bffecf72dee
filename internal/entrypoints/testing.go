package entrypoints

import (
	"context"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/ppt/internal/cliargs"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/process"
)

// RunTesting runs the test suite under coverage and, unless --disablecov is given, builds
// the HTML coverage report and opens it. It returns the exit status of the test run.
func (a *App) RunTesting(ctx context.Context, args []string) (int, error) {
	parsed, err := cliargs.ParseInput(args)
	if err != nil {
		return 2, err
	}

	level := slog.LevelWarn
	if parsed.Dev {
		level = slog.LevelDebug
	}
	_ = a.SetupLogging(level)
	log := a.log()

	root, err := filepath.Abs(a.Config.Project.Root)
	if err != nil {
		return -1, err
	}
	run := func(args ...string) (int, error) {
		return a.Runner.Run(ctx, process.Command{Name: "coverage", Args: args, Dir: root, Stdout: a.stdout(), Stderr: a.stderr()})
	}

	testCode, err := run("run", "-m", "pytest")
	if err != nil {
		return -1, err
	}
	log.DebugContext(ctx, "Test run finished", logfields.ExitCode(testCode))

	if parsed.DisableCov {
		return testCode, nil
	}

	reportDir := a.Config.Coverage.ReportDir
	code, err := run("html", "-d", reportDir)
	if err != nil {
		return testCode, err
	}
	log.DebugContext(ctx, "Coverage report generated", logfields.ExitCode(code))

	if !filepath.IsAbs(reportDir) {
		reportDir = filepath.Join(root, reportDir)
	}
	index := filepath.ToSlash(filepath.Join(reportDir, "index.html"))
	if a.Config.Coverage.OpenBrowser && a.Opener != nil {
		if err := a.Opener.Open(ctx, index); err != nil {
			log.WarnContext(ctx, "Could not open coverage report in browser", logfields.Error(err))
		}
	}
	return testCode, nil
}
