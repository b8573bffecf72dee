package entrypoints

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/process"
)

// GenerateDocumentation regenerates the Sphinx API sources and rebuilds the HTML docs.
// Tool exit statuses are logged; an error is returned only when a tool cannot be run.
// It returns the absolute path of the generated index page.
func (a *App) GenerateDocumentation(ctx context.Context) (string, error) {
	_ = a.SetupLogging(slog.LevelDebug)
	log := a.log()
	cfg := a.Config

	docsDir, err := filepath.Abs(cfg.DocsDir())
	if err != nil {
		return "", err
	}
	src, err := filepath.Abs(cfg.PackageSourcePath())
	if err != nil {
		return "", err
	}
	if rel, err := filepath.Rel(docsDir, src); err == nil {
		src = rel
	}
	makeCmd := a.makeCommand(docsDir)

	run := func(name string, args ...string) (int, error) {
		return a.Runner.Run(ctx, process.Command{Name: name, Args: args, Dir: docsDir, Stderr: a.stderr()})
	}

	code, err := run("sphinx-apidoc", "-o", cfg.Docs.Output, src)
	if err != nil {
		return "", err
	}
	log.DebugContext(ctx, fmt.Sprintf("Generation returned: %d", code), logfields.ExitCode(code))

	log.InfoContext(ctx, "Removing all existing docs under build.")
	code, err = run(makeCmd, "clean")
	if err != nil {
		return "", err
	}
	log.DebugContext(ctx, fmt.Sprintf("Make Clean returned: %d", code), logfields.ExitCode(code))

	log.InfoContext(ctx, "Creating new documentation.")
	code, err = run(makeCmd, "html")
	if err != nil {
		return "", err
	}
	log.DebugContext(ctx, fmt.Sprintf("Make html returned: %d", code), logfields.ExitCode(code))

	index := filepath.ToSlash(filepath.Join(docsDir, "build", "html", "index.html"))
	log.InfoContext(ctx, "Documentation is available at: "+index, logfields.Path(index))

	if cfg.Docs.OpenBrowser && a.Opener != nil {
		if err := a.Opener.Open(ctx, index); err != nil {
			log.WarnContext(ctx, "Could not open documentation in browser", logfields.Error(err))
		}
	}
	return index, nil
}

// makeCommand prefers a make wrapper shipped in the docs directory over one on PATH.
func (a *App) makeCommand(docsDir string) string {
	m := a.Config.Docs.Make
	if filepath.IsAbs(m) {
		return m
	}
	local := filepath.Join(docsDir, m)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return local
	}
	return m
}
