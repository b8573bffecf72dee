package entrypoints

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/ppt/internal/config"
	pperrors "git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logging"
	"git.home.luguber.info/inful/ppt/internal/process/processtest"
	"git.home.luguber.info/inful/ppt/internal/textfile"
	"git.home.luguber.info/inful/ppt/internal/versioning"
)

type harness struct {
	app    *App
	root   string
	runner *processtest.FakeRunner
	opener *processtest.FakeOpener
	levels []slog.Level
	logs   *bytes.Buffer
	stdout *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "ppt"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "ppt", "__init__.py"),
		[]byte("\"\"\"ppt.\"\"\"\n__version__ = \"0.1.9\"\n"), 0o644))

	cfg := config.Default()
	cfg.Project.Root = root
	cfg.Project.Name = "ppt"
	cfg.Project.VersionFile = filepath.Join("src", "ppt", "__init__.py")
	cfg.Docs.Make = "make"

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	logs := &bytes.Buffer{}
	h, err := logging.NewPatternHandler(logs, logging.PatternOptions{Format: "%(levelname)s %(message)s", Level: slog.LevelDebug})
	require.NoError(t, err)
	slog.SetDefault(slog.New(h))

	hs := &harness{
		root:   root,
		runner: processtest.NewFakeRunner(),
		opener: &processtest.FakeOpener{},
		logs:   logs,
		stdout: &bytes.Buffer{},
	}
	hs.app = &App{
		Config: cfg,
		Runner: hs.runner,
		Opener: hs.opener,
		Stdout: hs.stdout,
		Stderr: &bytes.Buffer{},
		LogSetup: func(level slog.Level) error {
			hs.levels = append(hs.levels, level)
			return nil
		},
	}
	return hs
}

func (h *harness) versionLine(t *testing.T) string {
	t.Helper()
	lines, err := textfile.ReadLines(filepath.Join(h.root, "src", "ppt", "__init__.py"))
	require.NoError(t, err)
	return lines[1]
}

func TestRunPPTLogLevels(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.app.RunPPT(ctx, []string{}))
	require.NoError(t, h.app.RunPPT(ctx, []string{"--dev"}))
	assert.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelDebug}, h.levels)
	assert.Empty(t, h.runner.Commands)
}

func TestRunPPTBumpsVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.RunPPT(context.Background(), []string{"-v", "minor"}))
	assert.Equal(t, "__version__ = '0.2.9'"+textfile.LineSeparator, h.versionLine(t))
	assert.Contains(t, h.logs.String(), "Version updated to: 0.2.9")

	require.NoError(t, h.app.RunPPT(context.Background(), []string{"--vbump"}))
	assert.Equal(t, "__version__ = '0.2.10'"+textfile.LineSeparator, h.versionLine(t))
}

func TestRunPPTUnknownPartKeepsFile(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.RunPPT(context.Background(), []string{"-v", "sprint"}))
	assert.Equal(t, "__version__ = \"0.1.9\"\n", h.versionLine(t))
	assert.Contains(t, h.logs.String(), "Version updated to: 0.1.9")
}

func TestRunPPTInvalidArgs(t *testing.T) {
	h := newHarness(t)
	err := h.app.RunPPT(context.Background(), []string{"--bogus"})
	require.Error(t, err)
	assert.True(t, pperrors.HasCategory(err, pperrors.CategoryValidation))
	assert.Empty(t, h.levels, "logging is not configured on parse failure")
}

func TestBumpVersionPyprojectLiveSource(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "pyproject.toml"),
		[]byte("[project]\nname = \"ppt\"\nversion = \"7.0.0\"\n"), 0o644))
	h.app.Config.Project.VersionSource = config.VersionSourcePyproject

	assert.Equal(t, "7.0.0", h.app.BumpVersion(context.Background(), "sprint"))
}

func TestBumpVersionMissingFile(t *testing.T) {
	h := newHarness(t)
	h.app.Config.Project.VersionFile = "missing.py"
	assert.Equal(t, versioning.NotAvailable, h.app.BumpVersion(context.Background(), "patch"))
}

func TestGenerateDocumentation(t *testing.T) {
	h := newHarness(t)

	index, err := h.app.GenerateDocumentation(context.Background())
	require.NoError(t, err)

	docsDir := filepath.Join(h.root, "docs")
	assert.Equal(t, filepath.ToSlash(filepath.Join(docsDir, "build", "html", "index.html")), index)
	assert.Equal(t, [][]string{
		{"sphinx-apidoc", "-o", "./source", filepath.Join("..", "src", "ppt")},
		{"make", "clean"},
		{"make", "html"},
	}, h.runner.Argvs())
	for _, c := range h.runner.Commands {
		assert.Equal(t, docsDir, c.Dir)
		assert.Nil(t, c.Stdout)
	}
	assert.Equal(t, []string{index}, h.opener.Paths)
	assert.Equal(t, []slog.Level{slog.LevelDebug}, h.levels)
	assert.Contains(t, h.logs.String(), "Documentation is available at: "+index)
}

func TestGenerateDocumentationLocalMakeWrapper(t *testing.T) {
	h := newHarness(t)
	h.app.Config.Docs.Make = "make.bat"
	h.app.Config.Docs.OpenBrowser = false
	wrapper := filepath.Join(h.root, "docs", "make.bat")
	require.NoError(t, os.WriteFile(wrapper, []byte("@echo off\n"), 0o755))

	_, err := h.app.GenerateDocumentation(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{wrapper, "clean"}, h.runner.Argvs()[1])
	assert.Empty(t, h.opener.Paths)
}

func TestGenerateDocumentationToolFailures(t *testing.T) {
	h := newHarness(t)
	h.runner.Script("make", processtest.Result{Code: 2})

	_, err := h.app.GenerateDocumentation(context.Background())
	require.NoError(t, err, "non-zero exits are logged, not returned")
	assert.Contains(t, h.logs.String(), "Make html returned: 2")

	h = newHarness(t)
	missing := errors.New("executable not found")
	h.runner.Script("sphinx-apidoc", processtest.Result{Code: -1, Err: missing})
	_, err = h.app.GenerateDocumentation(context.Background())
	assert.ErrorIs(t, err, missing)
	assert.Len(t, h.runner.Commands, 1)
}

func TestRunTestingWithCoverage(t *testing.T) {
	h := newHarness(t)

	code, err := h.app.RunTesting(context.Background(), []string{})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	assert.Equal(t, [][]string{
		{"coverage", "run", "-m", "pytest"},
		{"coverage", "html", "-d", "coverage_report"},
	}, h.runner.Argvs())
	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(h.root, "coverage_report", "index.html"))}, h.opener.Paths)
	assert.Same(t, h.stdout, h.runner.Commands[0].Stdout)
}

func TestRunTestingDisableCoverage(t *testing.T) {
	h := newHarness(t)
	h.runner.Script("coverage", processtest.Result{Code: 1})

	code, err := h.app.RunTesting(context.Background(), []string{"--disablecov"})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, [][]string{{"coverage", "run", "-m", "pytest"}}, h.runner.Argvs())
	assert.Empty(t, h.opener.Paths)
}

func TestRunTestingInvalidArgs(t *testing.T) {
	h := newHarness(t)
	code, err := h.app.RunTesting(context.Background(), []string{"positional"})
	require.Error(t, err)
	assert.Equal(t, 2, code)
	assert.Empty(t, h.runner.Commands)
}

func TestRunLocalCI(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.app.RunLocalCI(context.Background()))
	assert.Equal(t, [][]string{{"ruff", "format"}, {"ty", "check"}, {"pytest"}}, h.runner.Argvs())
	assert.Contains(t, h.stdout.String(), "format and security checks", "summary printed")
	assert.Equal(t, []slog.Level{slog.LevelDebug}, h.levels)
}

func TestRunLocalCIFailure(t *testing.T) {
	h := newHarness(t)
	h.app.Config.CI.ShowSummary = false
	h.runner.Script("ruff", processtest.Result{Code: 1})

	assert.False(t, h.app.RunLocalCI(context.Background()))
	assert.Len(t, h.runner.Commands, 3)
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.logs.String(), "A testing step has failed, please check logs.")
}

func TestRunLocalCIPanic(t *testing.T) {
	h := newHarness(t)
	h.runner.Script("ty", processtest.Result{Panic: "unexpected"})

	assert.False(t, h.app.RunLocalCI(context.Background()))
}

func TestRunLocalCIWritesMetrics(t *testing.T) {
	h := newHarness(t)
	h.app.Config.Metrics.Textfile = filepath.Join(t.TempDir(), "ppt.prom")

	require.True(t, h.app.RunLocalCI(context.Background()))

	data, err := os.ReadFile(h.app.Config.Metrics.Textfile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `ppt_ci_run_outcomes_total{outcome="passed"} 1`))
}

func TestLogSetupFailureIsReported(t *testing.T) {
	h := newHarness(t)
	stderr := &bytes.Buffer{}
	h.app.Stderr = stderr
	h.app.LogSetup = func(slog.Level) error { return errors.New("bad config") }

	require.NoError(t, h.app.RunPPT(context.Background(), []string{}))
	assert.Contains(t, stderr.String(), "logging setup failed: bad config")
}
