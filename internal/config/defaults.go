package config

import (
	"path/filepath"
	"runtime"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// DefaultProjectName is used when neither the config nor pyproject.toml names the package.
const DefaultProjectName = "ppt"

// Default returns the static defaults. Values that depend on the project on disk are
// filled in by Load.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Root:          ".",
			SourceDir:     "src",
			VersionMarker: "__version__",
			VersionSource: VersionSourceInit,
		},
		Logging: LoggingConfig{Config: logging.DefaultConfigPath},
		Docs: DocsConfig{
			Dir:         "docs",
			Output:      "./source",
			OpenBrowser: true,
		},
		Coverage: CoverageConfig{
			ReportDir:   "coverage_report",
			OpenBrowser: true,
		},
		CI: CIConfig{
			Steps:       DefaultSteps(),
			ShowSummary: true,
		},
	}
}

// DefaultSteps are the format, type check and test steps of the local CI.
func DefaultSteps() []StepConfig {
	return []StepConfig{
		{Name: "format", Description: "format and security checks", Command: []string{"ruff", "format"}},
		{Name: "typecheck", Description: "type checks", Command: []string{"ty", "check"}},
		{Name: "tests", Description: "tests", Command: []string{"pytest"}},
	}
}

// DefaultMake returns the Sphinx make wrapper for the current platform.
func DefaultMake() string {
	if runtime.GOOS == "windows" {
		return "make.bat"
	}
	return "make"
}

func applyDefaults(cfg *Config) error {
	p := &cfg.Project
	if p.Root == "" {
		p.Root = "."
	}
	if p.SourceDir == "" {
		p.SourceDir = "src"
	}
	if p.VersionMarker == "" {
		p.VersionMarker = "__version__"
	}
	if p.VersionSource == "" {
		p.VersionSource = VersionSourceInit
	} else {
		vs, err := ParseVersionSource(string(p.VersionSource))
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "invalid project.version_source").Build()
		}
		p.VersionSource = vs
	}

	if p.Name == "" {
		p.Name = DefaultProjectName
		py, err := ReadPyproject(cfg.PyprojectPath())
		switch {
		case err == nil && py.Project.Name != "":
			p.Name = py.Project.Name
		case err != nil && !errors.HasCategory(err, errors.CategoryNotFound):
			logging.Logger("ppt.config").Warn("Could not read pyproject.toml",
				logfields.Path(cfg.PyprojectPath()), logfields.Error(err))
		}
	}
	if p.VersionFile == "" {
		p.VersionFile = filepath.Join(p.SourceDir, PackageDir(p.Name), "__init__.py")
	}

	if cfg.Docs.Dir == "" {
		cfg.Docs.Dir = "docs"
	}
	if cfg.Docs.Output == "" {
		cfg.Docs.Output = "./source"
	}
	if cfg.Docs.Make == "" {
		cfg.Docs.Make = DefaultMake()
	}
	if cfg.Coverage.ReportDir == "" {
		cfg.Coverage.ReportDir = "coverage_report"
	}
	if cfg.Logging.Config == "" {
		cfg.Logging.Config = logging.DefaultConfigPath
	}
	return nil
}

// PackageDir converts a distribution name to its import package directory.
func PackageDir(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "-", "_")
}
