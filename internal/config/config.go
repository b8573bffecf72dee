// Package config loads the ppt tool configuration and the project metadata it needs from
// pyproject.toml.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// DefaultPath is the tool configuration file looked up when none is given.
const DefaultPath = ".configs/ppt.yaml"

// Config is the ppt tool configuration.
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Logging  LoggingConfig  `yaml:"logging"`
	Docs     DocsConfig     `yaml:"docs"`
	Coverage CoverageConfig `yaml:"coverage"`
	CI       CIConfig       `yaml:"ci"`
	Metrics  MetricsConfig  `yaml:"metrics"`

	// Source is the file the configuration was read from; empty when defaults were used.
	Source string `yaml:"-"`
}

// ProjectConfig locates the Python package being managed.
type ProjectConfig struct {
	Root          string        `yaml:"root"`
	Name          string        `yaml:"name"`           // defaults to [project].name
	SourceDir     string        `yaml:"source_dir"`     // relative to Root
	VersionFile   string        `yaml:"version_file"`   // relative to Root
	VersionMarker string        `yaml:"version_marker"` // text identifying the version line
	VersionSource VersionSource `yaml:"version_source"` // where the live version is read
}

// LoggingConfig points at the JSON logging dictionary.
type LoggingConfig struct {
	Config string `yaml:"config"`
}

// DocsConfig drives documentation generation.
type DocsConfig struct {
	Dir         string `yaml:"dir"`    // relative to Root
	Output      string `yaml:"output"` // sphinx-apidoc output, relative to Dir
	Make        string `yaml:"make"`
	OpenBrowser bool   `yaml:"open_browser"`
}

// CoverageConfig drives the coverage report.
type CoverageConfig struct {
	ReportDir   string `yaml:"report_dir"`
	OpenBrowser bool   `yaml:"open_browser"`
}

// CIConfig lists the local CI steps.
type CIConfig struct {
	Steps       []StepConfig `yaml:"steps"`
	ShowSummary bool         `yaml:"show_summary"`
	Spinner     bool         `yaml:"spinner"`
}

// StepConfig is one CI step.
type StepConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Command     []string `yaml:"command"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load reads the configuration at path (DefaultPath when empty). Environment variables
// from .env files and the process are expanded first. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	log := logging.Logger("ppt.config")

	if loaded := loadEnvFiles(); len(loaded) > 0 {
		log.Debug("Loaded environment files", "files", loaded)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		log.Debug("Tool config not found, using defaults", logfields.Path(path))
	case err != nil:
		return nil, errors.WrapError(err, errors.CategoryConfig, "read config").
			WithContext("path", path).Build()
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "parse config").
				WithContext("path", path).Build()
		}
		cfg.Source = path
	}

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
