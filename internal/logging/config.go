package logging

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// DefaultConfigPath is where Setup looks for a logging dictionary when none is given.
const DefaultConfigPath = "./.configs/log.conf"

const (
	ClassStreamHandler = "logging.StreamHandler"
	ClassFileHandler   = "logging.FileHandler"

	StreamStdout = "ext://sys.stdout"
	StreamStderr = "ext://sys.stderr"

	// FormatJSON as a formatter's format selects JSON output.
	FormatJSON = "json"
)

// Config is a logging dictionary.
type Config struct {
	Version                int                        `json:"version"`
	DisableExistingLoggers bool                       `json:"disable_existing_loggers"`
	Formatters             map[string]FormatterConfig `json:"formatters"`
	Handlers               map[string]HandlerConfig   `json:"handlers"`
	Root                   RootConfig                 `json:"root"`
}

// FormatterConfig describes how records are rendered.
type FormatterConfig struct {
	Format  string `json:"format"`
	Datefmt string `json:"datefmt,omitempty"`
}

// HandlerConfig describes one output.
type HandlerConfig struct {
	Class     string `json:"class"`
	Formatter string `json:"formatter,omitempty"`
	Level     *Level `json:"level,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Stream    string `json:"stream,omitempty"`
}

// RootConfig configures the root logger.
type RootConfig struct {
	Level    *Level   `json:"level,omitempty"`
	Handlers []string `json:"handlers"`
}

// DefaultFormat mirrors the console format the Python package ships with.
const DefaultFormat = "%(asctime)s - %(levelname)s - %(name)s - %(lineno)d - \n\t%(message)s\n"

// DefaultConfig returns the built-in configuration: one console handler on stderr.
func DefaultConfig() *Config {
	debug := Level(slog.LevelDebug)
	rootLevel := debug
	return &Config{
		Version:                1,
		DisableExistingLoggers: false,
		Formatters: map[string]FormatterConfig{
			"log_stream": {Format: DefaultFormat},
		},
		Handlers: map[string]HandlerConfig{
			"consoleHandler": {
				Class:     ClassStreamHandler,
				Formatter: "log_stream",
				Level:     &debug,
			},
		},
		Root: RootConfig{
			Level:    &rootLevel,
			Handlers: []string{"consoleHandler"},
		},
	}
}

// LoadConfig reads a logging dictionary from path. found is false when the file does not
// exist, in which case the default configuration is returned without error.
func LoadConfig(path string) (cfg *Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), false, nil
		}
		return nil, false, errors.WrapError(err, errors.CategoryConfig, "read logging config").
			WithContext("path", path).Build()
	}

	cfg = &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, true, errors.WrapError(err, errors.CategoryConfig, "parse logging config").
			WithContext("path", path).Build()
	}
	if err := cfg.Validate(); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// Validate checks version and cross references between root, handlers and formatters.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return errors.ConfigError("unsupported logging config version").WithContext("version", c.Version).Build()
	}
	for name, h := range c.Handlers {
		if h.Formatter != "" {
			if _, ok := c.Formatters[h.Formatter]; !ok {
				return errors.ConfigError("handler references unknown formatter").
					WithContext("handler", name).WithContext("formatter", h.Formatter).Build()
			}
		}
		switch h.Class {
		case ClassStreamHandler:
		case ClassFileHandler:
			if h.Filename == "" {
				return errors.ConfigError("file handler without filename").WithContext("handler", name).Build()
			}
		default:
			return errors.ConfigError("unsupported handler class").
				WithContext("handler", name).WithContext("class", h.Class).Build()
		}
	}
	for _, name := range c.Root.Handlers {
		if _, ok := c.Handlers[name]; !ok {
			return errors.ConfigError("root references unknown handler").WithContext("handler", name).Build()
		}
	}
	return nil
}

// LogFiles returns the filename of every handler that writes to a file.
func (c *Config) LogFiles() []string {
	var files []string
	for _, name := range sortedKeys(c.Handlers) {
		if f := c.Handlers[name].Filename; f != "" {
			files = append(files, f)
		}
	}
	return files
}
