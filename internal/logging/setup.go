package logging

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
)

// Options controls Setup. Zero values select the process streams and DefaultConfigPath.
type Options struct {
	ConfigPath string
	Level      slog.Level
	Stdout     io.Writer
	Stderr     io.Writer
}

// Runtime describes the configuration Setup applied.
type Runtime struct {
	Config *Config
	// Source is the resolved path of the loaded file, empty when the default was used.
	Source  string
	LogDirs []string
	Level   *slog.LevelVar
	Logger  *slog.Logger

	closers []io.Closer
}

// Close closes log files opened by Setup. The binaries never call it; log files stay
// open for the lifetime of the process.
func (rt *Runtime) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c.Close())
	}
	rt.closers = nil
	return stderrors.Join(errs...)
}

// Setup loads the logging dictionary at cfgPath (DefaultConfigPath when empty), falls back
// to DefaultConfig when the file does not exist, and installs the result as the process
// default logger with level as the root minimum.
func Setup(cfgPath string, level slog.Level) (*Runtime, error) {
	return SetupWithOptions(Options{ConfigPath: cfgPath, Level: level})
}

// SetupWithOptions is Setup with injectable output streams.
// Each call re-applies the configuration; handlers from earlier calls are replaced, and
// files opened by earlier calls are not closed.
func SetupWithOptions(opts Options) (*Runtime, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigPath
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, found, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{Config: cfg, Level: new(slog.LevelVar)}
	rt.Level.Set(opts.Level)
	if found {
		if abs, err := filepath.Abs(opts.ConfigPath); err == nil {
			rt.Source = filepath.ToSlash(abs)
		} else {
			rt.Source = opts.ConfigPath
		}
	}

	for _, file := range cfg.LogFiles() {
		dir, err := GenerateLogLocation(file)
		if err != nil {
			return nil, err
		}
		rt.LogDirs = append(rt.LogDirs, dir)
	}

	handlers, err := rt.buildHandlers(opts)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	rt.Logger = slog.New(&fanoutHandler{root: rt.Level, handlers: handlers})
	slog.SetDefault(rt.Logger)

	log := Logger("ppt.logging")
	for _, dir := range rt.LogDirs {
		log.Info("New log file location", logfields.Path(dir))
	}
	if found {
		log.Info("Configuration loaded", logfields.Path(rt.Source))
	} else {
		log.Info("Logging config not found, using default configuration", logfields.Path(opts.ConfigPath))
	}
	return rt, nil
}

func (rt *Runtime) buildHandlers(opts Options) ([]slog.Handler, error) {
	cfg := rt.Config
	handlers := make([]slog.Handler, 0, len(cfg.Root.Handlers))
	for _, name := range cfg.Root.Handlers {
		hc := cfg.Handlers[name]

		var w io.Writer
		switch hc.Class {
		case ClassFileHandler:
			flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
			if hc.Mode == "w" {
				flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
			}
			f, err := os.OpenFile(hc.Filename, flags, 0o640)
			if err != nil {
				return nil, errors.WrapError(err, errors.CategoryFileSystem, "open log file").
					WithContext("handler", name).WithContext("path", hc.Filename).Build()
			}
			rt.closers = append(rt.closers, f)
			w = f
		default:
			w = opts.Stderr
			if hc.Stream == StreamStdout {
				w = opts.Stdout
			}
		}

		var level slog.Leveler = slog.Level(-8)
		if hc.Level != nil {
			level = slog.Level(*hc.Level)
		}

		formatter := cfg.Formatters[hc.Formatter]
		if formatter.Format == FormatJSON {
			handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       level,
				AddSource:   true,
				ReplaceAttr: utcTime,
			}))
			continue
		}

		h, err := NewPatternHandler(w, PatternOptions{Format: formatter.Format, Datefmt: formatter.Datefmt, Level: level})
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	return handlers, nil
}

func utcTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.TimeValue(a.Value.Time().UTC().Truncate(time.Millisecond))
	}
	return a
}

// Logger returns the current default logger tagged with a logger name, rendered by
// %(name)s. Call it at log time rather than caching the result across Setup calls.
func Logger(name string) *slog.Logger {
	return slog.Default().With(logfields.Logger(name))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
