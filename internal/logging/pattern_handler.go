package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
)

// RootLoggerName is rendered by %(name)s when a record carries no logger attribute.
const RootLoggerName = "root"

var tokenPattern = regexp.MustCompile(`%\((\w+)\)([-#0 +]*\d*(?:\.\d+)?)([sdifr])|%%`)

var knownFields = map[string]bool{
	"asctime": true, "created": true, "levelname": true, "levelno": true, "name": true,
	"message": true, "lineno": true, "funcName": true, "filename": true, "pathname": true,
	"module": true, "process": true, "msecs": true,
}

type segment struct {
	literal string
	field   string
	verb    string
}

// PatternOptions configures a PatternHandler.
type PatternOptions struct {
	// Format is a %-style pattern, e.g. "%(levelname)s:%(name)s:%(message)s".
	Format string
	// Datefmt is a strftime layout for %(asctime)s. Empty means "2006-01-02 15:04:05,000".
	Datefmt string
	Level   slog.Leveler
}

// PatternHandler is a slog.Handler that renders records through a %-style pattern.
// Timestamps are rendered in UTC. Attributes other than the logger name are appended to
// the message as key=value pairs.
type PatternHandler struct {
	mu       *sync.Mutex
	w        io.Writer
	segments []segment
	datefmt  string
	level    slog.Leveler
	name     string
	attrs    string
	groups   []string
}

// NewPatternHandler compiles opts.Format and returns a handler writing to w.
func NewPatternHandler(w io.Writer, opts PatternOptions) (*PatternHandler, error) {
	segments, err := compilePattern(opts.Format)
	if err != nil {
		return nil, err
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	datefmt := ""
	if opts.Datefmt != "" {
		datefmt = strftimeLayout(opts.Datefmt)
	}
	return &PatternHandler{
		mu:       &sync.Mutex{},
		w:        w,
		segments: segments,
		datefmt:  datefmt,
		level:    level,
	}, nil
}

func compilePattern(format string) ([]segment, error) {
	if format == "" {
		format = "%(message)s"
	}
	var segments []segment
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(format, -1) {
		if m[0] > last {
			segments = append(segments, segment{literal: format[last:m[0]]})
		}
		last = m[1]
		if m[2] < 0 { // %%
			segments = append(segments, segment{literal: "%"})
			continue
		}
		field := format[m[2]:m[3]]
		if !knownFields[field] {
			return nil, errors.ConfigError("unknown format field").WithContext("field", field).Build()
		}
		verb := format[m[6]:m[7]]
		switch verb {
		case "i":
			verb = "d"
		case "r":
			verb = "q"
		}
		segments = append(segments, segment{field: field, verb: "%" + format[m[4]:m[5]] + verb})
	}
	if last < len(format) {
		segments = append(segments, segment{literal: format[last:]})
	}
	return segments, nil
}

// Enabled reports whether the handler's level admits l.
func (h *PatternHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *PatternHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		if len(h.groups) == 0 && a.Key == logfields.KeyLogger {
			clone.name = a.Value.String()
			continue
		}
		appendAttr(&b, h.groups, a)
	}
	clone.attrs = b.String()
	return &clone
}

// WithGroup qualifies subsequent attribute keys with name.
func (h *PatternHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// Handle formats r and writes it followed by a newline.
func (h *PatternHandler) Handle(_ context.Context, r slog.Record) error {
	name := h.name
	var extra strings.Builder
	extra.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if len(h.groups) == 0 && a.Key == logfields.KeyLogger {
			name = a.Value.String()
			return true
		}
		appendAttr(&extra, h.groups, a)
		return true
	})
	if name == "" {
		name = RootLoggerName
	}

	frame := sourceFrame(r.PC)
	values := func(field string) any {
		switch field {
		case "asctime":
			return h.formatTime(r.Time)
		case "created":
			return float64(r.Time.UnixNano()) / float64(time.Second)
		case "msecs":
			return r.Time.Nanosecond() / int(time.Millisecond)
		case "levelname":
			return LevelName(r.Level)
		case "levelno":
			return levelNumber(r.Level)
		case "name":
			return name
		case "message":
			return r.Message + extra.String()
		case "lineno":
			return frame.Line
		case "funcName":
			fn := frame.Function
			if i := strings.LastIndex(fn, "."); i >= 0 {
				fn = fn[i+1:]
			}
			return fn
		case "pathname":
			return frame.File
		case "filename":
			return filepath.Base(frame.File)
		case "module":
			return strings.TrimSuffix(filepath.Base(frame.File), filepath.Ext(frame.File))
		case "process":
			return os.Getpid()
		}
		return ""
	}

	var b strings.Builder
	for _, s := range h.segments {
		if s.field == "" {
			b.WriteString(s.literal)
			continue
		}
		v := values(s.field)
		if strings.HasSuffix(s.verb, "s") || strings.HasSuffix(s.verb, "q") {
			v = fmt.Sprint(v)
		}
		fmt.Fprintf(&b, s.verb, v)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *PatternHandler) formatTime(t time.Time) string {
	t = t.UTC()
	if h.datefmt != "" {
		return t.Format(h.datefmt)
	}
	return t.Format("2006-01-02 15:04:05") + fmt.Sprintf(",%03d", t.Nanosecond()/int(time.Millisecond))
}

func appendAttr(b *strings.Builder, groups []string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, sub, ga)
		}
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	val := a.Value.String()
	if val == "" || strings.ContainsAny(val, " \t\n\"=") {
		val = strconv.Quote(val)
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(val)
}

func sourceFrame(pc uintptr) runtime.Frame {
	if pc == 0 {
		return runtime.Frame{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return frame
}

var strftimeDirectives = map[byte]string{
	'Y': "2006", 'y': "06", 'm': "01", 'd': "02", 'H': "15", 'I': "03", 'M': "04",
	'S': "05", 'p': "PM", 'b': "Jan", 'B': "January", 'a': "Mon", 'A': "Monday",
	'z': "-0700", 'Z': "MST", 'j': "002", '%': "%",
}

// strftimeLayout translates the strftime directives used in logging configs to a Go layout.
func strftimeLayout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			if layout, ok := strftimeDirectives[format[i+1]]; ok {
				b.WriteString(layout)
				i++
				continue
			}
		}
		b.WriteByte(format[i])
	}
	return b.String()
}
