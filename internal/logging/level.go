package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/foundation/normalization"
)

// LevelCritical sits above slog.LevelError and renders as CRITICAL.
const LevelCritical = slog.Level(12)

var levelNames = normalization.NewNormalizer("log level", map[string]slog.Level{
	"notset":   slog.Level(-8),
	"debug":    slog.LevelDebug,
	"info":     slog.LevelInfo,
	"warn":     slog.LevelWarn,
	"warning":  slog.LevelWarn,
	"error":    slog.LevelError,
	"critical": LevelCritical,
	"fatal":    LevelCritical,
}, slog.LevelInfo)

// Level is a log level as written in a logging dictionary: either a name such as
// "WARNING" or a numeric value (10, 20, 30, 40, 50).
type Level slog.Level

// UnmarshalJSON accepts level names and numbers.
func (l *Level) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*l = Level(FromNumeric(int(v)))
		return nil
	case string:
		parsed, err := ParseLevel(v)
		if err != nil {
			return err
		}
		*l = Level(parsed)
		return nil
	default:
		return fmt.Errorf("invalid log level %s", string(data))
	}
}

// MarshalJSON writes the level by name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(LevelName(slog.Level(l)))
}

// ParseLevel parses a level name or a numeric string.
func ParseLevel(s string) (slog.Level, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return FromNumeric(n), nil
	}
	return levelNames.NormalizeWithError(s)
}

// FromNumeric converts numeric levels (NOTSET=0, DEBUG=10 ... CRITICAL=50) to slog levels.
func FromNumeric(n int) slog.Level {
	return slog.Level((n - 20) * 2 / 5)
}

// LevelName renders l the way the Python logging module names it.
func LevelName(l slog.Level) string {
	switch {
	case l < slog.LevelDebug:
		return "NOTSET"
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < LevelCritical:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

// levelNumber is the inverse of FromNumeric, used for %(levelno)d.
func levelNumber(l slog.Level) int {
	return int(l)*5/2 + 20
}
