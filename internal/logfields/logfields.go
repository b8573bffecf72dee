package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLogger     = "logger"
	KeyRunID      = "run_id"
	KeyStep       = "step"
	KeyTool       = "tool"
	KeyExitCode   = "exit_code"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyPart       = "part"
	KeyVersion    = "version"
	KeyIndex      = "index"
	KeyCommit     = "commit"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Logger(name string) slog.Attr  { return slog.String(KeyLogger, name) }
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Step(name string) slog.Attr    { return slog.String(KeyStep, name) }
func Tool(name string) slog.Attr    { return slog.String(KeyTool, name) }
func ExitCode(code int) slog.Attr   { return slog.Int(KeyExitCode, code) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Part(p string) slog.Attr       { return slog.String(KeyPart, p) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Index(i int) slog.Attr         { return slog.Int(KeyIndex, i) }
func Commit(hash string) slog.Attr  { return slog.String(KeyCommit, hash) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
