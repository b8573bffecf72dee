package logging

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// DefaultLogDir is used when a handler does not name a file.
const DefaultLogDir = "logs"

// GenerateLogLocation makes sure the folder holding logPath exists and returns it as a
// slash-separated absolute path. An empty logPath selects DefaultLogDir itself.
func GenerateLogLocation(logPath string) (string, error) {
	dir := DefaultLogDir
	if logPath != "" {
		dir = filepath.Dir(logPath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "resolve log directory").
			WithContext("path", logPath).Build()
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "create log directory").
			WithContext("path", abs).Build()
	}
	return filepath.ToSlash(abs), nil
}
