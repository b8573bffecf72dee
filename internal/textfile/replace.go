package textfile

import (
	"bufio"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// ErrIndexOutOfRange is wrapped by ReplaceLine when the index does not name an existing line.
var ErrIndexOutOfRange = stderrors.New("line index out of range")

// ReadLines returns the lines of path with their terminators. A final line without a
// terminator is returned as is.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(err, path)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if stderrors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "read file").
				WithContext("path", path).Build()
		}
	}
}

// ReplaceLine overwrites the line at index with line. line is written verbatim, so it
// must carry its own terminator. The file is replaced atomically and keeps its mode.
func ReplaceLine(path, line string, index int) error {
	lines, err := ReadLines(path)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return errors.WrapError(ErrIndexOutOfRange, errors.CategoryValidation, "replace line").
			WithContext("path", path).
			WithContext("index", index).
			WithContext("lines", len(lines)).
			Build()
	}
	lines[index] = line
	return writeAtomic(path, strings.Join(lines, ""))
}

func writeAtomic(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return openError(err, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create temporary file").
			WithContext("path", path).Build()
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapError(err, errors.CategoryFileSystem, "write temporary file").
			WithContext("path", tmpPath).Build()
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.WrapError(err, errors.CategoryFileSystem, "close temporary file").
			WithContext("path", tmpPath).Build()
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		cleanup()
		return errors.WrapError(err, errors.CategoryFileSystem, "set file mode").
			WithContext("path", tmpPath).Build()
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return errors.WrapError(err, errors.CategoryFileSystem, "replace file").
			WithContext("path", path).Build()
	}
	return nil
}

func openError(err error, path string) error {
	if os.IsNotExist(err) {
		return errors.WrapError(err, errors.CategoryNotFound, "file not found").
			WithContext("path", path).Build()
	}
	return errors.WrapError(err, errors.CategoryFileSystem, "open file").
		WithContext("path", path).Build()
}
