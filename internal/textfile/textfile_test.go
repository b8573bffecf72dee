package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pperrors "git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "__init__.py")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchFile(t *testing.T) {
	path := writeFile(t, "\"\"\"Package.\"\"\"\n\nimport os\n__version__ = \"1.2.3\"\n__author__ = \"x\"\n")

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"present", "__version__", 3},
		{"first line", "Package", 0},
		{"case insensitive", "__VERSION__", 3},
		{"first match wins", "__", 3},
		{"absent", "__license__", NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchFile(path, tt.search))
		})
	}
}

func TestSearchFileLastLineWithoutNewline(t *testing.T) {
	path := writeFile(t, "a\nb\n__version__ = '0.0.1'")
	assert.Equal(t, 2, SearchFile(path, "__version__"))
}

func TestSearchFileMissing(t *testing.T) {
	assert.Equal(t, NotFound, SearchFile(filepath.Join(t.TempDir(), "nope.py"), "__version__"))
}

func TestSearchFileEmpty(t *testing.T) {
	assert.Equal(t, NotFound, SearchFile(writeFile(t, ""), "x"))
}

func TestReadLinesKeepsTerminators(t *testing.T) {
	lines, err := ReadLines(writeFile(t, "one\r\ntwo\n\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one\r\n", "two\n", "\n", "three"}, lines)
}

func TestReadLinesMissing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, pperrors.HasCategory(err, pperrors.CategoryNotFound))
}

func TestReplaceLine(t *testing.T) {
	original := []string{"l0\n", "l1\r\n", "l2\n", "l3\n", "l4"}
	path := writeFile(t, strings.Join(original, ""))

	require.NoError(t, ReplaceLine(path, "X\n", 2))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 5)
	assert.Equal(t, "X\n", lines[2])
	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, original[i], lines[i], "line %d", i)
	}
}

func TestReplaceLineKeepsMode(t *testing.T) {
	path := writeFile(t, "a\nb\n")
	require.NoError(t, os.Chmod(path, 0o600))

	require.NoError(t, ReplaceLine(path, "c\n", 1))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestReplaceLineOutOfRange(t *testing.T) {
	path := writeFile(t, "a\nb\n")

	for _, idx := range []int{-1, 2, 10} {
		err := ReplaceLine(path, "c\n", idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		assert.True(t, pperrors.HasCategory(err, pperrors.CategoryValidation))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestReplaceLineMissingFile(t *testing.T) {
	err := ReplaceLine(filepath.Join(t.TempDir(), "nope"), "c\n", 0)
	assert.True(t, pperrors.HasCategory(err, pperrors.CategoryNotFound))
}

func TestLineSeparator(t *testing.T) {
	assert.True(t, strings.HasSuffix(LineSeparator, "\n"))
}
