package textfile

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
)

// NotFound is returned by SearchFile when no line matches or the file cannot be read.
const NotFound = -1

// SearchFile returns the index of the first line of path containing search, compared
// case-insensitively. Failures to open or read the file are logged and reported as NotFound.
func SearchFile(path, search string) int {
	log := logging.Logger("ppt.textfile")

	f, err := os.Open(path)
	if err != nil {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			log.Error("Could not find file", logfields.Path(abs))
		} else {
			log.Error("Could not open file", logfields.Path(abs), logfields.Error(err))
		}
		return NotFound
	}
	defer func() { _ = f.Close() }()

	fold := cases.Fold()
	needle := fold.String(search)

	r := bufio.NewReader(f)
	for idx := 0; ; idx++ {
		line, err := r.ReadString('\n')
		if line != "" && strings.Contains(fold.String(line), needle) {
			return idx
		}
		if err != nil {
			if !stderrors.Is(err, io.EOF) {
				log.Error("Could not read file", logfields.Path(path), logfields.Error(err))
			}
			return NotFound
		}
	}
}
