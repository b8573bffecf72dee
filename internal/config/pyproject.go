package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/BurntSushi/toml"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// Pyproject holds the parts of pyproject.toml the tool reads.
type Pyproject struct {
	Project PyprojectProject `toml:"project"`
}

// PyprojectProject is the [project] table.
type PyprojectProject struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Dynamic []string `toml:"dynamic"`
}

// ReadPyproject decodes the [project] table of the pyproject.toml at path.
func ReadPyproject(path string) (*Pyproject, error) {
	var py Pyproject
	if _, err := toml.DecodeFile(path, &py); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapError(err, errors.CategoryNotFound, "pyproject.toml not found").
				WithContext("path", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "parse pyproject.toml").
			WithContext("path", path).Build()
	}
	return &py, nil
}
