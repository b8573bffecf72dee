package versioning

import (
	"git.home.luguber.info/inful/ppt/internal/config"
	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/textfile"
)

// Source reports the version the package currently declares.
type Source interface {
	Current() (string, error)
}

// FileSource reads the version from the declaration line of a source file, usually the
// package __init__.py.
type FileSource struct {
	Path   string
	Marker string
}

// Current returns the quoted value of the first line containing the marker.
func (s FileSource) Current() (string, error) {
	decl, _, err := findDeclaration(s.Path, markerOrDefault(s.Marker))
	if err != nil {
		return "", err
	}
	return decl.Value, nil
}

// PyprojectSource reads [project].version from pyproject.toml.
type PyprojectSource struct {
	Path string
}

// Current returns the static project version. Projects with a dynamic version have none.
func (s PyprojectSource) Current() (string, error) {
	py, err := config.ReadPyproject(s.Path)
	if err != nil {
		return "", err
	}
	if py.Project.Version == "" {
		return "", errors.NotFoundError("pyproject.toml declares no static version").
			WithContext("path", s.Path).Build()
	}
	return py.Project.Version, nil
}

// findDeclaration locates and parses the first line of path containing marker.
func findDeclaration(path, marker string) (Declaration, int, error) {
	idx := textfile.SearchFile(path, marker)
	if idx == textfile.NotFound {
		return Declaration{}, idx, errors.NotFoundError("version declaration not found").
			WithContext("path", path).WithContext("marker", marker).Build()
	}
	lines, err := textfile.ReadLines(path)
	if err != nil {
		return Declaration{}, idx, err
	}
	if idx >= len(lines) {
		return Declaration{}, idx, errors.NotFoundError("version declaration vanished").
			WithContext("path", path).Build()
	}
	decl, err := ParseDeclaration(lines[idx])
	if err != nil {
		return Declaration{}, idx, err
	}
	return decl, idx, nil
}

func markerOrDefault(m string) string {
	if m == "" {
		return DefaultMarker
	}
	return m
}
