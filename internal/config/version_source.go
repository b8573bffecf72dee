package config

import "git.home.luguber.info/inful/ppt/internal/foundation/normalization"

// VersionSource selects where the live package version is read from.
type VersionSource string

const (
	VersionSourceInit      VersionSource = "init"
	VersionSourcePyproject VersionSource = "pyproject"
)

var versionSources = normalization.NewNormalizer("version source", map[string]VersionSource{
	"init":      VersionSourceInit,
	"pyproject": VersionSourcePyproject,
}, VersionSourceInit)

// ParseVersionSource normalizes s.
func ParseVersionSource(s string) (VersionSource, error) {
	return versionSources.NormalizeWithError(s)
}
