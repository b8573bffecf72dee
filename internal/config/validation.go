package config

import (
	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// Validate rejects configurations the entry points cannot run.
func (c *Config) Validate() error {
	if _, err := ParseVersionSource(string(c.Project.VersionSource)); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid project.version_source").Build()
	}
	if c.Project.VersionMarker == "" {
		return errors.ConfigError("project.version_marker must not be empty").Build()
	}

	seen := make(map[string]bool, len(c.CI.Steps))
	for i, s := range c.CI.Steps {
		if s.Name == "" {
			return errors.ConfigError("ci step without name").WithContext("index", i).Build()
		}
		if len(s.Command) == 0 || s.Command[0] == "" {
			return errors.ConfigError("ci step without command").WithContext("step", s.Name).Build()
		}
		if seen[s.Name] {
			return errors.ConfigError("duplicate ci step name").WithContext("step", s.Name).Build()
		}
		seen[s.Name] = true
	}
	return nil
}
