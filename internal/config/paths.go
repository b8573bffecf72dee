package config

import "path/filepath"

// Path resolves rel against the project root. Absolute paths are returned unchanged.
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Project.Root, rel)
}

func (c *Config) PyprojectPath() string   { return c.Path("pyproject.toml") }
func (c *Config) VersionFilePath() string { return c.Path(c.Project.VersionFile) }
func (c *Config) DocsDir() string         { return c.Path(c.Docs.Dir) }

// PackageSourcePath is the package directory handed to sphinx-apidoc.
func (c *Config) PackageSourcePath() string {
	return c.Path(filepath.Join(c.Project.SourceDir, PackageDir(c.Project.Name)))
}
