// Package versioning reads and bumps the semantic version declared in a Python package.
//
// The version lives on a single declaration line such as
//
//	__version__ = "1.2.3"
//
// A Bumper finds that line in a target file, increments one component and writes the
// line back as __version__ = '1.2.4'. Components are not reset: bumping the minor
// component of 1.2.3 gives 1.3.3.
package versioning
