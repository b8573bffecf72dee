package versioning

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

// Version is a three component semantic version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "X.Y.Z". Each component must be a non-negative integer; multi-digit
// components are accepted.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, errors.VersionError("version must have three components").
			WithContext("version", s).Build()
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.HasPrefix(p, "+") {
			return Version{}, errors.VersionError("invalid version component").
				WithContext("version", s).WithContext("component", p).Build()
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Increment returns v with component p raised by one. Other components are unchanged.
func (v Version) Increment(p Part) Version {
	switch p {
	case PartMajor:
		v.Major++
	case PartMinor:
		v.Minor++
	case PartPatch:
		v.Patch++
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var declarationPattern = regexp.MustCompile(`^\s*([^\s=]+)\s*=\s*(['"])(.*?)['"]`)

// Declaration is a parsed version declaration line.
type Declaration struct {
	Identifier string
	Value      string
}

// ParseDeclaration extracts the identifier and the quoted value from a line such as
// `__version__ = "1.2.3"`.
func ParseDeclaration(line string) (Declaration, error) {
	m := declarationPattern.FindStringSubmatch(line)
	if m == nil {
		return Declaration{}, errors.VersionError("not a version declaration").
			WithContext("line", strings.TrimSpace(line)).Build()
	}
	return Declaration{Identifier: m[1], Value: m[3]}, nil
}

// Line renders the declaration for value with single quotes and the given terminator.
func (d Declaration) Line(value, terminator string) string {
	return fmt.Sprintf("%s = '%s'%s", d.Identifier, value, terminator)
}
