package versioning

import (
	stderrors "errors"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/foundation/normalization"
)

// Part names one component of a version.
type Part int

const (
	PartMajor Part = iota
	PartMinor
	PartPatch
)

// DefaultPart is bumped when no part is given.
const DefaultPart = PartPatch

// ErrUnknownPart is wrapped when a part name is not major, minor or patch.
var ErrUnknownPart = stderrors.New("unknown version part")

var partNames = normalization.NewNormalizer("version part", map[string]Part{
	"major": PartMajor,
	"minor": PartMinor,
	"patch": PartPatch,
}, DefaultPart)

// ParsePart trims and case-folds s and maps it onto a Part.
func ParsePart(s string) (Part, error) {
	p, ok := partNames.Lookup(s)
	if !ok {
		return 0, errors.WrapError(ErrUnknownPart, errors.CategoryValidation, "parse version part").
			WithContext("part", s).
			WithContext("valid", partNames.ValidKeys()).
			Build()
	}
	return p, nil
}

func (p Part) String() string {
	switch p {
	case PartMajor:
		return "major"
	case PartMinor:
		return "minor"
	case PartPatch:
		return "patch"
	default:
		return "unknown"
	}
}
