package versioning

import (
	stderrors "errors"
	"log/slog"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
	"git.home.luguber.info/inful/ppt/internal/logfields"
	"git.home.luguber.info/inful/ppt/internal/logging"
	"git.home.luguber.info/inful/ppt/internal/textfile"
)

const (
	// NotAvailable is returned by Bump when the version could not be changed.
	NotAvailable = "NA"
	// DefaultMarker identifies the version declaration line.
	DefaultMarker = "__version__"
)

// Bumper bumps the version declared in Target. Live answers for the package when the
// requested part is not recognised.
type Bumper struct {
	Target string
	Marker string
	Live   Source
}

// Bump increments part of the version in the target file and returns the new version.
//
// An unknown part leaves the file untouched and returns the live version. Every other
// failure is logged and reported as NotAvailable.
func (b *Bumper) Bump(part string) string {
	log := logging.Logger("ppt.versioning")

	v, err := b.BumpVersion(part)
	if err == nil {
		return v.String()
	}

	if stderrors.Is(err, ErrUnknownPart) {
		live := b.liveVersion()
		log.Error("Unknown part, version unchanged", logfields.Part(part), logfields.Version(live))
		return live
	}

	attrs := []any{logfields.Path(b.Target), logfields.Part(part)}
	if ce, ok := errors.AsClassified(err); ok {
		for _, a := range ce.LogAttrs() {
			attrs = append(attrs, a)
		}
	}
	attrs = append(attrs, logfields.Error(err))
	log.Error("Could not bump version", attrs...)
	return NotAvailable
}

// BumpVersion is Bump with errors. The target file is rewritten only on success.
func (b *Bumper) BumpVersion(part string) (Version, error) {
	p, err := ParsePart(part)
	if err != nil {
		return Version{}, err
	}

	decl, idx, err := findDeclaration(b.Target, markerOrDefault(b.Marker))
	if err != nil {
		return Version{}, err
	}

	current, err := ParseVersion(decl.Value)
	if err != nil {
		return Version{}, err
	}

	next := current.Increment(p)
	newLine := decl.Line(next.String(), textfile.LineSeparator)
	if err := textfile.ReplaceLine(b.Target, newLine, idx); err != nil {
		return Version{}, err
	}

	log := logging.Logger("ppt.versioning")
	log.Debug("Old Version", logfields.Version(current.String()), logfields.Index(idx))
	log.Debug("New Version", slog.String("line", decl.Line(next.String(), "")), logfields.Path(b.Target))
	return next, nil
}

func (b *Bumper) liveVersion() string {
	if b.Live == nil {
		return NotAvailable
	}
	v, err := b.Live.Current()
	if err != nil {
		logging.Logger("ppt.versioning").Error("Could not read live version", logfields.Error(err))
		return NotAvailable
	}
	return v
}
