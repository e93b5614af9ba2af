package dispatch

import "errors"

var (
	// ErrNoDefault is returned when a table has no default entry point.
	ErrNoDefault = errors.New("dispatch: missing default entry point")

	// ErrNotFunc is returned when the entry point type is not a function.
	ErrNotFunc = errors.New("dispatch: entry point is not a function")

	// ErrNilEntryPoint is returned for an entry with a nil function.
	ErrNilEntryPoint = errors.New("dispatch: nil entry point")

	// ErrInvalidRequirement is returned for an entry whose target cannot be
	// parsed or names unknown features.
	ErrInvalidRequirement = errors.New("dispatch: invalid requirement")

	// ErrDuplicateEntry is returned when two entries share a name or a
	// requirement.
	ErrDuplicateEntry = errors.New("dispatch: duplicate entry")

	// ErrShadowedEntry is returned when an entry can never be selected
	// because an earlier entry for the same architecture requires a subset
	// of its features.
	ErrShadowedEntry = errors.New("dispatch: entry shadowed by earlier entry")

	// ErrMultipleDefaults is returned when more than one entry carries the
	// default requirement.
	ErrMultipleDefaults = errors.New("dispatch: multiple default entry points")
)

const errZeroTable = "dispatch: table has no default entry point (zero-value Table?)"
