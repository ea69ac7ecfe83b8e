// Package tabular: sentinel error set.
// All exported functions return ONLY these sentinels (optionally wrapped with
// fmt.Errorf("...: %w", ...) for context); tests match them via errors.Is.
// No function panics on user input.

package tabular

import "errors"

var (
	// ErrDuplicateLabel is returned by constructors when the same label
	// appears twice on one axis. Labeled axes must be unique or lookups
	// become ambiguous.
	ErrDuplicateLabel = errors.New("tabular: duplicate label")

	// ErrLengthMismatch is returned when parallel label/value slices (or
	// row/column counts vs. the backing data) disagree in length.
	ErrLengthMismatch = errors.New("tabular: label/value length mismatch")

	// ErrEmpty is returned when a Series or Table would have no entries at
	// all; downstream alignment has nothing to work with.
	ErrEmpty = errors.New("tabular: empty input")

	// ErrMissingLabel is returned by Reindex under the Drop policy when the
	// target order names a label the source does not carry.
	ErrMissingLabel = errors.New("tabular: label missing from source")

	// ErrUnknownLabel is returned by lookups (Row, Value) for a label that
	// is not present on the queried axis.
	ErrUnknownLabel = errors.New("tabular: unknown label")

	// ErrNilInput is returned when a nil *Series or *Table is passed where a
	// constructed value is required.
	ErrNilInput = errors.New("tabular: nil input")
)
