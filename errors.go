package listcrdt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds (spec §7). Callers should use errors.Is against
// these; the concrete error returned from a failing call always wraps one
// of them with context via github.com/pkg/errors, the way
// Hawthorne001-aistore wraps lower-level failures before they surface.
var (
	// ErrOutOfOrder: integrate received an operation whose seq is not
	// last+1 for its agent. Fatal to the caller; the document is left
	// unmodified.
	ErrOutOfOrder = errors.New("listcrdt: operation out of order")

	// ErrNotFound: findById could not locate a referenced origin.
	// Signals a corrupt input or a missing causal dependency.
	ErrNotFound = errors.New("listcrdt: id not found")

	// ErrOutOfRange: findByVisibleIndex was passed a pos beyond the
	// document's visible length.
	ErrOutOfRange = errors.New("listcrdt: position out of range")

	// ErrStuck: mergeInto completed a pass without progress; indicates
	// the source's operations reference dependencies absent from the
	// source itself.
	ErrStuck = errors.New("listcrdt: merge made no progress")

	// ErrAlgorithmMismatch: BoundDocument.Merge was called with a peer
	// governed by a different Algorithm. Not part of spec §7's core error
	// kinds, but the same wrap-with-context idiom applies.
	ErrAlgorithmMismatch = errors.New("listcrdt: documents use different algorithms")
)

func errOutOfOrder(id Id, expected int) error {
	return errors.Wrapf(ErrOutOfOrder, "agent %q: got seq %d, expected %d", id.Agent, id.Seq, expected)
}

func errNotFound(id Id) error {
	return errors.Wrapf(ErrNotFound, "id %s", fmt.Sprintf("(%s,%d)", id.Agent, id.Seq))
}

func errOutOfRange(pos, length int) error {
	return errors.Wrapf(ErrOutOfRange, "pos %d exceeds visible length %d", pos, length)
}

func errStuck(remaining int) error {
	return errors.Wrapf(ErrStuck, "%d operation(s) left with unmet dependencies", remaining)
}

func errAlgorithmMismatch(have, want string) error {
	return errors.Wrapf(ErrAlgorithmMismatch, "got %q, want %q", have, want)
}
