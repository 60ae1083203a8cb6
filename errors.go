package lazyseq

import "go.llib.dev/lazyseq/pkg/errorkit"

const (
	// ErrArgumentNull is raised when a required argument is absent.
	// It is always raised before any enumeration begins.
	ErrArgumentNull errorkit.Error = "ErrArgumentNull"
	// ErrNoElements is returned by operations that are undefined on an empty sequence.
	ErrNoElements errorkit.Error = "ErrNoElements"
	// ErrOutOfRange is returned for invalid indices and for negative counts.
	ErrOutOfRange errorkit.Error = "ErrOutOfRange"
	// ErrOverflow is returned when a count would exceed the int range.
	ErrOverflow errorkit.Error = "ErrOverflow"
	// ErrInternal marks a broken internal invariant. It is raised as a panic.
	ErrInternal errorkit.Error = "ErrInternal"
	// ErrAlreadyConsumed is reported by a single use sequence on its second traversal.
	ErrAlreadyConsumed errorkit.Error = "ErrAlreadyConsumed"
)
