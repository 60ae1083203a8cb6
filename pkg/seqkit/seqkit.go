// Package seqkit provides deferred enumeration over lazyseq.Sequence values,
// and the operators that compose and materialise them.
//
// # Summary
//
// Operators never start work until a Cursor is requested or a materialisation call is made.
// Each such call re-evaluates the whole pipeline.
// When a participating Sequence has the lazyseq.Countable or lazyseq.Indexed capability,
// the operators use it to count, copy or compare without enumeration.
//
// Every Cursor that an operator opens is closed on every exit path,
// and the errors from Err and Close are returned to the caller.
package seqkit

import (
	"go.llib.dev/lazyseq"
)

// UnknownCount is reported by CountIfCheap when the count can't be known without enumeration.
const UnknownCount = -1

// listProvider is implemented by operator sequences that know a cheaper way
// to count or materialise themselves than a plain enumeration.
type listProvider[T any] interface {
	lazyseq.Sequence[T]
	count(onlyIfCheap bool) (int, error)
	toSlice() ([]T, error)
	appendTo(dst []T) ([]T, error)
}

func mustNotNil[T any](name string, seq lazyseq.Sequence[T]) {
	if seq == nil {
		panic(lazyseq.ErrArgumentNull.F("%s", name))
	}
}

func checkNotNil[T any](name string, seq lazyseq.Sequence[T]) error {
	if seq == nil {
		return lazyseq.ErrArgumentNull.F("%s", name)
	}
	return nil
}
