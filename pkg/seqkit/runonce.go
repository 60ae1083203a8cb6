package seqkit

import (
	"sync/atomic"

	"go.llib.dev/lazyseq"
)

// RunOnce wraps seq into a sequence that can be traversed only once.
// Every Cursor after the first one reports lazyseq.ErrAlreadyConsumed from its Err method.
// The wrapper hides the capabilities of seq, so every operator has to go through its Cursor.
func RunOnce[T any](seq lazyseq.Sequence[T]) lazyseq.Sequence[T] {
	mustNotNil("seq", seq)
	return &runOnce[T]{seq: seq}
}

type runOnce[T any] struct {
	seq  lazyseq.Sequence[T]
	used atomic.Bool
}

func (r *runOnce[T]) Cursor() lazyseq.Cursor[T] {
	if !r.used.CompareAndSwap(false, true) {
		return &errorCursor[T]{err: lazyseq.ErrAlreadyConsumed.F("run once sequence was already traversed")}
	}
	return r.seq.Cursor()
}
