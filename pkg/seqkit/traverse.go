package seqkit

import (
	"iter"

	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/errorkit"
)

// All returns a range-over-func view of the sequence.
// The cursor is closed when the loop ends, including an early break or a panic in the loop body.
// An error from the sequence is yielded once, as the last pair, with a zero value.
func All[T any](seq lazyseq.Sequence[T]) iter.Seq2[T, error] {
	mustNotNil("seq", seq)
	return func(yield func(T, error) bool) {
		cursor := seq.Cursor()
		var closed bool
		defer func() {
			if !closed {
				_ = cursor.Close()
			}
		}()
		for cursor.Next() {
			if !yield(cursor.Value(), nil) {
				closed = true
				_ = cursor.Close()
				return
			}
		}
		closed = true
		if err := errorkit.Merge(cursor.Err(), cursor.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// ForEach calls fn with every element, and stops on the first error that fn returns.
func ForEach[T any](seq lazyseq.Sequence[T], fn func(T) error) (rErr error) {
	if err := checkNotNil("seq", seq); err != nil {
		return err
	}
	if fn == nil {
		return lazyseq.ErrArgumentNull.F("fn")
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	for cursor.Next() {
		if err := fn(cursor.Value()); err != nil {
			return err
		}
	}
	return cursor.Err()
}
