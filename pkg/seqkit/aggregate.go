package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/errorkit"
)

// Aggregate folds the sequence with fn, using the first element as the initial accumulator.
// lazyseq.ErrNoElements is returned for an empty sequence.
func Aggregate[T any](seq lazyseq.Sequence[T], fn func(acc T, v T) T) (_ T, rErr error) {
	var zero T
	if err := checkNotNil("seq", seq); err != nil {
		return zero, err
	}
	if fn == nil {
		return zero, lazyseq.ErrArgumentNull.F("fn")
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	if !cursor.Next() {
		if err := cursor.Err(); err != nil {
			return zero, err
		}
		return zero, lazyseq.ErrNoElements.F("aggregate requires at least one element")
	}
	acc := cursor.Value()
	for cursor.Next() {
		acc = fn(acc, cursor.Value())
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return acc, nil
}

// AggregateSeed folds the sequence with fn, starting from seed.
// For an empty sequence, seed is returned.
func AggregateSeed[T, A any](seq lazyseq.Sequence[T], seed A, fn func(acc A, v T) A) (_ A, rErr error) {
	var zero A
	if err := checkNotNil("seq", seq); err != nil {
		return zero, err
	}
	if fn == nil {
		return zero, lazyseq.ErrArgumentNull.F("fn")
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	acc := seed
	for cursor.Next() {
		acc = fn(acc, cursor.Value())
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return acc, nil
}

// AggregateSelect is AggregateSeed, and the final accumulator is mapped by selector.
// selector is called exactly once when the fold succeeds.
func AggregateSelect[T, A, R any](seq lazyseq.Sequence[T], seed A, fn func(acc A, v T) A, selector func(A) R) (R, error) {
	var zero R
	if selector == nil {
		return zero, lazyseq.ErrArgumentNull.F("selector")
	}
	acc, err := AggregateSeed(seq, seed, fn)
	if err != nil {
		return zero, err
	}
	return selector(acc), nil
}
