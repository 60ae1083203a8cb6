package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/compare"
	"go.llib.dev/lazyseq/pkg/errorkit"
)

// SequenceEqual reports whether the two sequences have equal elements in the same order.
func SequenceEqual[T comparable](a, b lazyseq.Sequence[T]) (bool, error) {
	return SequenceEqualFunc(a, b, compare.Comparable[T]())
}

// SequenceEqualFunc reports whether the two sequences have pairwise equal elements according to eq.
// When eq is nil, the elements are compared by their deep equality.
//
// Two Countable sequences of different length are not equal, and they are not enumerated.
// Two Indexed sequences are compared with random access, no Cursor is opened.
func SequenceEqualFunc[T any](a, b lazyseq.Sequence[T], eq compare.Equality[T]) (_ bool, rErr error) {
	if err := checkNotNil("first", a); err != nil {
		return false, err
	}
	if err := checkNotNil("second", b); err != nil {
		return false, err
	}
	if eq == nil {
		eq = compare.Reflect[T]()
	}
	if ac, ok := lazyseq.AsCountable(a); ok {
		if bc, ok := lazyseq.AsCountable(b); ok {
			if ac.Len() != bc.Len() {
				return false, nil
			}
			ai, aok := lazyseq.AsIndexed(a)
			bi, bok := lazyseq.AsIndexed(b)
			if aok && bok {
				return indexedEqual(ai, bi, ac.Len(), eq), nil
			}
		}
	}

	ac := a.Cursor()
	defer errorkit.Finish(&rErr, ac.Close)
	bc := b.Cursor()
	defer errorkit.Finish(&rErr, bc.Close)
	for ac.Next() {
		if !bc.Next() {
			return false, bc.Err()
		}
		if !eq.Equal(ac.Value(), bc.Value()) {
			return false, nil
		}
	}
	if err := ac.Err(); err != nil {
		return false, err
	}
	if bc.Next() {
		return false, nil
	}
	if err := bc.Err(); err != nil {
		return false, err
	}
	return true, nil
}

func indexedEqual[T any](a, b lazyseq.Indexed[T], length int, eq compare.Equality[T]) bool {
	for i := 0; i < length; i++ {
		av, aok := a.Lookup(i)
		bv, bok := b.Lookup(i)
		if aok != bok {
			return false
		}
		if !eq.Equal(av, bv) {
			return false
		}
	}
	return true
}
