package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/compare"
	"go.llib.dev/lazyseq/pkg/errorkit"
)

// First returns the first element of the sequence.
// lazyseq.ErrNoElements is returned for an empty sequence.
func First[T any](seq lazyseq.Sequence[T]) (_ T, rErr error) {
	var zero T
	if err := checkNotNil("seq", seq); err != nil {
		return zero, err
	}
	if i, ok := lazyseq.AsIndexed(seq); ok {
		if v, ok := i.Lookup(0); ok {
			return v, nil
		}
		return zero, lazyseq.ErrNoElements.F("first of an empty sequence")
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	if cursor.Next() {
		return cursor.Value(), nil
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return zero, lazyseq.ErrNoElements.F("first of an empty sequence")
}

// Last returns the last element of the sequence.
// lazyseq.ErrNoElements is returned for an empty sequence.
func Last[T any](seq lazyseq.Sequence[T]) (_ T, rErr error) {
	var zero T
	if err := checkNotNil("seq", seq); err != nil {
		return zero, err
	}
	if i, ok := lazyseq.AsIndexed(seq); ok {
		if v, ok := i.Lookup(i.Len() - 1); ok {
			return v, nil
		}
		return zero, lazyseq.ErrNoElements.F("last of an empty sequence")
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	var (
		last  T
		found bool
	)
	for cursor.Next() {
		last, found = cursor.Value(), true
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	if !found {
		return zero, lazyseq.ErrNoElements.F("last of an empty sequence")
	}
	return last, nil
}

// ElementAt returns the element at the given zero based index.
// lazyseq.ErrOutOfRange is returned when the index is negative or not less than the count.
func ElementAt[T any](seq lazyseq.Sequence[T], index int) (_ T, rErr error) {
	var zero T
	if err := checkNotNil("seq", seq); err != nil {
		return zero, err
	}
	if index < 0 {
		return zero, lazyseq.ErrOutOfRange.F("negative index: %d", index)
	}
	if i, ok := lazyseq.AsIndexed(seq); ok {
		if v, ok := i.Lookup(index); ok {
			return v, nil
		}
		return zero, lazyseq.ErrOutOfRange.F("index %d is beyond the sequence length %d", index, i.Len())
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	for position := 0; cursor.Next(); position++ {
		if position == index {
			return cursor.Value(), nil
		}
	}
	if err := cursor.Err(); err != nil {
		return zero, err
	}
	return zero, lazyseq.ErrOutOfRange.F("index %d is beyond the sequence length", index)
}

// LastIndexOf returns the index of the last element that is equal to value, or -1 if there is none.
// When eq is nil, the elements are compared by their deep equality.
func LastIndexOf[T any](seq lazyseq.Sequence[T], value T, eq compare.Equality[T]) (_ int, rErr error) {
	if err := checkNotNil("seq", seq); err != nil {
		return -1, err
	}
	if eq == nil {
		eq = compare.Reflect[T]()
	}
	if i, ok := lazyseq.AsIndexed(seq); ok {
		for index := i.Len() - 1; 0 <= index; index-- {
			if v, ok := i.Lookup(index); ok && eq.Equal(v, value) {
				return index, nil
			}
		}
		return -1, nil
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	var found = -1
	for position := 0; cursor.Next(); position++ {
		if eq.Equal(cursor.Value(), value) {
			found = position
		}
	}
	if err := cursor.Err(); err != nil {
		return -1, err
	}
	return found, nil
}
