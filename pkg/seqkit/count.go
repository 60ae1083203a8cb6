package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/errorkit"
	"go.llib.dev/lazyseq/pkg/mathkit"
)

// Count returns the number of elements in the sequence.
// The lazyseq.Countable capability is used when it's available,
// otherwise the sequence is enumerated.
// lazyseq.ErrOverflow is returned when the count doesn't fit into int.
func Count[T any](seq lazyseq.Sequence[T]) (int, error) {
	if err := checkNotNil("seq", seq); err != nil {
		return 0, err
	}
	return count(seq)
}

// CountIfCheap returns the number of elements when it can be known without enumeration,
// otherwise it returns UnknownCount.
func CountIfCheap[T any](seq lazyseq.Sequence[T]) (int, error) {
	if err := checkNotNil("seq", seq); err != nil {
		return UnknownCount, err
	}
	return countIfCheap(seq)
}

func count[T any](seq lazyseq.Sequence[T]) (_ int, rErr error) {
	switch seq := seq.(type) {
	case lazyseq.Countable[T]:
		return seq.Len(), nil
	case listProvider[T]:
		return seq.count(false)
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	var total int
	for cursor.Next() {
		var ok bool
		total, ok = mathkit.SumInt(total, 1)
		if !ok {
			return 0, lazyseq.ErrOverflow.F("sequence has more elements than the int range")
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

func countIfCheap[T any](seq lazyseq.Sequence[T]) (int, error) {
	switch seq := seq.(type) {
	case lazyseq.Countable[T]:
		return seq.Len(), nil
	case listProvider[T]:
		return seq.count(true)
	default:
		return UnknownCount, nil
	}
}

func sumCount(a, b int) (int, error) {
	sum, ok := mathkit.SumInt(a, b)
	if !ok {
		return 0, lazyseq.ErrOverflow.F("count of %d and %d exceeds the int range", a, b)
	}
	return sum, nil
}
