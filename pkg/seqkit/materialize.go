package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/errorkit"
	"go.llib.dev/lazyseq/pkg/slicekit"
)

// ToSlice materialises the sequence into a slice that has exactly the length of the sequence.
// On error, no partial result is returned.
func ToSlice[T any](seq lazyseq.Sequence[T]) ([]T, error) {
	if err := checkNotNil("seq", seq); err != nil {
		return nil, err
	}
	out, err := toSlice(seq)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendSlice enumerates the sequence and appends its elements to dst.
// When the count of the sequence is cheap to know, dst is grown only once.
// On error, dst is returned unchanged.
func AppendSlice[T any](dst []T, seq lazyseq.Sequence[T]) ([]T, error) {
	if err := checkNotNil("seq", seq); err != nil {
		return dst, err
	}
	out, err := appendSeq(dst, seq)
	if err != nil {
		return dst, err
	}
	return out, nil
}

func toSlice[T any](seq lazyseq.Sequence[T]) ([]T, error) {
	switch seq := seq.(type) {
	case lazyseq.Countable[T]:
		out := make([]T, seq.Len())
		slicekit.Copy(out, seq)
		return out, nil
	case listProvider[T]:
		return seq.toSlice()
	}
	var b slicekit.Builder[T]
	if err := b.AddRange(seq); err != nil {
		return nil, err
	}
	return b.ToSlice(), nil
}

func appendSeq[T any](dst []T, seq lazyseq.Sequence[T]) (_ []T, rErr error) {
	switch seq := seq.(type) {
	case lazyseq.Countable[T]:
		length := len(dst)
		dst = slicekit.Grow(dst, seq.Len())
		slicekit.Copy(dst[length:], seq)
		return dst, nil
	case listProvider[T]:
		return seq.appendTo(dst)
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	for cursor.Next() {
		dst = append(dst, cursor.Value())
	}
	return dst, cursor.Err()
}
