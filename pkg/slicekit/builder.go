// Package slicekit holds the buffers used to materialise a sequence into a slice.
package slicekit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/internal/interr"
	"go.llib.dev/lazyseq/pkg/errorkit"
)

// Builder is a growth buffer that eagerly copies the elements it receives.
// The zero value is ready to use.
type Builder[T any] struct {
	buffer []T
}

// Len returns the number of added elements.
func (b *Builder[T]) Len() int {
	return len(b.buffer)
}

func (b *Builder[T]) Add(v T) {
	b.buffer = append(b.buffer, v)
}

// AddRange enumerates the whole sequence and appends every element to the buffer.
// A Countable sequence is copied in bulk.
func (b *Builder[T]) AddRange(seq lazyseq.Sequence[T]) (rErr error) {
	if seq == nil {
		return lazyseq.ErrArgumentNull.F("seq")
	}
	if c, ok := lazyseq.AsCountable(seq); ok {
		length := len(b.buffer)
		b.buffer = Grow(b.buffer, c.Len())
		Copy(b.buffer[length:], c)
		return nil
	}
	cursor := seq.Cursor()
	defer errorkit.Finish(&rErr, cursor.Close)
	for cursor.Next() {
		b.buffer = append(b.buffer, cursor.Value())
	}
	return cursor.Err()
}

// CopyTo copies the buffered elements starting from position into dst, and returns the number of copied elements.
func (b *Builder[T]) CopyTo(position int, dst []T) int {
	if position < 0 || len(b.buffer) < position {
		interr.Violation("copy position %d is outside of the builder length %d", position, len(b.buffer))
	}
	return copy(dst, b.buffer[position:])
}

// ToSlice returns the buffered elements in a slice that has exactly Len length.
func (b *Builder[T]) ToSlice() []T {
	out := make([]T, len(b.buffer))
	copy(out, b.buffer)
	return out
}

// Grow extends the length of vs with n zero values, and allocates at most once.
func Grow[T any](vs []T, n int) []T {
	if n < 0 {
		interr.Violation("negative grow size: %d", n)
	}
	length := len(vs)
	if n <= cap(vs)-length {
		return vs[:length+n]
	}
	out := make([]T, length+n)
	copy(out, vs)
	return out
}

// Copy bulk copies a Countable sequence into dst.
// dst must have exactly the length of the sequence,
// and any difference is treated as a broken invariant.
func Copy[T any](dst []T, src lazyseq.Countable[T]) {
	if n := src.CopyTo(dst); n != len(dst) {
		interr.Violation("expected to copy %d elements, but %d were copied", len(dst), n)
	}
}
