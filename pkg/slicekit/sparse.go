package slicekit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/internal/interr"
	"go.llib.dev/lazyseq/pkg/mathkit"
)

// Marker is a reserved window in the buffer of a SparseBuilder.
// The caller back-fills it after SparseBuilder.ToSlice.
type Marker struct {
	Index int
	Count int
}

// SparseBuilder is a Builder that can reserve room for Countable sequences,
// and defers their copying until the final slice is allocated.
type SparseBuilder[T any] struct {
	builder  Builder[T]
	markers  []Marker
	reserved int
}

// Len returns the total number of elements, reserved ones included.
func (b *SparseBuilder[T]) Len() int {
	return b.builder.Len() + b.reserved
}

// Markers returns the reservations in the order they were made.
func (b *SparseBuilder[T]) Markers() []Marker {
	return b.markers
}

func (b *SparseBuilder[T]) Add(v T) {
	b.builder.Add(v)
}

// AddRange eagerly enumerates seq into the buffer.
func (b *SparseBuilder[T]) AddRange(seq lazyseq.Sequence[T]) error {
	if seq == nil {
		return lazyseq.ErrArgumentNull.F("seq")
	}
	if _, err := b.checkedLen(0); err != nil {
		return err
	}
	return b.builder.AddRange(seq)
}

// Reserve makes room for count elements at the current position.
func (b *SparseBuilder[T]) Reserve(count int) error {
	if count < 0 {
		return lazyseq.ErrOutOfRange.F("reserve count must not be negative: %d", count)
	}
	total, err := b.checkedLen(count)
	if err != nil {
		return err
	}
	b.markers = append(b.markers, Marker{Index: total - count, Count: count})
	b.reserved += count
	return nil
}

// ReserveOrAdd reserves room for a Countable sequence and reports true,
// in which case the caller is responsible to copy the sequence into the window of the matching Marker.
// Any other sequence is enumerated into the buffer right away.
// An empty Countable sequence needs no copy, thus it is neither reserved nor added.
func (b *SparseBuilder[T]) ReserveOrAdd(seq lazyseq.Sequence[T]) (bool, error) {
	if seq == nil {
		return false, lazyseq.ErrArgumentNull.F("seq")
	}
	if c, ok := lazyseq.AsCountable(seq); ok {
		count := c.Len()
		if count == 0 {
			return false, nil
		}
		if err := b.Reserve(count); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, b.AddRange(seq)
}

// ToSlice allocates the final slice once.
// The eagerly added elements are placed around the reserved windows in their original order,
// while the reserved windows are left with zero values.
func (b *SparseBuilder[T]) ToSlice() []T {
	if len(b.markers) == 0 {
		return b.builder.ToSlice()
	}
	var (
		out      = make([]T, b.Len())
		index    int
		position int
	)
	for _, marker := range b.markers {
		toCopy := marker.Index - index
		if toCopy < 0 || len(out) < marker.Index+marker.Count {
			interr.Violation("marker %#v doesn't fit after index %d in a slice with %d length", marker, index, len(out))
		}
		if n := b.builder.CopyTo(position, out[index:marker.Index]); n != toCopy {
			interr.Violation("expected %d eagerly added elements before marker %#v, but got %d", toCopy, marker, n)
		}
		position += toCopy
		index = marker.Index + marker.Count
	}
	if n := b.builder.CopyTo(position, out[index:]); n != len(out)-index || position+n != b.builder.Len() {
		interr.Violation("%d eagerly added elements were placed, but %d were added", position+n, b.builder.Len())
	}
	return out
}

func (b *SparseBuilder[T]) checkedLen(extra int) (int, error) {
	total, ok := mathkit.SumInt(b.builder.Len(), b.reserved)
	if ok {
		total, ok = mathkit.SumInt(total, extra)
	}
	if !ok {
		return 0, lazyseq.ErrOverflow.F("sparse builder length exceeds the int range")
	}
	return total, nil
}
