package seqkit

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/errorkit"
	"go.llib.dev/lazyseq/pkg/mathkit"
	"go.llib.dev/lazyseq/pkg/slicekit"
)

// unbounded marks a partition without an upper index bound.
const unbounded = -1

// Take returns a sequence of the first n elements.
// For n <= 0 the result is empty.
// Repeated Take and Skip calls are merged into a single partition over the original source.
func Take[T any](seq lazyseq.Sequence[T], n int) lazyseq.Sequence[T] {
	mustNotNil("seq", seq)
	if n <= 0 {
		return Empty[T]()
	}
	if p, ok := seq.(partition[T]); ok {
		return p.take(n)
	}
	return newPartition(seq, 0, n-1)
}

// Skip returns a sequence without its first n elements.
// For n <= 0 seq is returned as it is.
func Skip[T any](seq lazyseq.Sequence[T], n int) lazyseq.Sequence[T] {
	mustNotNil("seq", seq)
	if n <= 0 {
		return seq
	}
	if p, ok := seq.(partition[T]); ok {
		return p.skip(n)
	}
	return newPartition(seq, n, unbounded)
}

type partition[T any] interface {
	lazyseq.Sequence[T]
	take(n int) lazyseq.Sequence[T]
	skip(n int) lazyseq.Sequence[T]
}

type bounds struct {
	minIndex int
	maxIndex int
}

func (b bounds) take(n int) bounds {
	maxIndex := mathkit.SaturatingSumInt(b.minIndex, n-1)
	if b.maxIndex != unbounded && b.maxIndex < maxIndex {
		maxIndex = b.maxIndex
	}
	return bounds{minIndex: b.minIndex, maxIndex: maxIndex}
}

func (b bounds) skip(n int) (bounds, bool) {
	minIndex := mathkit.SaturatingSumInt(b.minIndex, n)
	if b.maxIndex != unbounded && b.maxIndex < minIndex {
		return bounds{}, false
	}
	return bounds{minIndex: minIndex, maxIndex: b.maxIndex}, true
}

// window returns how many elements of a source with the given length fall into the bounds.
func (b bounds) window(length int) int {
	if length <= b.minIndex {
		return 0
	}
	n := length - b.minIndex
	if b.maxIndex != unbounded {
		n = min(n, b.maxIndex-b.minIndex+1)
	}
	return n
}

func (b bounds) limited() bool { return b.maxIndex != unbounded }

func newPartition[T any](src lazyseq.Sequence[T], minIndex, maxIndex int) lazyseq.Sequence[T] {
	b := bounds{minIndex: minIndex, maxIndex: maxIndex}
	if i, ok := lazyseq.AsIndexed(src); ok {
		return &indexedPartition[T]{src: i, bounds: b}
	}
	return &lazyPartition[T]{src: src, bounds: b}
}

// indexedPartition is a window over an Indexed source, it is Indexed itself.
type indexedPartition[T any] struct {
	src lazyseq.Indexed[T]
	bounds
}

func (p *indexedPartition[T]) take(n int) lazyseq.Sequence[T] {
	return &indexedPartition[T]{src: p.src, bounds: p.bounds.take(n)}
}

func (p *indexedPartition[T]) skip(n int) lazyseq.Sequence[T] {
	b, ok := p.bounds.skip(n)
	if !ok {
		return Empty[T]()
	}
	return &indexedPartition[T]{src: p.src, bounds: b}
}

func (p *indexedPartition[T]) Len() int {
	return p.window(p.src.Len())
}

func (p *indexedPartition[T]) Lookup(index int) (T, bool) {
	if index < 0 || p.Len() <= index {
		var zero T
		return zero, false
	}
	return p.src.Lookup(p.minIndex + index)
}

func (p *indexedPartition[T]) CopyTo(dst []T) int {
	n := min(len(dst), p.Len())
	for i := 0; i < n; i++ {
		v, ok := p.src.Lookup(p.minIndex + i)
		if !ok {
			return i
		}
		dst[i] = v
	}
	return n
}

func (p *indexedPartition[T]) Cursor() lazyseq.Cursor[T] {
	return &lookupCursor[T]{src: p}
}

type lookupCursor[T any] struct {
	src   lazyseq.Indexed[T]
	index int
	value T
	done  bool
}

func (c *lookupCursor[T]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.src.Lookup(c.index)
	if !ok {
		c.done = true
		return false
	}
	c.value = v
	c.index++
	return true
}

func (c *lookupCursor[T]) Value() T { return c.value }

func (c *lookupCursor[T]) Err() error { return nil }

func (c *lookupCursor[T]) Close() error {
	c.done = true
	return nil
}

// lazyPartition is a window over a source without random access.
type lazyPartition[T any] struct {
	src lazyseq.Sequence[T]
	bounds
}

func (p *lazyPartition[T]) take(n int) lazyseq.Sequence[T] {
	return &lazyPartition[T]{src: p.src, bounds: p.bounds.take(n)}
}

func (p *lazyPartition[T]) skip(n int) lazyseq.Sequence[T] {
	b, ok := p.bounds.skip(n)
	if !ok {
		return Empty[T]()
	}
	return &lazyPartition[T]{src: p.src, bounds: b}
}

func (p *lazyPartition[T]) Cursor() lazyseq.Cursor[T] {
	return &partitionCursor[T]{src: p.src, bounds: p.bounds}
}

func (p *lazyPartition[T]) count(onlyIfCheap bool) (int, error) {
	length, err := countIfCheap(p.src)
	if err != nil {
		return 0, err
	}
	if length != UnknownCount {
		return p.window(length), nil
	}
	if onlyIfCheap {
		return UnknownCount, nil
	}
	return count[T](p.enumerated())
}

func (p *lazyPartition[T]) toSlice() ([]T, error) {
	var b slicekit.Builder[T]
	if err := b.AddRange(p.enumerated()); err != nil {
		return nil, err
	}
	return b.ToSlice(), nil
}

func (p *lazyPartition[T]) appendTo(dst []T) ([]T, error) {
	return appendSeq[T](dst, p.enumerated())
}

// enumerated hides the listProvider methods, so the callers fall back to the Cursor.
func (p *lazyPartition[T]) enumerated() lazyseq.Sequence[T] {
	return funcSeq[T](p.Cursor)
}

type partitionCursor[T any] struct {
	src     lazyseq.Sequence[T]
	bounds  bounds
	cursor  lazyseq.Cursor[T]
	yielded int
	value   T
	err     error
	done    bool
}

func (c *partitionCursor[T]) Next() bool {
	if c.done {
		return false
	}
	if c.cursor == nil {
		c.cursor = c.src.Cursor()
		for skipped := 0; skipped < c.bounds.minIndex; skipped++ {
			if !c.cursor.Next() {
				c.finish()
				return false
			}
		}
	}
	if c.bounds.limited() && c.bounds.maxIndex-c.bounds.minIndex < c.yielded {
		c.finish()
		return false
	}
	if !c.cursor.Next() {
		c.finish()
		return false
	}
	c.value = c.cursor.Value()
	c.yielded++
	return true
}

func (c *partitionCursor[T]) finish() {
	c.err = errorkit.Merge(c.err, c.cursor.Err(), c.Close())
}

func (c *partitionCursor[T]) Value() T { return c.value }

func (c *partitionCursor[T]) Err() error { return c.err }

func (c *partitionCursor[T]) Close() error {
	c.done = true
	if c.cursor == nil {
		return nil
	}
	cursor := c.cursor
	c.cursor = nil
	return cursor.Close()
}
