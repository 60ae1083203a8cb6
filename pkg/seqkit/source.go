package seqkit

import (
	"iter"

	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/mathkit"
)

// Slice returns an Indexed sequence backed by vs.
// The slice is not copied, it must not be modified while the sequence is in use.
func Slice[T any](vs []T) *SliceSeq[T] {
	return &SliceSeq[T]{vs: vs}
}

// Of returns an Indexed sequence of the given values.
func Of[T any](vs ...T) *SliceSeq[T] {
	return Slice(vs)
}

type SliceSeq[T any] struct {
	vs []T
}

func (s *SliceSeq[T]) Cursor() lazyseq.Cursor[T] {
	return &sliceCursor[T]{slice: s.vs}
}

func (s *SliceSeq[T]) Len() int {
	return len(s.vs)
}

func (s *SliceSeq[T]) CopyTo(dst []T) int {
	return copy(dst, s.vs)
}

func (s *SliceSeq[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(s.vs) <= index {
		var zero T
		return zero, false
	}
	return s.vs[index], true
}

type sliceCursor[T any] struct {
	slice  []T
	closed bool
	index  int
	value  T
}

func (c *sliceCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *sliceCursor[T]) Err() error {
	return nil
}

func (c *sliceCursor[T]) Next() bool {
	if c.closed {
		return false
	}
	if len(c.slice) <= c.index {
		return false
	}
	c.value = c.slice[c.index]
	c.index++
	return true
}

func (c *sliceCursor[T]) Value() T {
	return c.value
}

// Empty sequence is used to represent nil result with Null object pattern.
func Empty[T any]() lazyseq.Indexed[T] {
	return emptySeq[T]{}
}

type emptySeq[T any] struct{}

func (emptySeq[T]) Cursor() lazyseq.Cursor[T] { return &emptyCursor[T]{} }
func (emptySeq[T]) Len() int                  { return 0 }
func (emptySeq[T]) CopyTo([]T) int            { return 0 }

func (emptySeq[T]) Lookup(int) (T, bool) {
	var zero T
	return zero, false
}

type emptyCursor[T any] struct{}

func (*emptyCursor[T]) Close() error { return nil }
func (*emptyCursor[T]) Err() error   { return nil }
func (*emptyCursor[T]) Next() bool   { return false }

func (*emptyCursor[T]) Value() T {
	var zero T
	return zero
}

// Error returns a sequence whose cursors yield no values and report err.
// This can be used when a source encounters a non recoverable error before it could produce a Cursor.
func Error[T any](err error) lazyseq.Sequence[T] {
	return errorSeq[T]{err: err}
}

type errorSeq[T any] struct{ err error }

func (s errorSeq[T]) Cursor() lazyseq.Cursor[T] { return &errorCursor[T]{err: s.err} }

type errorCursor[T any] struct{ err error }

func (*errorCursor[T]) Close() error { return nil }
func (c *errorCursor[T]) Err() error { return c.err }
func (*errorCursor[T]) Next() bool   { return false }

func (*errorCursor[T]) Value() T {
	var zero T
	return zero
}

// Range returns an Indexed sequence of count consecutive integers starting with start.
// It panics with lazyseq.ErrOutOfRange when count is negative or the range doesn't fit into int.
func Range(start, count int) lazyseq.Indexed[int] {
	if count < 0 {
		panic(lazyseq.ErrOutOfRange.F("count must not be negative: %d", count))
	}
	if 0 < count {
		if _, ok := mathkit.SumInt(start, count-1); !ok {
			panic(lazyseq.ErrOutOfRange.F("range of %d from %d overflows", count, start))
		}
	}
	return rangeSeq{start: start, count: count}
}

type rangeSeq struct {
	start int
	count int
}

func (r rangeSeq) Cursor() lazyseq.Cursor[int] {
	return &rangeCursor{next: r.start, remaining: r.count}
}

func (r rangeSeq) Len() int { return r.count }

func (r rangeSeq) CopyTo(dst []int) int {
	n := min(len(dst), r.count)
	for i := 0; i < n; i++ {
		dst[i] = r.start + i
	}
	return n
}

func (r rangeSeq) Lookup(index int) (int, bool) {
	if index < 0 || r.count <= index {
		return 0, false
	}
	return r.start + index, true
}

type rangeCursor struct {
	next      int
	remaining int
	value     int
}

func (c *rangeCursor) Close() error {
	c.remaining = 0
	return nil
}

func (c *rangeCursor) Err() error { return nil }

func (c *rangeCursor) Next() bool {
	if c.remaining <= 0 {
		return false
	}
	c.value = c.next
	c.remaining--
	if 0 < c.remaining {
		c.next++
	}
	return true
}

func (c *rangeCursor) Value() int { return c.value }

// FromIter turns an iter.Seq into a sequence without any capability.
// Each Cursor pulls from a new run of the iterator.
func FromIter[T any](i iter.Seq[T]) lazyseq.Sequence[T] {
	if i == nil {
		panic(lazyseq.ErrArgumentNull.F("iter"))
	}
	return iterSeq[T]{iter: i}
}

type iterSeq[T any] struct{ iter iter.Seq[T] }

func (s iterSeq[T]) Cursor() lazyseq.Cursor[T] {
	return &pullCursor[T]{iter: s.iter}
}

type pullCursor[T any] struct {
	iter iter.Seq[T]
	next func() (T, bool)
	stop func()
	val  T
	done bool
}

func (c *pullCursor[T]) Next() bool {
	if c.done {
		return false
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.iter)
	}
	v, ok := c.next()
	if !ok {
		_ = c.Close()
		return false
	}
	c.val = v
	return true
}

func (c *pullCursor[T]) Close() error {
	if c.done {
		return nil
	}
	c.done = true
	if c.stop != nil {
		c.stop()
	}
	return nil
}

func (c *pullCursor[T]) Err() error { return nil }

func (c *pullCursor[T]) Value() T { return c.val }

// FromFunc returns a sequence that calls fn for every new Cursor.
// fn must return a fresh Cursor on each call.
func FromFunc[T any](fn func() lazyseq.Cursor[T]) lazyseq.Sequence[T] {
	if fn == nil {
		panic(lazyseq.ErrArgumentNull.F("fn"))
	}
	return funcSeq[T](fn)
}

type funcSeq[T any] func() lazyseq.Cursor[T]

func (fn funcSeq[T]) Cursor() lazyseq.Cursor[T] { return fn() }
