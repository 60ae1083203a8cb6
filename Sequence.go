package lazyseq

import (
	"io"
)

// Sequence is a stateless description of how to produce a Cursor.
// Calling Cursor twice yields two independent traversals,
// unless the Sequence is explicitly single use.
// A Sequence can be shared freely between goroutines.
type Sequence[T any] interface {
	// Cursor returns a fresh Cursor bound to a single traversal of the Sequence.
	// No work should happen before the first Next call on the returned Cursor.
	Cursor() Cursor[T]
}

// Cursor define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a cursor to access and traverse an aggregate without knowing its representation (data structures).
// A Cursor is owned by the loop that drives it, and it is not safe for concurrent use.
// https://en.wikipedia.org/wiki/Iterator_pattern
type Cursor[V any] interface {
	// Closer is required to make it able to release the resources that are being used behind the scene.
	// Close must be idempotent and must cascade to every nested Cursor.
	// After Close, Next must report false.
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the cursor.
	// It is only defined after Next returned true, and before the following Next or Close call.
	Value() V
}

// Countable is an optional capability of a Sequence.
// It reports its length in O(1) and can copy all of its elements in bulk.
type Countable[T any] interface {
	Sequence[T]
	// Len returns the number of elements.
	Len() int
	// CopyTo copies the elements into dst in order, and returns the number of copied elements.
	// dst is expected to have at least Len() length.
	CopyTo(dst []T) int
}

// Indexed is an optional capability of a Countable Sequence to access an element by its index in O(1).
type Indexed[T any] interface {
	Countable[T]
	Lookup(index int) (T, bool)
}

// AsCountable reports whether the Sequence has the Countable capability.
func AsCountable[T any](seq Sequence[T]) (Countable[T], bool) {
	c, ok := seq.(Countable[T])
	return c, ok
}

// AsIndexed reports whether the Sequence has the Indexed capability.
func AsIndexed[T any](seq Sequence[T]) (Indexed[T], bool) {
	i, ok := seq.(Indexed[T])
	return i, ok
}

// IsCountable reports whether the Sequence can report its length without enumeration.
func IsCountable[T any](seq Sequence[T]) bool {
	_, ok := AsCountable(seq)
	return ok
}

// IsIndexed reports whether the Sequence has O(1) access to its elements by index.
func IsIndexed[T any](seq Sequence[T]) bool {
	_, ok := AsIndexed(seq)
	return ok
}
