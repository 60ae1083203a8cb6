// Package doubles holds test doubles for the lazyseq protocol.
package doubles

import (
	"go.llib.dev/lazyseq"
)

// NewCursor wraps a cursor, and every stub delegates to it until it is replaced.
func NewCursor[T any](c lazyseq.Cursor[T]) *Cursor[T] {
	return &Cursor[T]{
		Cursor:    c,
		StubValue: c.Value,
		StubClose: c.Close,
		StubNext:  c.Next,
		StubErr:   c.Err,
	}
}

type Cursor[T any] struct {
	Cursor    lazyseq.Cursor[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error

	CloseCount int
}

// wrapper

func (m *Cursor[T]) Close() error {
	m.CloseCount++
	return m.StubClose()
}

func (m *Cursor[T]) Next() bool {
	return m.StubNext()
}

func (m *Cursor[T]) Err() error {
	return m.StubErr()
}

func (m *Cursor[T]) Value() T {
	return m.StubValue()
}

// Reseting stubs

func (m *Cursor[T]) ResetClose() {
	m.StubClose = m.Cursor.Close
}

func (m *Cursor[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

func (m *Cursor[T]) ResetErr() {
	m.StubErr = m.Cursor.Err
}

func (m *Cursor[T]) ResetValue() {
	m.StubValue = m.Cursor.Value
}

// Countable is a lazyseq.Countable that reports an arbitrary length without holding any element.
// Its Cursor is empty, and CopyTo copies nothing.
// It is meant for testing count arithmetic.
type Countable[T any] struct {
	Length int
}

func (c Countable[T]) Cursor() lazyseq.Cursor[T] { return &emptyCursor[T]{} }
func (c Countable[T]) Len() int                  { return c.Length }
func (c Countable[T]) CopyTo([]T) int            { return 0 }

type emptyCursor[T any] struct{}

func (*emptyCursor[T]) Close() error { return nil }
func (*emptyCursor[T]) Err() error   { return nil }
func (*emptyCursor[T]) Next() bool   { return false }

func (*emptyCursor[T]) Value() T {
	var zero T
	return zero
}
