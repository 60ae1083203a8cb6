package seqkit_test

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/seqkit"
)

// lazyOf returns a sequence without any capability.
func lazyOf[T any](vs ...T) lazyseq.Sequence[T] {
	return seqkit.FromIter(func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	})
}

// listOf returns a Countable sequence that is not Indexed.
func listOf[T any](vs ...T) *seqkit.LinkedList[T] {
	ll := &seqkit.LinkedList[T]{}
	ll.Append(vs...)
	return ll
}

// countingSeq counts how many cursors were requested from seq.
type countingSeq[T any] struct {
	seq     lazyseq.Sequence[T]
	Cursors int
}

func (s *countingSeq[T]) Cursor() lazyseq.Cursor[T] {
	s.Cursors++
	return s.seq.Cursor()
}

func collect[T any](c lazyseq.Cursor[T]) ([]T, error) {
	var out []T
	for c.Next() {
		out = append(out, c.Value())
	}
	return out, c.Err()
}
