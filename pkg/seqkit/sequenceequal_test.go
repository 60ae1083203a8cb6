package seqkit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/compare"
	"go.llib.dev/lazyseq/pkg/seqkit"
	"go.llib.dev/testcase/assert"
)

func TestSequenceEqual(t *testing.T) {
	t.Run("equal indexed sequences", func(t *testing.T) {
		ok, err := seqkit.SequenceEqual[int](seqkit.Of(1, 2, 3), seqkit.Of(1, 2, 3))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("different element", func(t *testing.T) {
		ok, err := seqkit.SequenceEqual[int](seqkit.Of(1, 2, 3), lazyOf(1, 2, 4))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("prefix is not equal", func(t *testing.T) {
		ok, err := seqkit.SequenceEqual[int](lazyOf(1, 2), lazyOf(1, 2, 3))
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = seqkit.SequenceEqual[int](lazyOf(1, 2, 3), lazyOf(1, 2))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("both empty", func(t *testing.T) {
		ok, err := seqkit.SequenceEqual[int](seqkit.Empty[int](), lazyOf[int]())
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("countable sequences with different length are not enumerated", func(t *testing.T) {
		a := &countingSeqCountable{LinkedList: listOf(1, 2)}
		b := &countingSeqCountable{LinkedList: listOf(1, 2, 3)}
		ok, err := seqkit.SequenceEqual[int](a, b)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0, a.Cursors)
		assert.Equal(t, 0, b.Cursors)
	})

	t.Run("countable sequences with the same length are enumerated", func(t *testing.T) {
		ok, err := seqkit.SequenceEqual[int](listOf(1, 2), seqkit.Of(1, 2))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("indexed sequences are compared without cursors", func(t *testing.T) {
		a := seqkit.Take[int](seqkit.Range(0, 10), 3)
		ok, err := seqkit.SequenceEqual[int](a, seqkit.Of(0, 1, 2))
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("traversal error is returned", func(t *testing.T) {
		expErr := errors.New("boom")
		_, err := seqkit.SequenceEqual[int](seqkit.Of(1), seqkit.Concat[int](seqkit.Of(1), seqkit.Error[int](expErr)))
		assert.ErrorIs(t, expErr, err)
	})

	t.Run("nil arguments", func(t *testing.T) {
		_, err := seqkit.SequenceEqual[int](nil, seqkit.Of(1))
		assert.ErrorIs(t, lazyseq.ErrArgumentNull, err)
		_, err = seqkit.SequenceEqual[int](seqkit.Of(1), nil)
		assert.ErrorIs(t, lazyseq.ErrArgumentNull, err)
	})
}

func TestSequenceEqualFunc(t *testing.T) {
	t.Run("custom equality", func(t *testing.T) {
		name := randomdata.SillyName()
		ok, err := seqkit.SequenceEqualFunc[string](
			seqkit.Of(name, "b"),
			lazyOf(strings.ToUpper(name), "B"),
			compare.FoldStrings[string](),
		)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("nil equality falls back to deep equality", func(t *testing.T) {
		ok, err := seqkit.SequenceEqualFunc[[]int](
			seqkit.Of([]int{1}, []int{2, 3}),
			lazyOf([]int{1}, []int{2, 3}),
			nil,
		)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}

type countingSeqCountable struct {
	*seqkit.LinkedList[int]
	Cursors int
}

func (s *countingSeqCountable) Cursor() lazyseq.Cursor[int] {
	s.Cursors++
	return s.LinkedList.Cursor()
}
