package seqkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/compare"
	"go.llib.dev/lazyseq/pkg/seqkit"
	"go.llib.dev/testcase/assert"
)

func TestFirst(t *testing.T) {
	for name, seq := range map[string]lazyseq.Sequence[int]{
		"indexed": seqkit.Of(7, 8),
		"lazy":    lazyOf(7, 8),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := seqkit.First(seq)
			assert.NoError(t, err)
			assert.Equal(t, 7, v)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := seqkit.First(lazyOf[int]())
		assert.ErrorIs(t, lazyseq.ErrNoElements, err)
		_, err = seqkit.First[int](seqkit.Empty[int]())
		assert.ErrorIs(t, lazyseq.ErrNoElements, err)
	})

	t.Run("error", func(t *testing.T) {
		expErr := errors.New("boom")
		_, err := seqkit.First(seqkit.Error[int](expErr))
		assert.ErrorIs(t, expErr, err)
	})
}

func TestLast(t *testing.T) {
	for name, seq := range map[string]lazyseq.Sequence[int]{
		"indexed": seqkit.Of(7, 8, 9),
		"list":    listOf(7, 8, 9),
		"lazy":    lazyOf(7, 8, 9),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := seqkit.Last(seq)
			assert.NoError(t, err)
			assert.Equal(t, 9, v)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := seqkit.Last(lazyOf[int]())
		assert.ErrorIs(t, lazyseq.ErrNoElements, err)
		_, err = seqkit.Last[int](seqkit.Of[int]())
		assert.ErrorIs(t, lazyseq.ErrNoElements, err)
	})
}

func TestElementAt(t *testing.T) {
	for name, seq := range map[string]lazyseq.Sequence[string]{
		"indexed": seqkit.Of("a", "b", "c"),
		"lazy":    lazyOf("a", "b", "c"),
	} {
		t.Run(name, func(t *testing.T) {
			v, err := seqkit.ElementAt(seq, 1)
			assert.NoError(t, err)
			assert.Equal(t, "b", v)

			_, err = seqkit.ElementAt(seq, 3)
			assert.ErrorIs(t, lazyseq.ErrOutOfRange, err)

			_, err = seqkit.ElementAt(seq, -1)
			assert.ErrorIs(t, lazyseq.ErrOutOfRange, err)
		})
	}
}

func TestLastIndexOf(t *testing.T) {
	for name, seq := range map[string]lazyseq.Sequence[int]{
		"indexed": seqkit.Of(1, 2, 1, 3),
		"lazy":    lazyOf(1, 2, 1, 3),
	} {
		t.Run(name, func(t *testing.T) {
			i, err := seqkit.LastIndexOf(seq, 1, compare.Comparable[int]())
			assert.NoError(t, err)
			assert.Equal(t, 2, i)

			i, err = seqkit.LastIndexOf(seq, 42, nil)
			assert.NoError(t, err)
			assert.Equal(t, -1, i)
		})
	}
}
