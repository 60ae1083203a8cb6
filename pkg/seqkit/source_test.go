package seqkit_test

import (
	"errors"
	"math"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/seqkit"
	"go.llib.dev/testcase/assert"
)

func TestSlice(t *testing.T) {
	vs := []string{randomdata.SillyName(), randomdata.SillyName(), randomdata.SillyName()}
	seq := seqkit.Slice(vs)

	got, err := collect(seq.Cursor())
	assert.NoError(t, err)
	assert.Equal(t, vs, got)
	assert.Equal(t, 3, seq.Len())

	v, ok := seq.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, vs[2], v)
	_, ok = seq.Lookup(3)
	assert.False(t, ok)
	_, ok = seq.Lookup(-1)
	assert.False(t, ok)

	c := seq.Cursor()
	assert.NoError(t, c.Close())
	assert.False(t, c.Next(), "closed cursor yields nothing")
}

func TestEmpty(t *testing.T) {
	seq := seqkit.Empty[int]()
	assert.Equal(t, 0, seq.Len())
	c := seq.Cursor()
	assert.False(t, c.Next())
	assert.NoError(t, c.Err())
	assert.NoError(t, c.Close())
}

func TestError(t *testing.T) {
	expErr := errors.New("boom")
	c := seqkit.Error[int](expErr).Cursor()
	assert.False(t, c.Next())
	assert.ErrorIs(t, expErr, c.Err())
	assert.NoError(t, c.Close())
}

func TestRange(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		got, err := seqkit.ToSlice[int](seqkit.Range(-2, 4))
		assert.NoError(t, err)
		assert.Equal(t, []int{-2, -1, 0, 1}, got)
	})

	t.Run("range that ends at the max int", func(t *testing.T) {
		got, err := seqkit.ToSlice[int](seqkit.Range(math.MaxInt-1, 2))
		assert.NoError(t, err)
		assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, got)

		got, err = collect(seqkit.Range(math.MaxInt-1, 2).Cursor())
		assert.NoError(t, err)
		assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, got)
	})

	t.Run("invalid ranges", func(t *testing.T) {
		assert.Panic(t, func() { seqkit.Range(0, -1) })
		assert.Panic(t, func() { seqkit.Range(math.MaxInt, 2) })
	})
}

func TestFromIter(t *testing.T) {
	t.Run("every cursor starts a new run", func(t *testing.T) {
		var runs int
		seq := seqkit.FromIter(func(yield func(int) bool) {
			runs++
			_ = yield(1) && yield(2)
		})
		for i := 0; i < 2; i++ {
			got, err := seqkit.ToSlice(seq)
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 2}, got)
		}
		assert.Equal(t, 2, runs)
	})

	t.Run("close stops the iterator", func(t *testing.T) {
		var stopped bool
		seq := seqkit.FromIter(func(yield func(int) bool) {
			defer func() { stopped = true }()
			for i := 0; yield(i); i++ {
			}
		})
		c := seq.Cursor()
		assert.True(t, c.Next())
		assert.NoError(t, c.Close())
		assert.True(t, stopped)
		assert.NoError(t, c.Close())
		assert.False(t, c.Next())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Panic(t, func() { seqkit.FromIter[int](nil) })
		assert.Panic(t, func() { seqkit.FromFunc[int](nil) })
	})
}

func TestCount(t *testing.T) {
	t.Run("countable", func(t *testing.T) {
		n, err := seqkit.Count[int](listOf(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("enumerated", func(t *testing.T) {
		n, err := seqkit.Count(lazyOf(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = seqkit.CountIfCheap(lazyOf(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, seqkit.UnknownCount, n)
	})

	t.Run("error", func(t *testing.T) {
		expErr := errors.New("boom")
		_, err := seqkit.Count(seqkit.Error[int](expErr))
		assert.ErrorIs(t, expErr, err)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := seqkit.Count[int](nil)
		assert.ErrorIs(t, lazyseq.ErrArgumentNull, err)
		_, err = seqkit.CountIfCheap[int](nil)
		assert.ErrorIs(t, lazyseq.ErrArgumentNull, err)
	})
}

func TestToSlice(t *testing.T) {
	t.Run("the result has the exact length", func(t *testing.T) {
		got, err := seqkit.ToSlice(lazyOf(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, 3, len(got))
		assert.Equal(t, 3, cap(got))
	})

	t.Run("the result is a copy of an indexed source", func(t *testing.T) {
		vs := []int{1, 2}
		got, err := seqkit.ToSlice[int](seqkit.Slice(vs))
		assert.NoError(t, err)
		got[0] = 42
		assert.Equal(t, 1, vs[0])
	})

	t.Run("nil", func(t *testing.T) {
		_, err := seqkit.ToSlice[int](nil)
		assert.ErrorIs(t, lazyseq.ErrArgumentNull, err)
	})

	t.Run("append keeps dst on error", func(t *testing.T) {
		expErr := errors.New("boom")
		dst := []int{1}
		got, err := seqkit.AppendSlice(dst, seqkit.Concat[int](lazyOf(2), seqkit.Error[int](expErr)))
		assert.ErrorIs(t, expErr, err)
		assert.Equal(t, []int{1}, got)
	})
}
