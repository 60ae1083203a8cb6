package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/lazyseq/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

type closer struct {
	Err    error
	Closed int
}

func (c *closer) Close() error {
	c.Closed++
	return c.Err
}

func ExampleFinish() {
	c := &closer{}

	fn := func() (rErr error) {
		defer errorkit.Finish(&rErr, c.Close)
		return nil
	}

	if err := fn(); err != nil {
		panic(err.Error())
	}
}

func TestFinish(t *testing.T) {
	t.Run("errors are merged from all source", func(t *testing.T) {
		err1 := rnd.Error()
		err2 := rnd.Error()

		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return err1
			})

			return err2
		}()

		assert.ErrorIs(t, err1, got)
		assert.ErrorIs(t, err2, got)
	})

	t.Run("Finish error is returned", func(t *testing.T) {
		exp := rnd.Error()
		c := &closer{Err: exp}
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, c.Close)
			return nil
		}()

		assert.ErrorIs(t, exp, got)
		assert.Equal(t, 1, c.Closed)
	})

	t.Run("func return value returned", func(t *testing.T) {
		exp := rnd.Error()
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return nil
			})

			return exp
		}()

		assert.Equal(t, exp, got)
	})
}

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("nil when nothing is given", func(t *testcase.T) {
		assert.NoError(t, errorkit.Merge())
		assert.NoError(t, errorkit.Merge(nil, nil))
	})

	s.Test("single error is returned as is", func(t *testcase.T) {
		exp := t.Random.Error()
		assert.Equal(t, exp, errorkit.Merge(nil, exp, nil))
	})

	s.Test("multiple errors are all reachable", func(t *testcase.T) {
		var (
			err1 = t.Random.Error()
			err2 = t.Random.Error()
		)
		got := errorkit.Merge(err1, err2)
		assert.ErrorIs(t, err1, got)
		assert.ErrorIs(t, err2, got)
		assert.Contains(t, got.Error(), err1.Error())
		assert.Contains(t, got.Error(), err2.Error())
	})

	s.Test("merged errors are flattened", func(t *testcase.T) {
		var (
			err1 = t.Random.Error()
			err2 = t.Random.Error()
			err3 = t.Random.Error()
		)
		got := errorkit.Merge(errorkit.Merge(err1, err2), nil, err3)
		u, ok := got.(interface{ Unwrap() []error })
		assert.True(t, ok)
		assert.Equal(t, []error{err1, err2, err3}, u.Unwrap())
	})

	s.Test("As finds the typed error", func(t *testcase.T) {
		const expected errorkit.Error = "typed"
		got := errorkit.Merge(t.Random.Error(), expected)
		var out errorkit.Error
		assert.True(t, errors.As(got, &out))
		assert.Equal(t, expected, out)
	})
}

func TestError(t *testing.T) {
	const ErrBoom errorkit.Error = "boom"

	t.Run("Error", func(t *testing.T) {
		assert.Equal(t, "boom", ErrBoom.Error())
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := rnd.Error()
		got := ErrBoom.Wrap(cause)
		assert.ErrorIs(t, ErrBoom, got)
		assert.ErrorIs(t, cause, got)
		assert.Equal(t, fmt.Sprintf("[boom] %s", cause.Error()), got.Error())
		assert.Equal(t, error(ErrBoom), ErrBoom.Wrap(nil))
	})

	t.Run("F", func(t *testing.T) {
		got := ErrBoom.F("the %s is %d", "answer", 42)
		assert.ErrorIs(t, ErrBoom, got)
		assert.Equal(t, "[boom] the answer is 42", got.Error())
	})
}
