package mathkit

import (
	"unsafe"

	"go.llib.dev/lazyseq/internal/constraints"
)

type (
	Int    constraints.Int
	Number constraints.Number
)

func MaxInt[T Int]() T {
	var zero T
	// Get the size in bits by multiplying byte size by 8
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	// Maximum value is 2^(n-1) - 1 where n is the number of bits
	return T((1 << (typeSizeInBits - 1)) - 1)
}

func MinInt[T Int]() T {
	var zero T
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	// Minimum value is -2^(n-1) for signed integers
	return T(-1 << (typeSizeInBits - 1))
}

// SumInt adds a and b together.
// The boolean result reports false when the sum would not fit into INT.
func SumInt[INT Int](a, b INT) (INT, bool) {
	if CanIntSumOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a + b, true
}

// SubInt subtracts b from a.
// The boolean result reports false when the difference would not fit into INT.
func SubInt[INT Int](a, b INT) (INT, bool) {
	if b == MinInt[INT]() {
		if 0 <= a {
			var zero INT
			return zero, false
		}
		return a - b, true
	}
	return SumInt(a, -b)
}

func CanIntSumOverflow[INT Int](a, b INT) bool {
	less, more := a, b
	if more < less {
		less, more = more, less
	}
	switch {
	case 0 < less && 0 < more:
		var max = MaxInt[INT]()
		maxLess := max - more
		return maxLess < less // positive overflow
	case less < 0 && more < 0:
		var min = MinInt[INT]()
		minMore := min - less // min - -less -> min + abs(less)
		return more < minMore // negative overflow
	}
	// a negative and a positive value can't overflow,
	// even MinInt plus MaxInt would only end up in -1.
	return false
}

// SaturatingSumInt adds a and b together, and clamps the result to the INT boundaries instead of overflowing.
func SaturatingSumInt[INT Int](a, b INT) INT {
	if sum, ok := SumInt(a, b); ok {
		return sum
	}
	if 0 < a {
		return MaxInt[INT]()
	}
	return MinInt[INT]()
}
