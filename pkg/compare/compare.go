// Package compare holds the comparison strategies that are passed explicitly to operators.
// There are no package level default singletons,
// a default strategy is constructed by the caller where it is needed.
package compare

import (
	"reflect"
	"strings"
)

// Equality defines how two values of the same type are considered equal.
// Implementations must be reflexive, symmetric and transitive.
type Equality[T any] interface {
	Equal(a, b T) bool
}

// EqualityFunc turns a function into an Equality strategy.
type EqualityFunc[T any] func(a, b T) bool

func (fn EqualityFunc[T]) Equal(a, b T) bool { return fn(a, b) }

// Comparable returns an Equality that uses the == operator.
func Comparable[T comparable]() Equality[T] {
	return EqualityFunc[T](func(a, b T) bool { return a == b })
}

// Reflect returns an Equality that uses reflect.DeepEqual.
// It is the fallback when T is not comparable and no strategy is provided.
func Reflect[T any]() Equality[T] {
	return EqualityFunc[T](func(a, b T) bool { return reflect.DeepEqual(a, b) })
}

// FoldStrings is a case-insensitive Equality for strings.
func FoldStrings[S ~string]() Equality[S] {
	return EqualityFunc[S](func(a, b S) bool { return strings.EqualFold(string(a), string(b)) })
}
