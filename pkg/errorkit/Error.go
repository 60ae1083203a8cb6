package errorkit

import (
	"fmt"
)

// Error is an error type that can be declared with the `const` keyword.
//
//	const ErrNoElements errorkit.Error = "ErrNoElements"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to err.
// The result matches both err and the cause with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return wrapper{kind: err, cause: cause}
}

// F wraps err with a formatted cause describing the failing case.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type wrapper struct {
	kind  Error
	cause error
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.kind, w.cause.Error())
}

func (w wrapper) Unwrap() []error {
	return []error{w.kind, w.cause}
}
