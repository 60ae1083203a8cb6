package errorkit

import (
	"errors"
	"strings"
)

// Merge combines the non nil errors into a single error.
// It returns nil when every error is nil, and the error itself when only one is non nil.
// Merged errors passed to Merge again are flattened,
// so a cursor that keeps collecting errors ends up with a single level list.
func Merge(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			flat = append(flat, err...)
		default:
			flat = append(flat, err)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

type multiError []error

func (errs multiError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Unwrap() []error {
	return errs
}
