// Package interr reports internal consistency violations.
package interr

import (
	"go.llib.dev/lazyseq"
	"go.llib.dev/lazyseq/pkg/logger"
)

// Violation logs the broken invariant and panics with lazyseq.ErrInternal.
// It is not a user facing error, only a defect can trigger it.
func Violation(format string, a ...any) {
	err := lazyseq.ErrInternal.F(format, a...)
	logger.Error("internal consistency violation", logger.ErrField(err))
	panic(err)
}
