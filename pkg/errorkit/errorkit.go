// Package errorkit holds the error primitives shared across lazyseq:
// const-declarable errors, merging of traversal and release errors,
// and a deferred helper for closing resources.
package errorkit

// Finish is a helper function that can be used from a deferred context.
// The error of blk is merged into the returned error.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, cursor.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}
