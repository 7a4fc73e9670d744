package errutils

import "errors"

// Flatten returns the leaves of an error tree built with errors.Join.
// Nested joins are flattened depth-first; an error that is not a join is
// returned as a single-element slice. A nil error yields nil.
//
//	err := errors.Join(errA, errors.Join(errB, errC))
//	errutils.Flatten(err) // []error{errA, errB, errC}
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var leaves []error
	for _, e := range joined.Unwrap() {
		leaves = append(leaves, Flatten(e)...)
	}
	return leaves
}

// IsJoined reports whether err directly wraps several errors.
func IsJoined(err error) bool {
	var joined interface{ Unwrap() []error }
	return err != nil && errors.As(err, &joined)
}
