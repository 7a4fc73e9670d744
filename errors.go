package docfill

import (
	"errors"
	"fmt"
)

// ErrMissingFragment is matched by every error returned when a template
// names a fragment the dictionary does not contain.
var ErrMissingFragment = errors.New("fragment not found")

var errNilTarget = errors.New("decorate target is nil")

// MissingFragmentError reports a placeholder whose name has no fragment.
type MissingFragmentError struct {
	Name string
}

func (e *MissingFragmentError) Error() string {
	return fmt.Sprintf("placeholder %q: %v", e.Name, ErrMissingFragment)
}

func (e *MissingFragmentError) Unwrap() error {
	return ErrMissingFragment
}

// AsMissingFragmentError extracts the first MissingFragmentError from err.
//
//	if missing, ok := docfill.AsMissingFragmentError(err); ok {
//	    fmt.Printf("unknown fragment: %s\n", missing.Name)
//	}
func AsMissingFragmentError(err error) (*MissingFragmentError, bool) {
	if err == nil {
		return nil, false
	}
	if missingErr := new(MissingFragmentError); errors.As(err, &missingErr) {
		return missingErr, true
	}

	return nil, false
}

// MissingFragmentNames returns every missing fragment name carried by err,
// in the order the placeholders appeared in the template.
func MissingFragmentNames(err error) []string {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		if missingErr, ok := AsMissingFragmentError(err); ok {
			return []string{missingErr.Name}
		}
		return nil
	}

	var names []string
	for _, e := range joined.Unwrap() {
		if missingErr, ok := AsMissingFragmentError(e); ok {
			names = append(names, missingErr.Name)
		}
	}
	return names
}
