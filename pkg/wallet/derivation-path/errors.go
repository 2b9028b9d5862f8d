package path

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDerivationPath = errors.New("missing derivation path")
	ErrInvalidPathSegment    = errors.New("invalid path segment")
)

// InvalidPathSegmentError reports the offending segment of a derivation path
// and why it was rejected.
type InvalidPathSegmentError struct {
	Position int
	Segment  string
	Reason   string
}

func (e *InvalidPathSegmentError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("%s at position %d: %s", ErrInvalidPathSegment, e.Position, e.Reason)
	}
	return fmt.Sprintf(
		"%s '%s' at position %d: %s", ErrInvalidPathSegment, e.Segment, e.Position, e.Reason,
	)
}

func (e *InvalidPathSegmentError) Unwrap() error {
	return ErrInvalidPathSegment
}
