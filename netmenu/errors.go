package netmenu

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotAvailable    = errors.New("not available")
	ErrOperationFailed = errors.New("operation failed")
	// ErrAmbiguous marks a consistency violation: something that must
	// resolve to exactly one entity matched more than one.
	ErrAmbiguous = errors.New("ambiguous match")
	// ErrCancelled is returned when the user backs out of a prompt. It is
	// not a failure; callers translate it into a clean exit.
	ErrCancelled = errors.New("cancelled")
)
