package remover

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Reason categorizes why a removal failed.
type Reason int

const (
	ReasonPermissionDenied Reason = iota
	ReasonNotFound
	ReasonCrossDevice
	ReasonUnknown
)

// String returns a human-readable reason.
func (r Reason) String() string {
	switch r {
	case ReasonPermissionDenied:
		return "permission denied"
	case ReasonNotFound:
		return "not found"
	case ReasonCrossDevice:
		return "trash is on a different volume"
	case ReasonUnknown:
		return "unknown error"
	default:
		return "unspecified error"
	}
}

// RemovalError describes a failed removal of one entry.
type RemovalError struct {
	Path   string
	Reason Reason
	Err    error
}

// Error implements the error interface.
func (e *RemovalError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Err)
}

// Unwrap returns the underlying error.
func (e *RemovalError) Unwrap() error {
	return e.Err
}

// classify maps an OS error to a Reason.
func classify(err error) Reason {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, syscall.EXDEV):
		return ReasonCrossDevice
	default:
		return ReasonUnknown
	}
}
