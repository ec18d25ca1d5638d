package common

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind signalled by the synthesis and
// analysis routines. Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument wraps ErrInvalidArgument with a formatted reason
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
