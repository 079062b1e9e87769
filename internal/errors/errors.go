package errors

import (
	"errors"
	"fmt"
)

// Platform and bootstrap error classes
var (
	// Identity errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotSignedIn        = errors.New("not signed in")

	// Transport errors
	ErrNetwork  = errors.New("network error")
	ErrPlatform = errors.New("platform error")

	// Local identity errors
	ErrMissingLocalIdentity = errors.New("local identity missing")

	// Bootstrap errors
	ErrAlreadyAttempted = errors.New("already attempted")
	ErrUnsupported      = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
