package identity

import (
	"fmt"
	"strings"

	apperrors "github.com/jrsteele09/go-seller-bootstrap/internal/errors"
)

// PlatformError is an error response from the identity API.
type PlatformError struct {
	Status  int    // HTTP status code
	Code    string // Error code, e.g. EMAIL_NOT_FOUND
	Message string // Full message as returned by the API
	kinds   []error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("identity: %s (status %d)", e.Message, e.Status)
}

// Unwrap exposes the error classes so callers can use errors.Is with the sentinel errors.
func (e *PlatformError) Unwrap() []error {
	return e.kinds
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newPlatformError classifies an identity API error message. Messages look like
// "EMAIL_NOT_FOUND" or "WEAK_PASSWORD : Password should be at least 6 characters".
func newPlatformError(status int, message string) *PlatformError {
	code := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])
	return &PlatformError{
		Status:  status,
		Code:    code,
		Message: message,
		kinds:   classify(code),
	}
}

func classify(code string) []error {
	switch code {
	case "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return []error{apperrors.ErrAccountNotFound}
	case "INVALID_LOGIN_CREDENTIALS":
		// Returned instead of EMAIL_NOT_FOUND/INVALID_PASSWORD when email enumeration protection is on.
		return []error{apperrors.ErrAccountNotFound, apperrors.ErrInvalidCredentials}
	case "EMAIL_EXISTS":
		return []error{apperrors.ErrAccountExists}
	case "INVALID_PASSWORD", "INVALID_EMAIL", "MISSING_PASSWORD", "WEAK_PASSWORD":
		return []error{apperrors.ErrInvalidCredentials}
	case "USER_DISABLED":
		return []error{apperrors.ErrAccountDisabled}
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return []error{apperrors.ErrTooManyAttempts}
	default:
		return []error{apperrors.ErrPlatform}
	}
}
