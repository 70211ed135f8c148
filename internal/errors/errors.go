package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountLocked      = errors.New("account locked")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrPasswordReuse      = errors.New("new password matches a recently used password")
	ErrValidation         = errors.New("validation failed")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenUnsupported      = errors.New("token unsupported")
)

// AccountLockedError carries how long the caller has to wait before the
// account becomes eligible for automatic unlock. It matches
// errors.Is(err, ErrAccountLocked).
type AccountLockedError struct {
	RetryAfter time.Duration
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, retry after %s", e.RetryAfter.Round(time.Second))
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}
