package qos

import (
	"fmt"
)

// ErrorCode classifies failures raised by profile construction, field
// assignment, and short-key lookups.
type ErrorCode int32

const (
	// ErrorCodeInvalidProfile indicates profile construction violated the
	// history/depth invariant.
	ErrorCodeInvalidProfile ErrorCode = -1

	// ErrorCodeShortKeyNotFound indicates a short-key lookup matched no
	// known member.
	ErrorCodeShortKeyNotFound ErrorCode = -2

	// ErrorCodeValueNotFound indicates an enumeration value has no defined
	// canonical short key.
	ErrorCodeValueNotFound ErrorCode = -3

	// ErrorCodeInvalidArgument indicates a field assignment was outside the
	// field's valid domain.
	ErrorCodeInvalidArgument ErrorCode = -4
)

// Error represents a structured error from the qos package.
type Error struct {
	code ErrorCode
	msg  string
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.msg, e.code)
}

// Code returns the error code.
func (e Error) Code() ErrorCode {
	return e.code
}

// Message returns the error message without the code.
func (e Error) Message() string {
	return e.msg
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, msg string) Error {
	return Error{code: code, msg: msg}
}

// Is reports whether target matches this error by comparing error codes.
// This enables errors.Is() support for Error.
// Uses direct type assertion (not errors.As) to avoid recursive chain walking.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if ok {
		return e.code == t.code
	}
	return false
}

// Sentinel errors for the package's failure modes. All are unrecoverable at
// the point of construction or assignment; none are retried or downgraded.
var (
	// ErrInvalidProfile is returned when profile construction is ambiguous
	// or underspecified (the history/depth invariant).
	// Use errors.Is(err, qos.ErrInvalidProfile) to detect it.
	ErrInvalidProfile = NewError(ErrorCodeInvalidProfile, "invalid QoS profile")

	// ErrShortKeyNotFound is returned when a policy or preset short-key
	// lookup matches no member.
	ErrShortKeyNotFound = NewError(ErrorCodeShortKeyNotFound, "short key not found")

	// ErrValueNotFound is returned when an enumeration value outside the
	// valid range has no canonical short key.
	ErrValueNotFound = NewError(ErrorCodeValueNotFound, "value not found")

	// ErrInvalidArgument is returned by validated setters for values
	// outside the field's domain.
	ErrInvalidArgument = NewError(ErrorCodeInvalidArgument, "invalid argument")
)
