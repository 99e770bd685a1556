package server

import (
	"errors"
	"fmt"
)

// The boundary distinguishes exactly two error kinds: bad requests and
// unexpected internal failures. Nothing here is retryable and no call
// can corrupt state visible to later calls.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Error codes as they appear on the wire.
const (
	CodeInvalidInput = "invalid_input"
	CodeInternal     = "internal"
)

// RequestError carries the wire code alongside the cause.
type RequestError struct {
	Code  string
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

func invalidInput(format string, args ...any) *RequestError {
	return &RequestError{
		Code:  CodeInvalidInput,
		Cause: fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}

func internalError(cause error) *RequestError {
	return &RequestError{
		Code:  CodeInternal,
		Cause: fmt.Errorf("%w: %v", ErrInternal, cause),
	}
}
