// Package domain defines the core domain model for LockMap.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
//
// @design DS-0104
type DomainError struct {
	Code    string // Error code (e.g., "LM-MAP-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error, or returns the
// generic internal code for non-domain errors.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Error codes. The numeric suffix loosely tracks the HTTP status the
// code maps to on the REST surface.
const (
	CodeKeyNotFound     = "LM-MAP-4040"
	CodeBadKey          = "LM-MAP-4001"
	CodeBadValue        = "LM-MAP-4002"
	CodeInvalidCapacity = "LM-CFG-4003"
	CodeRateLimited     = "LM-REQ-4290"
	CodeInternal        = "LM-SYS-5000"
)

// Sentinel domain errors.
var (
	// ErrKeyNotFound is the normal miss outcome surfaced to transports
	// that treat absence as an error (HTTP 404). The map core itself
	// reports a miss through its ok flag, not an error.
	ErrKeyNotFound = NewDomainError(CodeKeyNotFound, "key not found")

	// ErrBadKey reports a key that is not a base-10 signed 64-bit integer.
	ErrBadKey = NewDomainError(CodeBadKey, "key must be a signed 64-bit integer")

	// ErrBadValue reports a value that is not a base-10 signed 64-bit integer.
	ErrBadValue = NewDomainError(CodeBadValue, "value must be a signed 64-bit integer")

	// ErrInvalidCapacity reports a non-positive configured map capacity.
	ErrInvalidCapacity = NewDomainError(CodeInvalidCapacity, "map capacity must be at least 1")

	// ErrRateLimited reports a client exceeding the per-IP request budget.
	ErrRateLimited = NewDomainError(CodeRateLimited, "rate limit exceeded")
)
