// Package errors provides the unified error type and factory functions for
// Fristenwächter.  Every layer of the application (domain, application,
// infrastructure, interfaces) uses AppError as the single carrier for
// structured error information, enabling consistent HTTP responses and logging.
package errors

import (
	"errors"
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// AppError — the canonical error type
// ─────────────────────────────────────────────────────────────────────────────

// AppError is the single structured error type used throughout the engine.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.New(errors.ErrCodeReminderNotFound, "reminder not found")
//	return errors.Wrap(err, errors.ErrCodeStorage, "failed to load reminders")
//	return errors.NotFound("reminder not found").WithDetail("id=" + id)
type AppError struct {
	// Code is the typed error code that uniquely identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description of the error, suitable
	// for inclusion in API responses returned to callers.
	Message string

	// Detail carries supplementary context (entity IDs, offending values) that
	// aids debugging without leaking internals to end users.
	Detail string

	// Cause is the underlying error that triggered this AppError, enabling
	// errors.Is / errors.As traversal of the full error chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>"; the detail segment is omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// It is safe to call on a nil pointer (returns nil).
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Detail = detail
	return &cp
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory functions
// ─────────────────────────────────────────────────────────────────────────────

// New constructs an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf constructs an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an AppError around cause.  A nil cause yields nil so that
// call sites can wrap unconditionally.
func Wrap(cause error, code ErrorCode, message string) *AppError {
	if cause == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: cause}
}

// NotFound constructs an AppError with ErrCodeNotFound.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Validation constructs an AppError with ErrCodeValidation.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// InvalidState constructs an AppError with ErrCodeConflict.  Used for
// operations that are well-formed but not legal in the entity's current state,
// such as undefined reminder status transitions.
func InvalidState(message string) *AppError {
	return New(ErrCodeConflict, message)
}

// Internal constructs an AppError with ErrCodeInternal.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection helpers
// ─────────────────────────────────────────────────────────────────────────────

// CodeOf extracts the ErrorCode from err.  Non-AppError chains report
// ErrCodeInternal; a nil error reports the empty code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}

// Is delegates to the standard library so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

// As delegates to the standard library so callers need a single import.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// IsNotFound reports whether err carries a not-found error code.
func IsNotFound(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeNotFound || code == ErrCodeReminderNotFound
}

// IsValidation reports whether err carries a validation/bad-input error code.
func IsValidation(err error) bool {
	switch CodeOf(err) {
	case ErrCodeValidation, ErrCodeBadRequest,
		ErrCodeDeadlineInvalidReference, ErrCodeDeadlineUnknownCategory,
		ErrCodeReminderInvalidDraft, ErrCodeReminderNotRecurring:
		return true
	}
	return false
}

// IsInvalidTransition reports whether err rejects an undefined status transition.
func IsInvalidTransition(err error) bool {
	code := CodeOf(err)
	return code == ErrCodeConflict || code == ErrCodeReminderInvalidTransition
}
