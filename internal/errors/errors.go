package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes. The first three map the pipeline's data-quality
// taxonomy; the rest cover configuration and infrastructure failures.
const (
	CodeSchemaMismatch = "SCHEMA_MISMATCH"
	CodeEmptyCohort    = "EMPTY_COHORT"
	CodeMalformedScore = "MALFORMED_SCORE"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors

// SchemaMismatch signals an absent column or column-group. Core operations
// that can degrade to an empty result do so instead of returning this; it
// is reserved for places where the missing column makes the whole
// operation undefined (e.g. an assessment table without a score column).
func SchemaMismatch(message string) *AppError {
	return New(CodeSchemaMismatch, message)
}

// MalformedScore is the strict parse failure of the score-delta joiner: an
// assessment score that does not parse after separator normalization. Score
// tables are expected to be fully well-formed, so this is a hard failure
// rather than a coerced missing value.
func MalformedScore(row int, value string) *AppError {
	return New(CodeMalformedScore, fmt.Sprintf("score at row %d is not a number: %q", row, value))
}

// EmptyCohort signals a filter or intersection that matched no rows where a
// non-empty result was expected.
func EmptyCohort(message string) *AppError {
	return New(CodeEmptyCohort, message)
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
