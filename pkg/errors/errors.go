package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Package document errors
	ErrPackageParse   ErrorCode = "PACKAGE_PARSE"
	ErrPackageInvalid ErrorCode = "PACKAGE_INVALID"

	// Content and manifest errors
	ErrContentUnsupported ErrorCode = "CONTENT_UNSUPPORTED"
	ErrContentDecode      ErrorCode = "CONTENT_DECODE"
	ErrManifestInvalid    ErrorCode = "MANIFEST_INVALID"

	// Bundle registry errors
	ErrRegistryParse  ErrorCode = "REGISTRY_PARSE"
	ErrRegistryWrite  ErrorCode = "REGISTRY_WRITE"
	ErrRegistryFormat ErrorCode = "REGISTRY_FORMAT"

	// Action errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// Prompt errors
	ErrPrompt ErrorCode = "PROMPT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileDelete ErrorCode = "FILE_DELETE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// PkghooksError represents a structured error with code and details
type PkghooksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PkghooksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PkghooksError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PkghooksError) Is(target error) bool {
	var targetErr *PkghooksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PkghooksError with the given code and message
func New(code ErrorCode, message string) *PkghooksError {
	return &PkghooksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PkghooksError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PkghooksError {
	return &PkghooksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PkghooksError
func Wrap(err error, code ErrorCode, message string) *PkghooksError {
	if err == nil {
		return nil
	}
	return &PkghooksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PkghooksError {
	if err == nil {
		return nil
	}
	return &PkghooksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PkghooksError) WithDetail(key string, value interface{}) *PkghooksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pe *PkghooksError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PkghooksError
func GetErrorCode(err error) ErrorCode {
	var pe *PkghooksError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PkghooksError
func GetErrorDetails(err error) map[string]interface{} {
	var pe *PkghooksError
	if errors.As(err, &pe) {
		return pe.Details
	}
	return nil
}

// Is reports whether any error in err's chain matches target. It mirrors the
// standard library so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
