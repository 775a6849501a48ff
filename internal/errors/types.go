// Package errors defines the typed errors returned across wordmetrics.
//
// Every failure that reaches the command line is an *AnalysisError whose
// Message is the user-facing text. The Type and Code fields let callers
// branch on the kind of failure without matching strings.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeRender     ErrorType = "render"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeInvalidInput        = "ERR_INVALID_INPUT"
	ErrCodeReadFailure         = "ERR_READ_FAILURE"
	ErrCodeRenderFailure       = "ERR_RENDER_FAILURE"
	ErrCodeUnsupportedScheme   = "ERR_UNSUPPORTED_SCHEME"
	ErrCodeUnsupportedEncoding = "ERR_UNSUPPORTED_ENCODING"
	ErrCodeUnsupportedFormat   = "ERR_UNSUPPORTED_FORMAT"
	ErrCodeHTTPStatus          = "ERR_HTTP_STATUS"
	ErrCodeFileNotFound        = "ERR_FILE_NOT_FOUND"
	ErrCodeConfigInvalid       = "ERR_CONFIG_INVALID"
	ErrCodeInternalError       = "ERR_INTERNAL"
)

// User-facing messages.
const (
	MsgInvalidInput  = "Invalid source; must be non-null"
	MsgReadFailure   = "Failed to analyse given source [%s]"
	MsgRenderFailure = "Exception occurred when writing summary"
)

// AnalysisError is a structured error type with context.
type AnalysisError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns the message, followed by the cause when there is one.
func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code, so errors.Is(err, &AnalysisError{...})
// works as a kind check.
func (e *AnalysisError) Is(target error) bool {
	var t *AnalysisError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *AnalysisError) WithContext(key string, value interface{}) *AnalysisError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// NewInvalidInput reports a missing source locator.
func NewInvalidInput() *AnalysisError {
	return &AnalysisError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeInvalidInput,
		Message: MsgInvalidInput,
	}
}

// NewReadFailure reports that the source identified by locator could not be
// read to completion.
func NewReadFailure(locator string, cause error) *AnalysisError {
	return (&AnalysisError{
		Type:    ErrorTypeIO,
		Code:    ErrCodeReadFailure,
		Message: fmt.Sprintf(MsgReadFailure, locator),
		Cause:   cause,
	}).WithContext("locator", locator)
}

// NewRenderFailure reports that a summary could not be written.
func NewRenderFailure(cause error) *AnalysisError {
	return &AnalysisError{
		Type:    ErrorTypeRender,
		Code:    ErrCodeRenderFailure,
		Message: MsgRenderFailure,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *AnalysisError {
	return &AnalysisError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *AnalysisError {
	return &AnalysisError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewNetworkError creates a network error.
func NewNetworkError(code, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Type:    ErrorTypeNetwork,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
