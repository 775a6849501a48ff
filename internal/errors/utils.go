package errors

import (
	"errors"
)

// Wrap wraps an error with additional context. A nil err yields a nil error
// interface, so `return Wrap(err, ...)` is safe without a guard.
func Wrap(err error, errType ErrorType, code, message string) error {
	if err == nil {
		return nil
	}

	wrapped := &AnalysisError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}

	// Carry context forward so the outermost error still knows the locator.
	var ae *AnalysisError
	if errors.As(err, &ae) && len(ae.Context) > 0 {
		wrapped.Context = make(map[string]interface{}, len(ae.Context))
		for k, v := range ae.Context {
			wrapped.Context[k] = v
		}
	}

	return wrapped
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) error {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) error {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// GetErrorType returns the type of the outermost AnalysisError in the chain,
// or ErrorTypeInternal for foreign errors.
func GetErrorType(err error) ErrorType {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Type
	}
	return ErrorTypeInternal
}

// HasCode reports whether any AnalysisError in the chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var ae *AnalysisError
		if !errors.As(err, &ae) {
			return false
		}
		if ae.Code == code {
			return true
		}
		err = ae.Cause
	}
	return false
}

// IsInvalidInput checks if an error reports a missing source.
func IsInvalidInput(err error) bool {
	return HasCode(err, ErrCodeInvalidInput)
}

// IsReadFailure checks if an error reports an unreadable source.
func IsReadFailure(err error) bool {
	return HasCode(err, ErrCodeReadFailure)
}

// IsRenderFailure checks if an error reports a failed summary write.
func IsRenderFailure(err error) bool {
	return HasCode(err, ErrCodeRenderFailure)
}

// UserMessage returns the text shown to the user for err: the message of
// the outermost AnalysisError, or err.Error() for anything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
