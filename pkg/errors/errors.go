package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotConfigured         = errors.New("not configured")
	ErrModerationUnavailable = errors.New("moderation unavailable")
	ErrContentRejected       = errors.New("content rejected")
	ErrMediaUploadFailed     = errors.New("media upload failed")
	ErrStoreWriteFailed      = errors.New("store write failed")
	ErrIdempotencyConflict   = errors.New("idempotency key reused")
)

// Error codes surfaced to API callers
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeNotConfigured         = "NOT_CONFIGURED"
	CodeModerationUnavailable = "MODERATION_UNAVAILABLE"
	CodeContentRejected       = "CONTENT_REJECTED"
	CodeMediaUploadFailed     = "MEDIA_UPLOAD_FAILED"
	CodeStoreWriteFailed      = "STORE_WRITE_FAILED"
	CodeIdempotencyConflict   = "IDEMPOTENCY_CONFLICT"
	CodeInternal              = "INTERNAL"
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidInput reports a request rejected before any external call.
func InvalidInput(message string) error {
	return WrapWithCode(ErrInvalidInput, CodeInvalidInput, message)
}

// ModerationUnavailable wraps a classification failure. The cause stays in
// the chain so callers can still match ErrNotConfigured.
func ModerationUnavailable(cause error) error {
	return WrapWithCode(fmt.Errorf("%w: %w", ErrModerationUnavailable, cause), CodeModerationUnavailable,
		"content moderation is unavailable, try again later")
}

// ContentRejected carries the verdict message verbatim.
func ContentRejected(message string) error {
	return WrapWithCode(ErrContentRejected, CodeContentRejected, message)
}

// MediaUploadFailed is non-fatal for publication.
func MediaUploadFailed(cause error) error {
	return WrapWithCode(fmt.Errorf("%w: %w", ErrMediaUploadFailed, cause), CodeMediaUploadFailed,
		"image could not be uploaded and was dropped")
}

// StoreWriteFailed wraps an insert/update/delete error.
func StoreWriteFailed(cause error, message string) error {
	return WrapWithCode(fmt.Errorf("%w: %w", ErrStoreWriteFailed, cause), CodeStoreWriteFailed, message)
}

// IdempotencyConflict reports a key already bound to a different submission.
func IdempotencyConflict(message string) error {
	return WrapWithCode(ErrIdempotencyConflict, CodeIdempotencyConflict, message)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status the API answers with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrContentRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrIdempotencyConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, ErrModerationUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the API code for err, falling back to the sentinel it wraps.
func CodeOf(err error) string {
	if code := GetCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNotConfigured):
		return CodeNotConfigured
	case errors.Is(err, ErrModerationUnavailable):
		return CodeModerationUnavailable
	case errors.Is(err, ErrContentRejected):
		return CodeContentRejected
	case errors.Is(err, ErrStoreWriteFailed):
		return CodeStoreWriteFailed
	case errors.Is(err, ErrIdempotencyConflict):
		return CodeIdempotencyConflict
	default:
		return CodeInternal
	}
}
