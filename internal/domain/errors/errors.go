package errors

import (
	"jalsetu/internal/errors"
)

// Kind classifies a failure for the screen layer.
type Kind string

const (
	KindInvalidInput        Kind = "INVALID_INPUT"
	KindLocationUnavailable Kind = "LOCATION_UNAVAILABLE"
	KindNetwork             Kind = "NETWORK_ERROR"
	KindRemote              Kind = "REMOTE_ERROR"
	KindNotFound            Kind = "NOT_FOUND"
	KindInternal            Kind = "INTERNAL_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure class
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Unwrap exposes the transport or store error this one was built from.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches on error code. A kind-level sentinel (ErrNotFound, ErrNetwork, ...)
// also matches every error of its kind.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if t.errorCode == e.errorCode {
		return true
	}

	return t.errorCode == string(t.kind) && t.kind == e.kind
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithMessage replaces the user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	clone := *e
	clone.message = message

	return &clone
}

// WithCause records the underlying error.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Kind-level sentinels. Match any error of the kind with errors.Is.
var (
	ErrInvalidInput = NewBaseError(
		KindInvalidInput,
		string(KindInvalidInput),
		"Please check the entered details",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		KindLocationUnavailable,
		string(KindLocationUnavailable),
		"Unable to determine your location",
		"",
	)

	ErrNetwork = NewBaseError(
		KindNetwork,
		string(KindNetwork),
		"Network error, please try again",
		"",
	)

	ErrRemote = NewBaseError(
		KindRemote,
		string(KindRemote),
		"The assessment service returned an error",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		string(KindNotFound),
		"The requested item was not found",
		"",
	)

	ErrInternal = NewBaseError(
		KindInternal,
		string(KindInternal),
		"Something went wrong",
		"",
	)
)

// Specific errors
var (
	ErrLocationPermissionDenied = NewBaseError(
		KindLocationUnavailable,
		"LOCATION_PERMISSION_DENIED",
		"Location permission is required",
		"",
	)

	ErrReportNotFound = NewBaseError(
		KindNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	ErrPropertyNotFound = NewBaseError(
		KindNotFound,
		"PROPERTY_NOT_FOUND",
		"Property not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		KindNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrInvalidIDToken = NewBaseError(
		KindInvalidInput,
		"INVALID_ID_TOKEN",
		"Sign-in failed, please try again",
		"",
	)

	ErrNotSignedIn = NewBaseError(
		KindInvalidInput,
		"NOT_SIGNED_IN",
		"Please sign in to continue",
		"",
	)
)

// NewNetworkError reports a transport-level failure talking to a remote collaborator.
func NewNetworkError(cause error, message string) *BaseError {
	details := message
	if cause != nil {
		details = message + ": " + cause.Error()
	}

	return ErrNetwork.WithCause(cause).WithDetails(details)
}

// NewRemoteError reports a well-formed error response. statusMessage is shown to the user.
func NewRemoteError(statusMessage, details string) *BaseError {
	err := ErrRemote.WithDetails(details)
	if statusMessage != "" {
		err = err.WithMessage(statusMessage)
	}

	return err
}

// NewInvalidInputError reports a local validation failure.
func NewInvalidInputError(details string) *BaseError {
	return ErrInvalidInput.WithDetails(details)
}

// KindOf returns the Kind of the first AppError in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// DisplayMessage returns the text a screen should show for err.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return ErrInternal.Message()
}
