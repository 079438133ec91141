package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried by the caller.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// SourceUnavailable creates a new AppError for a tabular resource that could
// not be opened or read. The status follows the kind: a missing resource is
// 404, a denied one 403, anything else 503 and retryable.
func SourceUnavailable(locator string, kind SourceKind, cause error) *AppError {
	status := http.StatusServiceUnavailable
	retryable := true
	var message string
	switch kind {
	case SourceNotFound:
		status, retryable = http.StatusNotFound, false
		message = fmt.Sprintf("Source %s was not found.", locator)
	case SourcePermission:
		status, retryable = http.StatusForbidden, false
		message = fmt.Sprintf("Access to source %s was denied.", locator)
	default:
		kind = SourceIO
		message = fmt.Sprintf("Source %s could not be read.", locator)
	}
	return &AppError{
		Code: ErrCodeSourceUnavailable, Message: message,
		HTTPStatus: status, Retryable: retryable, Cause: cause,
		Details: map[string]any{"locator": locator, "kind": string(kind)},
	}
}

// NoNumericData creates a new AppError for a readable source whose first
// column held no numeric values.
func NoNumericData(locator string) *AppError {
	return &AppError{
		Code: ErrCodeNoNumericData, Message: "No numeric data found in the first column of the source.",
		HTTPStatus: http.StatusUnprocessableEntity, Retryable: false,
		Details: map[string]any{"locator": locator},
	}
}

// EmptyInput creates a new AppError for selection over an empty sequence.
func EmptyInput() *AppError {
	return &AppError{
		Code: ErrCodeEmptyInput, Message: "Sequence cannot be empty.",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// RankOutOfRange creates a new AppError for a rank outside [1, length].
func RankOutOfRange(k, length int) *AppError {
	return &AppError{
		Code: ErrCodeRankOutOfRange, Message: fmt.Sprintf("N must be in range from 1 to %d (got %d)", length, k),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"k": k, "min": 1, "max": length},
	}
}

// RankBelowMinimum creates a RANK_OUT_OF_RANGE error for k < 1, detected
// before the sequence length is known.
func RankBelowMinimum(k int) *AppError {
	return &AppError{
		Code: ErrCodeRankOutOfRange, Message: "N must be greater than or equal to 1",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"k": k, "min": 1},
	}
}

// PayloadTooLarge creates a new AppError for a request body above limit bytes.
func PayloadTooLarge(limit int64) *AppError {
	return &AppError{
		Code: ErrCodePayloadTooLarge, Message: fmt.Sprintf("Request body exceeds %d bytes.", limit),
		HTTPStatus: http.StatusRequestEntityTooLarge, Retryable: false,
		Details: map[string]any{"limit": limit},
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// Wrap returns err as an AppError. AppErrors anywhere in the chain are
// returned as-is; anything else becomes an internal error. Wrap(nil) is nil.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
