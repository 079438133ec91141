package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors, detected before any I/O or partitioning work.
const (
	// ErrCodeInvalidInput indicates a malformed or missing request value,
	// such as an empty locator or an unsupported tabular format.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeEmptyInput indicates selection was invoked on an empty sequence.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"
	// ErrCodeRankOutOfRange indicates k lies outside [1, length].
	ErrCodeRankOutOfRange ErrorCode = "RANK_OUT_OF_RANGE"
	// ErrCodePayloadTooLarge indicates a request body above the server limit.
	ErrCodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"
)

// Source errors
const (
	// ErrCodeSourceUnavailable indicates the tabular resource could not be opened or read.
	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	// ErrCodeNoNumericData indicates the resource was read but held no usable numbers.
	ErrCodeNoNumericData ErrorCode = "NO_NUMERIC_DATA"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// SourceKind classifies why a source could not be read.
type SourceKind string

const (
	SourceNotFound   SourceKind = "not_found"
	SourcePermission SourceKind = "permission"
	SourceIO         SourceKind = "io"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceUnavailable: true,
	ErrCodeInternal:          false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// SOURCE_UNAVAILABLE is only retryable for generic I/O failures; see SourceUnavailable.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
