package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Cursor errors
const (
	// ErrCodeBufferLimitExceeded indicates a buffering adapter saw more
	// items than its configured limit allows.
	ErrCodeBufferLimitExceeded ErrorCode = "BUFFER_LIMIT_EXCEEDED"
	// ErrCodeCanceled indicates the context was done while a cursor was pulling.
	ErrCodeCanceled ErrorCode = "CANCELED"
	// ErrCodeSourceFailed indicates a source cursor could not produce an item.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceFailed: true,
	ErrCodeCanceled:     false,
	ErrCodeInternal:     false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
