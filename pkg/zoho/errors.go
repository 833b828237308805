package zoho

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Error codes carried by APIError.
const (
	CodeCRMError             = "CRM_ERROR"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeNotFound             = "NOT_FOUND"
	CodeValidationError      = "VALIDATION_ERROR"
)

// defaultRetryAfter is used when a 429 carries no usable Retry-After header.
const defaultRetryAfter = 60

// APIError is the single error type surfaced for vendor-facing failures.
type APIError struct {
	Message    string
	StatusCode int
	Code       string
	Retryable  bool
	// RetryAfter is the server-advised wait in seconds; set on rate limits.
	RetryAfter int
	// Details maps field names to validation messages.
	Details map[string][]string
}

// Sentinels for errors.Is. They match on Code; ErrNotFound also matches any
// APIError with status 404.
var (
	ErrRateLimited    = &APIError{Code: CodeRateLimitExceeded}
	ErrAuthentication = &APIError{Code: CodeAuthenticationFailed}
	ErrNotFound       = &APIError{Code: CodeNotFound}
	ErrValidation     = &APIError{Code: CodeValidationError}
)

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t.Code == CodeNotFound && e.StatusCode == 404 {
		return true
	}
	return t.Code != "" && t.Code == e.Code
}

func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{Message: message, StatusCode: statusCode, Code: CodeCRMError}
}

func NewRateLimitError(message string, retryAfter int) *APIError {
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}
	return &APIError{
		Message:    message,
		StatusCode: 429,
		Code:       CodeRateLimitExceeded,
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

func NewAuthenticationError(message string) *APIError {
	return &APIError{Message: message, StatusCode: 401, Code: CodeAuthenticationFailed}
}

func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("%s not found: %s", resource, id),
		StatusCode: 404,
		Code:       CodeNotFound,
	}
}

func NewValidationError(message string, details map[string][]string) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: 400,
		Code:       CodeValidationError,
		Details:    details,
	}
}

// IsRetryable reports whether err is worth another attempt: rate limits,
// errors marked retryable, and transport failures that look transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && (apiErr.Retryable || apiErr.Code == CodeRateLimitExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "econnreset")
}
