package twilio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents a structured error payload returned by the API for a
// non-success status code. It carries the four fields of the wire schema.
type APIError struct {
	Message  string `json:"message"   yaml:"message"`
	Code     int    `json:"code"      yaml:"code"`
	MoreInfo string `json:"more_info" yaml:"more_info"`
	Status   int    `json:"status"    yaml:"status"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d, status: %d)", e.Message, e.Code, e.Status)
}

// ConnectionError indicates the server could not be reached at all. It is
// distinct from APIError, which describes an HTTP-level failure.
type ConnectionError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError indicates a response body could not be deserialized into the
// expected resource shape.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Common API error codes.
const (
	ErrorCodeNotFound         = 20404
	ErrorCodeUnauthorized     = 20003
	ErrorCodeInvalidParameter = 21211
	ErrorCodeServerError      = 20500
)

// Static errors for err113 compliance.
var (
	// ErrServerNoContent is returned for a non-success status whose body
	// carried no parseable error payload.
	ErrServerNoContent = errors.New("server error, no content")

	ErrAccountSidRequired  = errors.New("account SID is required")
	ErrAuthTokenRequired   = errors.New("auth token or API key is required")
	ErrEndpointRequired    = errors.New("API endpoint is required")
	ErrConfigRequired      = errors.New("config is required")
	ErrNoNextPage          = errors.New("no next page available")
	ErrPhoneNumberRequired = errors.New("phone number is required")
)

// IsNotFound checks if the error is a resource-not-found API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 404 || apiErr.Code == ErrorCodeNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401 || apiErr.Code == ErrorCodeUnauthorized
	}

	return false
}

// IsConnectionError checks if the error is a transport-level failure rather
// than an API-level one.
func IsConnectionError(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}

// ParseAPIError parses an error payload from a response body. It returns nil
// when the body is empty or does not contain a recognizable error object, in
// which case the caller falls back to ErrServerNoContent.
func ParseAPIError(data []byte) *APIError {
	if len(data) == 0 {
		return nil
	}

	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil
	}

	if apiErr.Message == "" && apiErr.Code == 0 && apiErr.Status == 0 {
		return nil
	}

	return &apiErr
}
