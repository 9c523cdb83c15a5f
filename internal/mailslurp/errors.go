package mailslurp

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched by *APIError through errors.Is.
var (
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("invalid or expired API key")
	// ErrNotFound indicates the inbox, email, or attachment does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the account exceeded its request quota.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError is an HTTP error reply from the API.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is lets errors.Is match the sentinel for the status code.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError is a transport-level failure before any reply arrived.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
