package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure returned by every Client call. Status is zero when
// the request never produced an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api request failed: %s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("api error %d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or zero.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether the server rejected the bearer token.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

// IsNotFound reports whether the requested resource does not exist.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// MessageOf returns a message suitable for showing to a visitor.
func MessageOf(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "Something went wrong"
	}
	if apiErr.Status == 0 {
		return "Could not reach the server, please try again"
	}
	if apiErr.Status >= http.StatusInternalServerError {
		return "The server ran into a problem, please try again"
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return http.StatusText(apiErr.Status)
}
