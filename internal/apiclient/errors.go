package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("session expired")
	ErrNotFound     = errors.New("not found")
	ErrNetwork      = errors.New("network error")
)

// Error is a non-2xx response. Body holds the backend payload verbatim.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Body       []byte `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}

	return false
}

// NetworkError means the request never produced a response.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string { return e.Message }
func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

const (
	msgTimeout     = "The server took too long to respond. Please try again."
	msgUnreachable = "Unable to reach the server. Check your connection and try again."
)

// decodeError builds an Error from a failed response body. Backends disagree on the
// message key, so both "message" and "error" are accepted.
func decodeError(status int, body []byte) *Error {
	apiErr := &Error{StatusCode: status, Body: body}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
		Details any    `json:"details"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		apiErr.Details = payload.Details

		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}
