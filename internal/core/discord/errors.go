package discord

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is returned by New when no token is configured.
	ErrMissingToken = errors.New("discord: token is required")

	// ErrTooManyAttachments is returned by Send when more than
	// MaxAttachments paths are given. No request is made.
	ErrTooManyAttachments = fmt.Errorf("discord: at most %d attachments per message", MaxAttachments)

	// ErrInvalidSnowflake is returned when an ID is not a decimal uint64.
	ErrInvalidSnowflake = errors.New("discord: invalid snowflake")
)

// APIError is a non-2xx response from the Discord API. Callers can use
// errors.As to inspect it:
//
//	var apiErr *APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden { ... }
type APIError struct {
	// Code is the Discord JSON error code (e.g. 50001 Missing Access).
	// Zero when the body was not a Discord error object.
	Code int `json:"code"`
	// Message is the human-readable description from the API, or the raw
	// body when it could not be decoded.
	Message string `json:"message"`

	StatusCode int    `json:"-"`
	Method     string `json:"-"`
	Path       string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("discord: %s %s: %d (code %d): %s", e.Method, e.Path, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("discord: %s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsAPIError reports whether err is an *APIError with the given HTTP status.
func IsAPIError(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
