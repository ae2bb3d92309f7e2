package api

import (
	"errors"
	"fmt"
)

const (
	// NetworkErrorMessage is shown whenever the backend could not be
	// reached at all (no HTTP response).
	NetworkErrorMessage = "Unable to reach the server. Please check your connection."

	// GenericErrorMessage is shown for HTTP failures where the backend
	// did not supply a structured message of its own.
	GenericErrorMessage = "Something went wrong. Please try again."
)

// Error is the normalized failure returned by every client call. Message is
// always safe to surface to a user verbatim: it carries the backend's
// structured {message} when one was supplied, otherwise a generic fallback.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsNetwork reports whether err represents a transport failure, i.e. no
// HTTP response was received from the backend.
func (e *Error) IsNetwork() bool {
	return e.StatusCode == 0
}

func newNetworkError(cause error) *Error {
	return &Error{
		Message: NetworkErrorMessage,
		cause:   cause,
	}
}

// UserMessage extracts a displayable message from any error returned by the
// client. Unknown error types map to the generic message so raw internals
// never leak into a page.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return GenericErrorMessage
}
