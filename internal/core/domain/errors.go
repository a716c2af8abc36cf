package domain

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories surfaced by the resolution
// pipeline. No other error type crosses the engine boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindNotFound
	KindParse
	KindDatabase
	KindOffline
	KindTimeout
	KindServer
	KindInvalidInput
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	case KindDatabase:
		return "database"
	case KindOffline:
		return "offline"
	case KindTimeout:
		return "timeout"
	case KindServer:
		return "server"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error carries a failure kind plus a user-facing and a technical message.
type Error struct {
	Kind        Kind
	UserMessage string
	TechMessage string
	StatusCode  int // set for KindServer
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.TechMessage, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.TechMessage)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches errors of the same kind, so sentinel comparison via errors.Is
// works across wrapping.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// Connectivity reports whether the failure is connectivity-related.
func (e *Error) Connectivity() bool {
	switch e.Kind {
	case KindNetwork, KindOffline, KindTimeout:
		return true
	}
	return false
}

// Retryable reports whether a retry of the same operation may succeed.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindNetwork, KindTimeout, KindServer, KindUnknown:
		return true
	}
	return false
}

func newError(kind Kind, userMsg, techMsg string, cause error) *Error {
	return &Error{Kind: kind, UserMessage: userMsg, TechMessage: techMsg, cause: cause}
}

// NetworkError reports a failed network interaction below the HTTP layer.
func NetworkError(techMsg string, cause error) *Error {
	return newError(KindNetwork,
		"No internet connection. Please check your network settings.", techMsg, cause)
}

// NotFoundError reports that the catalog has no record for the identifier.
func NotFoundError(techMsg string) *Error {
	return newError(KindNotFound,
		"Product not found. Please check the barcode and try again.", techMsg, nil)
}

// ParseError reports malformed catalog data.
func ParseError(techMsg string, cause error) *Error {
	return newError(KindParse,
		"Unable to process product data. Please try again.", techMsg, cause)
}

// DatabaseError reports a failed persistent-store operation.
func DatabaseError(techMsg string, cause error) *Error {
	return newError(KindDatabase,
		"Unable to save or retrieve data. Please try again.", techMsg, cause)
}

// OfflineError reports that connectivity is unavailable and no cached data
// could satisfy the request.
func OfflineError(techMsg string) *Error {
	return newError(KindOffline,
		"No internet connection and no saved data available.", techMsg, nil)
}

// TimeoutError reports that a remote call exceeded its deadline.
func TimeoutError(techMsg string, cause error) *Error {
	return newError(KindTimeout,
		"Request timed out. Please check your connection and try again.", techMsg, cause)
}

// ServerError reports a 5xx response from the catalog service.
func ServerError(statusCode int, techMsg string) *Error {
	e := newError(KindServer, "Server error. Please try again later.", techMsg, nil)
	e.StatusCode = statusCode
	return e
}

// InvalidInputError reports rejected caller input. The message is shown to
// the user as-is.
func InvalidInputError(userMsg string) *Error {
	return newError(KindInvalidInput, userMsg, "invalid input", nil)
}

// UnknownError wraps an unexpected failure.
func UnknownError(techMsg string, cause error) *Error {
	return newError(KindUnknown,
		"Something went wrong. Please try again.", techMsg, cause)
}

// AsError extracts a taxonomy error from err, wrapping foreign errors as
// KindUnknown so callers always see a taxonomy value.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return UnknownError(err.Error(), err)
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
