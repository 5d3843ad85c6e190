package nyt

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies fetch failures
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindNetworkFailure
	KindClientError
	KindServerError
	KindServerRejected
)

// sentinels for errors.Is checks against APIError kinds
var (
	ErrTimeout        = errors.New("timeout")
	ErrNetworkFailure = errors.New("network failure")
	ErrClientError    = errors.New("client error")
	ErrServerError    = errors.New("server error")
	ErrServerRejected = errors.New("server rejected")
	ErrUnknown        = errors.New("unknown error")

	// errNoRetry matches any APIError which should not be repeated
	errNoRetry = errors.New("not retryable")
)

// user-facing messages
const (
	msgGeneric     = "Unable to load articles. Please try again."
	msgNotFound    = "No articles available for this section."
	msgRateLimited = "Too many requests. Please wait a moment and try again."
	msgServerDown  = "Server is temporarily unavailable. Please try again later."
	msgTimeout     = "Unable to connect. Please check your internet connection."
	msgNetwork     = "Network connection issue. Please check your internet and try again."
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindNetworkFailure:
		return "network_failure"
	case KindClientError:
		return "client_error"
	case KindServerError:
		return "server_error"
	case KindServerRejected:
		return "server_rejected"
	default:
		return "unknown"
	}
}

// APIError is returned for every failed fetch.
// Message is safe to show to the user, Status is the HTTP status or 0 if there was none.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (status %d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
}

// Unwrap returns the underlying cause
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind
func (e *APIError) Is(target error) bool {
	if target == errNoRetry {
		return !e.Retryable()
	}
	return e.sentinel() == target
}

// UserMessage returns message suitable for end users
func (e *APIError) UserMessage() string {
	return e.Message
}

// StatusCode returns HTTP status of the failure, 0 if there was no response
func (e *APIError) StatusCode() int {
	return e.Status
}

// Retryable reports whether the request may be repeated, any 4xx status is final
func (e *APIError) Retryable() bool {
	return e.Status < 400 || e.Status >= 500
}

func (e *APIError) sentinel() error {
	switch e.Kind {
	case KindTimeout:
		return ErrTimeout
	case KindNetworkFailure:
		return ErrNetworkFailure
	case KindClientError:
		return ErrClientError
	case KindServerError:
		return ErrServerError
	case KindServerRejected:
		return ErrServerRejected
	default:
		return ErrUnknown
	}
}

// statusError builds APIError for non-2xx http response
func statusError(status int) *APIError {
	e := &APIError{Kind: KindClientError, Status: status, Message: msgGeneric}
	if status >= http.StatusInternalServerError {
		e.Kind = KindServerError
	} else if status < http.StatusBadRequest {
		e.Kind = KindUnknown
	}

	switch {
	case status == http.StatusNotFound:
		e.Message = msgNotFound
	case status == http.StatusTooManyRequests:
		e.Message = msgRateLimited
	case status >= http.StatusInternalServerError:
		e.Message = msgServerDown
	}
	return e
}
