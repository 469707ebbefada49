// Package apperror holds the normalized error type shared by the lookup
// caches, the retry executor and the recovery boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed error taxonomy.
type Kind string

const (
	KindGlobal     Kind = "GlobalError"
	KindValidation Kind = "ValidationError"
	KindNotFound   Kind = "NotFoundError"
	KindUnknown    Kind = "UnknownError"
	KindNetwork    Kind = "NetworkError"
)

// DefaultMessage is used when nothing better can be extracted.
const DefaultMessage = "An unknown error occurred"

// Error is a normalized failure: a stable kind, a user-facing message, an
// HTTP-like status and optional structured details.
type Error struct {
	Message string         `json:"message"`
	Status  int            `json:"status"`
	Kind    Kind           `json:"kind"`
	Details map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// New builds an Error of the given kind with the kind's default status.
func New(kind Kind, message string) *Error {
	return &Error{
		Message: message,
		Status:  statusForKind(kind),
		Kind:    kind,
	}
}

// Wrap is New with a cause kept for errors.Is / errors.As.
func Wrap(kind Kind, message string, cause error) *Error {
	e := New(kind, message)
	e.cause = cause
	return e
}

// WithDetail returns a copy of e with key set in Details.
func (e *Error) WithDetail(key string, value any) *Error {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// Validation is shorthand for New(KindValidation, ...).
func Validation(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// NotFound is shorthand for New(KindNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// IsKind reports whether err normalizes to kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// PayloadError is implemented by transport errors that carry a decoded
// error envelope from the remote side.
type PayloadError interface {
	error
	PayloadMessage() string
	StatusCode() int
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return KindNetwork
	default:
		return KindUnknown
	}
}
