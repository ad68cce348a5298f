// Package apperr defines the error kinds the API boundary maps to HTTP
// status codes. Handlers never let a raw database error reach the
// transport layer; they wrap it here and let pkg/response render it.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// KindValidation — missing or invalid required field → 400.
	KindValidation Kind = iota + 1
	// KindNotFound — identifier has no matching active row → 404.
	KindNotFound
	// KindMethodNotAllowed — unsupported HTTP method → 405.
	KindMethodNotAllowed
	// KindConflict — write lost to a concurrent change → 409.
	KindConflict
	// KindQuery — a statement failed → 500.
	KindQuery
	// KindConnection — database unreachable or pool exhausted → 500.
	KindConnection
)

// Error is a classified failure with a safe, user-facing message and an
// optional underlying cause. The cause is only surfaced to clients in
// non-production configuration.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error with the given user-facing message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound builds a 404 error with the given user-facing message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// MethodNotAllowed builds a 405 error.
func MethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
}

// Conflict builds a 409 error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Query wraps a failed statement as a 500. The message is what clients
// see; err is only surfaced outside production.
func Query(msg string, err error) *Error {
	return &Error{Kind: KindQuery, Message: msg, Err: err}
}

// Connection wraps an unreachable-database failure as a 500.
func Connection(msg string, err error) *Error {
	return &Error{Kind: KindConnection, Message: msg, Err: err}
}

// From normalises any error to an *Error. Unknown errors become KindQuery
// so no raw message leaks by accident.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Query("Internal server error", err)
}
