package core

import (
	"fmt"
	"net/http"
)

// Kind enumerates the closed set of failure categories the payment
// pipeline can produce. Every error leaving the pipeline carries exactly
// one of these.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindDatabase
	KindEnvironment
	KindGateway
)

// Error is the pipeline's error type. Lower-layer failures (storage
// driver, HTTP transport) are mapped into it explicitly at the adapter
// boundary; nothing outside this set reaches the transport layer.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its transport status code
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message shown to the caller. Database
// failures get a generic message so driver and schema details never leak
// into responses; the full error is logged server-side instead.
func (e *Error) PublicMessage() string {
	if e.Kind == KindDatabase {
		return "Database operation failed."
	}
	return e.Message
}

// NewBadRequest rejects invalid caller input
func NewBadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NewEnvironmentError reports missing or broken operator configuration
func NewEnvironmentError(message string) *Error {
	return &Error{Kind: KindEnvironment, Message: message}
}

// NewInternalError wraps an infrastructure failure
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// NewDatabaseError converts a storage driver failure into the taxonomy
func NewDatabaseError(err error) *Error {
	return &Error{Kind: KindDatabase, Message: "database operation failed", Err: err}
}

// NewGatewayError converts an upstream transport failure into the
// taxonomy. A gateway decline is not a gateway error; declines are a
// normal outcome.
func NewGatewayError(err error) *Error {
	return &Error{Kind: KindGateway, Message: fmt.Sprintf("External gateway call failed: %v", err)}
}
