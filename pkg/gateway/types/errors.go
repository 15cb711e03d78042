package types

import (
	"errors"
	"fmt"
)

// Kind represents the category of error
type Kind int

const (
	KindOther Kind = iota
	// KindConfig is fatal and startup-only: unsupported chain type, missing
	// required credential path or program id.
	KindConfig
	// KindConnection covers an unreachable ledger endpoint. Retryable within
	// bounded attempts, terminal after exhaustion.
	KindConnection
	// KindEncoding is a per-request failure to serialize a record.
	KindEncoding
	// KindCollision marks a generated identity colliding with a known key.
	KindCollision
	// KindSubmission is a ledger rejection of a submitted transaction. Never
	// retried automatically.
	KindSubmission
	// KindConfirmationTimeout means the network accepted the transaction but
	// did not confirm it within the commitment window.
	KindConfirmationTimeout
	KindNotFound
	KindInvalidInput
	KindInternal
)

// Error represents a gateway error with a kind
type Error struct {
	kind Kind
	msg  string
	err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
	}
	return e.msg
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.err
}

// NewError creates a new error with the given kind and message
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func NewErrorf(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(msg, args...)}
}

// WrapError wraps an existing error with a kind and message
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf reports the kind of err, or KindOther when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindOther
}
