package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the orchestrator can report them
// consistently. It replaces the catch-all handling of file composition with
// an explicit distinction between the three failure families.
type ErrorKind int

const (
	// KindIO is any read or write failure that is not a missing resource.
	KindIO ErrorKind = iota

	// KindNotFound indicates that an input file (data or template) does
	// not exist.
	KindNotFound

	// KindMalformed indicates that a file exists but its contents cannot
	// be used: invalid syntax or the wrong top-level shape.
	KindMalformed
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	default:
		return "io"
	}
}

// Error is a custom error type that carries an ErrorKind.
type Error struct {
	// Kind is the failure family.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given kind and message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates a new Error that wraps an existing error.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the ErrorKind carried by err, or KindIO when err is not
// (and does not wrap) an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}

// ErrNotACollection is returned when the top-level data is not a sequence
// of records.
var ErrNotACollection = NewError(KindMalformed, "data is not a list")
