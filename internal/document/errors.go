// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"errors"
	"fmt"
)

var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrOutputWrite     = errors.New("cannot write output")
)

// Error records which path an operation failed on. Kind is one of the
// sentinel errors above and is what errors.Is matches against.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", e.Kind.Error(), e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFound wraps err as an ErrInputNotFound failure for path.
func NotFound(path string, err error) error {
	return &Error{Kind: ErrInputNotFound, Path: path, Err: err}
}

// Invalid wraps err as an ErrInvalidDocument failure for path.
func Invalid(path string, err error) error {
	return &Error{Kind: ErrInvalidDocument, Path: path, Err: err}
}

// WriteFailed wraps err as an ErrOutputWrite failure for path.
func WriteFailed(path string, err error) error {
	return &Error{Kind: ErrOutputWrite, Path: path, Err: err}
}
