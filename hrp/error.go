// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hrp

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific HRP validation error.
const (
	// ErrEmpty indicates an HRP with no characters.
	ErrEmpty = ErrorKind("ErrEmpty")

	// ErrTooLong indicates an HRP longer than MaxLength.
	ErrTooLong = ErrorKind("ErrTooLong")

	// ErrNonASCII indicates an HRP containing a byte outside the ASCII
	// range.
	ErrNonASCII = ErrorKind("ErrNonASCII")

	// ErrInvalidASCIIByte indicates an HRP containing an ASCII control
	// character, a space or DEL.
	ErrInvalidASCIIByte = ErrorKind("ErrInvalidASCIIByte")

	// ErrMixedCase indicates an HRP with both upper and lower case
	// letters.
	ErrMixedCase = ErrorKind("ErrMixedCase")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an HRP validation error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}
