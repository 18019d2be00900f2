// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bitpack

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific bit conversion error.
const (
	// ErrIncompleteGroup indicates that five or more bits were left over
	// after unpacking, which a valid encoder never produces.
	ErrIncompleteGroup = ErrorKind("ErrIncompleteGroup")

	// ErrNonZeroPadding indicates that the bits left over after unpacking
	// are not all zero.
	ErrNonZeroPadding = ErrorKind("ErrNonZeroPadding")

	// ErrInvalidBitGroup indicates a group width outside [1, 8].
	ErrInvalidBitGroup = ErrorKind("ErrInvalidBitGroup")

	// ErrInvalidDataRange indicates an input value wider than its group.
	ErrInvalidDataRange = ErrorKind("ErrInvalidDataRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a bit conversion error.  It has full support for
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
