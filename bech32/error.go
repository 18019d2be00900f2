// Copyright (c) 2017-2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific parsing or encoding error.
const (
	// ErrMissingSeparator indicates a string without a '1' separator.
	ErrMissingSeparator = ErrorKind("ErrMissingSeparator")

	// ErrAmbiguousSeparator indicates a string whose last '1' is its first
	// character, which would leave the human-readable part empty.
	ErrAmbiguousSeparator = ErrorKind("ErrAmbiguousSeparator")

	// ErrMixedCase indicates a string with both upper and lower case
	// letters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrInvalidHrp indicates a human-readable part rejected by the hrp
	// package.  The hrp error is reachable with errors.Is and errors.As.
	ErrInvalidHrp = ErrorKind("ErrInvalidHrp")

	// ErrInvalidChar indicates a data character outside the bech32
	// alphabet.
	ErrInvalidChar = ErrorKind("ErrInvalidChar")

	// ErrInvalidChecksumLength indicates a data part too short to hold a
	// checksum.
	ErrInvalidChecksumLength = ErrorKind("ErrInvalidChecksumLength")

	// ErrInvalidChecksum indicates a residue that does not match the
	// target of the expected checksum algorithm.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrTooLong indicates a string longer than MaxLength characters.
	ErrTooLong = ErrorKind("ErrTooLong")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a bech32 parsing or encoding error.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error.  When the error was
// caused by a lower level package, Inner holds that package's error.
type Error struct {
	Err         error
	Description string
	Inner       error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the error kind and, when present, the inner error.
func (e Error) Unwrap() []error {
	if e.Inner == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Inner}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error that carries the error of a lower level package.
func wrapError(kind ErrorKind, inner error, format string,
	args ...interface{}) Error {

	return Error{
		Err:         kind,
		Description: fmt.Sprintf(format, args...),
		Inner:       inner,
	}
}
