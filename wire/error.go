// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"fmt"
	"io"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNonCanonicalVarInt is returned when a variable length integer is
	// not canonically encoded.
	ErrNonCanonicalVarInt = ErrorKind("ErrNonCanonicalVarInt")

	// ErrTruncatedData is returned when the data ends before a field could
	// be completely read.
	ErrTruncatedData = ErrorKind("ErrTruncatedData")

	// ErrInvalidOffset is returned when a parse is requested at an offset
	// that lies outside of the provided buffer.
	ErrInvalidOffset = ErrorKind("ErrInvalidOffset")

	// ErrMalformedCoinbase is returned when the parent chain coinbase
	// transaction embedded in an auxiliary proof of work can't be decoded.
	ErrMalformedCoinbase = ErrorKind("ErrMalformedCoinbase")

	// ErrBranchTooLong is returned when a merkle branch in an auxiliary
	// proof of work declares more hashes than the maximum allowed.
	ErrBranchTooLong = ErrorKind("ErrBranchTooLong")

	// ErrParentHashMismatch is returned when the parent block header hash
	// declared by an auxiliary proof of work does not match the hash of the
	// embedded parent block header in either byte order.
	ErrParentHashMismatch = ErrorKind("ErrParentHashMismatch")

	// ErrMissingAuxPow is returned when a header that signals an auxiliary
	// proof of work is encoded without one.
	ErrMissingAuxPow = ErrorKind("ErrMissingAuxPow")

	// ErrTooManyHeaders is returned when the number of block headers exceed
	// the maximum allowed.
	ErrTooManyHeaders = ErrorKind("ErrTooManyHeaders")

	// ErrHeaderContainsTxs is returned when a header's transactions
	// count is greater than zero.
	ErrHeaderContainsTxs = ErrorKind("ErrHeaderContainsTxs")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// MessageError identifies an error related to wire messages. It has
// full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the
// underlying error.
type MessageError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e MessageError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e MessageError) Unwrap() error {
	return e.Err
}

// messageError creates a MessageError given a set of arguments.
func messageError(fn string, kind ErrorKind, desc string) MessageError {
	return MessageError{Func: fn, Err: kind, Description: desc}
}

// readError converts an error encountered while reading the named field into
// a MessageError.  Errors that already are a MessageError are returned as is
// while short reads are reported as ErrTruncatedData.
func readError(fn, field string, err error) error {
	var mErr MessageError
	if errors.As(err, &mErr) {
		return err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		str := fmt.Sprintf("unable to read %s: data is truncated", field)
		return messageError(fn, ErrTruncatedData, str)
	}
	return err
}

// IsFormatError returns whether or not the provided error describes malformed
// or truncated wire data.  Such errors are always fatal to the unit being
// decoded.
func IsFormatError(err error) bool {
	var mErr MessageError
	return errors.As(err, &mErr)
}
