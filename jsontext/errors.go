// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontext implements the low-level scanner and the decode/encode
// contexts that every codec in package codec is built on: a cursor over an
// immutable input byte range, a growable output buffer, and the primitives
// (peek, next, skip, skip-whitespace, advance-past, advance-past-string,
// advance-past-comma-separated, skip-value) that define this library's
// notion of position, lookahead, and failure.
package jsontext

import "errors"

// ErrSyntax is a sentinel that every SyntaxError matches via errors.Is, so
// callers can test for "any syntax error" without a type switch.
var ErrSyntax = errors.New("jsontext: syntax error")

// Distinguished messages. The exact wording is not part of the wire
// contract, but golden-output tests match on it.
const (
	MsgUnexpectedEOF      = "Unexpected end of input"
	MsgUnexpectedInput    = "Unexpected input"
	MsgUnterminatedString = "Unterminated string"
	MsgInvalidEscape      = "Invalid escape character"
	MsgBadUnicodeEscape   = `\u must be followed by 4 hex digits`
)

// SyntaxError is the single error kind this package produces: a
// human-readable message paired with the byte offset into the input at
// which the error was detected.
type SyntaxError struct {
	Offset  int64
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func newError(offset int64, msg string) error {
	return &SyntaxError{Offset: offset, Message: msg}
}
