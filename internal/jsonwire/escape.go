// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire holds the low-level byte-oriented helpers shared by the
// scanner and the scalar codecs: string escaping and number formatting.
package jsonwire

import "unicode/utf8"

// asciiEscape reports, for each ASCII byte, whether it must be escaped inside
// a JSON string and if so which short form to use. Only the escapes RFC 8259
// requires are ever emitted; there is no HTML/JS escaping knob since this
// library only produces compact, machine-to-machine output.
var asciiEscape = [utf8.RuneSelf]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

func init() {
	for i := 0; i < ' '; i++ {
		if asciiEscape[i] == 0 {
			asciiEscape[i] = 1 // marks "escape with \u00XX", no short form
		}
	}
}

// AppendQuote appends s to dst as a double-quoted JSON string, escaping the
// minimal set of bytes RFC 8259 requires. Non-ASCII bytes are copied through
// unchanged: this library preserves input UTF-8 literally rather than
// re-validating it.
func AppendQuote(dst []byte, s string) []byte {
	dst = append(dst, '"')
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			continue
		}
		e := asciiEscape[c]
		if e == 0 {
			continue
		}
		dst = append(dst, s[last:i]...)
		if e == 1 {
			dst = appendEscapedUTF16(dst, uint16(c))
		} else {
			dst = append(dst, '\\', e)
		}
		last = i + 1
	}
	dst = append(dst, s[last:]...)
	dst = append(dst, '"')
	return dst
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}
