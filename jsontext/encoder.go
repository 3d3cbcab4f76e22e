package jsontext

import (
	"github.com/blockspacer/spotify-json/internal/bufpools"
	"github.com/blockspacer/spotify-json/internal/jsonwire"
)

// Encoder is an encode context: a growable output buffer with small-append
// primitives. It is exclusively owned by a single encode invocation.
type Encoder struct {
	buf    []byte
	pooled bool
}

// NewEncoder creates an encode context with the given initial capacity hint.
func NewEncoder(sizeHint int) *Encoder {
	return &Encoder{buf: make([]byte, 0, sizeHint)}
}

// AcquireEncoder returns a pooled Encoder; call Release when done with it to
// return its buffer to the pool instead of letting the GC collect it.
func AcquireEncoder() *Encoder {
	return &Encoder{buf: bufpools.Get(256), pooled: true}
}

// Release returns e's buffer to the pool. e must not be used afterward.
func (e *Encoder) Release() {
	if e.pooled {
		bufpools.Put(e.buf)
		e.buf, e.pooled = nil, false
	}
}

// Append appends a single byte.
func (e *Encoder) Append(c byte) {
	e.buf = append(e.buf, c)
}

// AppendBytes appends b in full.
func (e *Encoder) AppendBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// AppendString appends s in full, unquoted.
func (e *Encoder) AppendString(s string) {
	e.buf = append(e.buf, s...)
}

// AppendQuoted appends s as an escaped, double-quoted JSON string.
func (e *Encoder) AppendQuoted(s string) {
	e.buf = jsonwire.AppendQuote(e.buf, s)
}

// AppendQuotedKeyColon returns dst with the JSON-escaped, double-quoted
// encoding of key followed by ':' appended. This is the object codec's
// escaped-key cache: computed once per field at schema build time and
// emitted verbatim on every subsequent encode.
func AppendQuotedKeyColon(dst []byte, key string) []byte {
	dst = jsonwire.AppendQuote(dst, key)
	dst = append(dst, ':')
	return dst
}

// AppendOrReplace overwrites the trailing byte with new if it currently
// equals old; otherwise it appends new. This is the trailing-comma trick:
// after emitting "k:v," for each field, replacing the final ',' with '}'
// yields a correct object in a single pass.
func (e *Encoder) AppendOrReplace(old, new byte) {
	if n := len(e.buf); n > 0 && e.buf[n-1] == old {
		e.buf[n-1] = new
		return
	}
	e.buf = append(e.buf, new)
}

// Bytes returns the accumulated output. The caller must not retain it past
// the next mutating call.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len reports the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// LastByte returns the most recently appended byte, or 0x00 if empty.
func (e *Encoder) LastByte() byte {
	if n := len(e.buf); n > 0 {
		return e.buf[n-1]
	}
	return 0x00
}

// Reset clears the buffer for reuse, retaining the underlying capacity.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}
