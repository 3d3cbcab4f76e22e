// Package codec implements the schema-driven object codec — the
// centerpiece of this library — plus the scalar codecs it delegates to and
// the default-codec resolver that picks one from a static Go type.
package codec

import (
	"errors"

	"github.com/blockspacer/spotify-json/jsontext"
)

// Codec is the contract every codec for a value of type T satisfies.
//
// Decode advances dec past one JSON value and returns the decoded value; on
// malformed input it returns an error carrying an offset and message (see
// jsontext.SyntaxError). Encode appends the JSON encoding of v to enc.
// ShouldEncode reports whether an optional field holding v should be
// emitted at all; it defaults to true for every codec except the
// optional-like wrappers (Optional, Pointer) that can suppress their own
// key in the containing object.
type Codec[T any] interface {
	Decode(dec *jsontext.Decoder) (T, error)
	Encode(enc *jsontext.Encoder, v T) error
	ShouldEncode(v T) bool
}

// AlwaysEncode is embedded by codecs whose values are always emitted, which
// is the common case; it satisfies the ShouldEncode method of Codec.
type AlwaysEncode[T any] struct{}

func (AlwaysEncode[T]) ShouldEncode(T) bool { return true }

// ErrUninitializedOptional is returned by Encode on an optional-like codec
// (Optional, Pointer) asked to serialize an empty value it requires to be
// populated.
var ErrUninitializedOptional = errors.New("Cannot encode uninitialized optional")
