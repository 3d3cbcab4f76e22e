// Package spotifyjson provides Marshal and Unmarshal convenience wrappers
// over the codec and jsontext packages for callers who don't need to
// manage a Decoder/Encoder or a custom Codec themselves.
package spotifyjson

import (
	"github.com/blockspacer/spotify-json/codec"
	"github.com/blockspacer/spotify-json/jsontext"
)

// Marshal encodes v to JSON using the default codec registered for T.
func Marshal[T any](v T) ([]byte, error) {
	return MarshalWith(v, codec.DefaultCodec[T]())
}

// MarshalWith encodes v to JSON using an explicit codec, for types that
// don't have (or shouldn't use) a process-wide default.
func MarshalWith[T any](v T, c codec.Codec[T]) ([]byte, error) {
	enc := jsontext.AcquireEncoder()
	defer enc.Release()
	if err := c.Encode(enc, v); err != nil {
		return nil, err
	}
	out := make([]byte, enc.Len())
	copy(out, enc.Bytes())
	return out, nil
}

// Unmarshal decodes buf as JSON using the default codec registered for T.
func Unmarshal[T any](buf []byte) (T, error) {
	return UnmarshalWith(buf, codec.DefaultCodec[T]())
}

// UnmarshalWith decodes buf as JSON using an explicit codec. Any non-whitespace
// left over after the root value is a syntax error: a full decode consumes the
// whole input, not just a valid prefix of it.
func UnmarshalWith[T any](buf []byte, c codec.Codec[T]) (T, error) {
	dec := jsontext.NewDecoder(buf)
	v, err := c.Decode(dec)
	if err != nil {
		var zero T
		return zero, err
	}
	dec.SkipWhitespace()
	if !dec.AtEnd() {
		var zero T
		return zero, &jsontext.SyntaxError{
			Offset:  dec.Offset(0),
			Message: "Unexpected trailing input after top-level value",
		}
	}
	return v, nil
}
