package codec

import "github.com/blockspacer/spotify-json/jsontext"

// optionalCodec wraps a Codec[F] into a Codec for an explicit-presence
// wrapper type: decode accepts JSON null as well as F's own encoding, and
// ShouldEncode suppresses the key entirely for an empty optional rather
// than writing a JSON null.
//
// isSet/get/makeEmpty/makeValue let this wrap any optional-like type (a
// pointer, a generic Option[F], or a bespoke nullable wrapper) without this
// package depending on any one of their concrete shapes.
type optionalCodec[O, F any] struct {
	inner     Codec[F]
	isSet     func(O) bool
	get       func(O) F
	makeEmpty func() O
	makeValue func(F) O
}

// NewOptional builds a Codec[O] for an optional-like wrapper type O over an
// underlying value type F.
func NewOptional[O, F any](inner Codec[F], isSet func(O) bool, get func(O) F, makeEmpty func() O, makeValue func(F) O) Codec[O] {
	return optionalCodec[O, F]{inner: inner, isSet: isSet, get: get, makeEmpty: makeEmpty, makeValue: makeValue}
}

func (c optionalCodec[O, F]) Decode(dec *jsontext.Decoder) (O, error) {
	if dec.PeekIsNull() {
		if err := dec.AdvancePastNull(); err != nil {
			var zero O
			return zero, err
		}
		return c.makeEmpty(), nil
	}
	v, err := c.inner.Decode(dec)
	if err != nil {
		var zero O
		return zero, err
	}
	return c.makeValue(v), nil
}

func (c optionalCodec[O, F]) Encode(enc *jsontext.Encoder, v O) error {
	if !c.isSet(v) {
		return ErrUninitializedOptional
	}
	return c.inner.Encode(enc, c.get(v))
}

// ShouldEncode suppresses the field entirely when the optional is empty,
// rather than emitting "key":null. The check is transitive: an optional
// wrapping another should-encode-aware codec (an optional of an optional,
// say) is only encodable when both the wrapper is set and the inner value
// itself wants to be encoded.
func (c optionalCodec[O, F]) ShouldEncode(v O) bool {
	return c.isSet(v) && c.inner.ShouldEncode(c.get(v))
}
