package codec

import (
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/blockspacer/spotify-json/internal/jsonwire"
	"github.com/blockspacer/spotify-json/jsontext"
)

// Bool is the Codec[bool] for JSON booleans.
var Bool Codec[bool] = boolCodec{}

type boolCodec struct{ AlwaysEncode[bool] }

func (boolCodec) Decode(dec *jsontext.Decoder) (bool, error) { return dec.ReadBool() }
func (boolCodec) Encode(enc *jsontext.Encoder, v bool) error {
	if v {
		enc.AppendString("true")
	} else {
		enc.AppendString("false")
	}
	return nil
}

// String is the Codec[string] for JSON strings.
var String Codec[string] = stringCodec{}

type stringCodec struct{ AlwaysEncode[string] }

func (stringCodec) Decode(dec *jsontext.Decoder) (string, error) { return dec.ReadString() }
func (stringCodec) Encode(enc *jsontext.Encoder, v string) error {
	enc.AppendQuoted(v)
	return nil
}

// Int returns a Codec for any signed integer type, backed by strconv.
func Int[T constraints.Signed]() Codec[T] {
	return intCodec[T]{}
}

type intCodec[T constraints.Signed] struct{ AlwaysEncode[T] }

func (intCodec[T]) Decode(dec *jsontext.Decoder) (T, error) {
	raw, err := dec.ReadRawNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

func (intCodec[T]) Encode(enc *jsontext.Encoder, v T) error {
	enc.AppendBytes(jsonwire.AppendInt(nil, int64(v)))
	return nil
}

// Uint returns a Codec for any unsigned integer type, backed by strconv.
func Uint[T constraints.Unsigned]() Codec[T] {
	return uintCodec[T]{}
}

type uintCodec[T constraints.Unsigned] struct{ AlwaysEncode[T] }

func (uintCodec[T]) Decode(dec *jsontext.Decoder) (T, error) {
	raw, err := dec.ReadRawNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

func (uintCodec[T]) Encode(enc *jsontext.Encoder, v T) error {
	enc.AppendBytes(jsonwire.AppendUint(nil, uint64(v)))
	return nil
}

// Float returns a Codec for float32 or float64, backed by strconv and the
// same shortest-round-trip formatting the encoder uses elsewhere.
func Float[T constraints.Float]() Codec[T] {
	return floatCodec[T]{}
}

type floatCodec[T constraints.Float] struct{ AlwaysEncode[T] }

func (floatCodec[T]) Decode(dec *jsontext.Decoder) (T, error) {
	raw, err := dec.ReadRawNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

func (floatCodec[T]) Encode(enc *jsontext.Encoder, v T) error {
	bits := 64
	if _, is32 := any(v).(float32); is32 {
		bits = 32
	}
	enc.AppendBytes(jsonwire.AppendFloat(nil, float64(v), bits))
	return nil
}
