package codec

import "github.com/blockspacer/spotify-json/jsontext"

// fieldDescriptor binds a JSON key to an accessor and a child codec inside
// an ObjectCodec. The four accessor shapes this library supports (direct
// member, getter/setter, reader/writer closures, dummy) are all
// represented the same way here: a pair of closures capturing whatever
// state they need, since Go closures already subsume the getter/setter and
// reader/writer distinction.
type fieldDescriptor[T any] struct {
	key           string
	quotedKeyColon []byte // pre-escaped "key": cached at registration
	required      bool
	requiredIndex int // dense index in [0, numRequired), valid only if required

	decodeInto func(dec *jsontext.Decoder, target *T) error
	// encodeFrom appends "key":value, (or nothing) to enc, reading the field
	// off target. It consults the child codec's ShouldEncode itself, so the
	// object codec doesn't need a separate should-encode query.
	encodeFrom func(enc *jsontext.Encoder, quotedKeyColon []byte, target *T) error
}

// newMemberField builds a field descriptor for direct member access: a
// projector returning the address of the field inside target.
func newMemberField[T, F any](key string, project func(*T) *F, fc Codec[F]) *fieldDescriptor[T] {
	return &fieldDescriptor[T]{
		key: key,
		decodeInto: func(dec *jsontext.Decoder, target *T) error {
			v, err := fc.Decode(dec)
			if err != nil {
				return err
			}
			*project(target) = v
			return nil
		},
		encodeFrom: func(enc *jsontext.Encoder, quotedKeyColon []byte, target *T) error {
			v := *project(target)
			if !fc.ShouldEncode(v) {
				return nil
			}
			enc.AppendBytes(quotedKeyColon)
			if err := fc.Encode(enc, v); err != nil {
				return err
			}
			enc.Append(',')
			return nil
		},
	}
}

// newAccessorField builds a field descriptor from a getter/setter pair —
// the same shape also covers arbitrary reader/writer closures.
func newAccessorField[T, F any](key string, get func(T) F, set func(*T, F), fc Codec[F]) *fieldDescriptor[T] {
	return &fieldDescriptor[T]{
		key: key,
		decodeInto: func(dec *jsontext.Decoder, target *T) error {
			v, err := fc.Decode(dec)
			if err != nil {
				return err
			}
			set(target, v)
			return nil
		},
		encodeFrom: func(enc *jsontext.Encoder, quotedKeyColon []byte, target *T) error {
			v := get(*target)
			if !fc.ShouldEncode(v) {
				return nil
			}
			enc.AppendBytes(quotedKeyColon)
			if err := fc.Encode(enc, v); err != nil {
				return err
			}
			enc.Append(',')
			return nil
		},
	}
}

// newDummyField builds a field descriptor with no storage: decode parses
// and discards the value, encode emits a default-constructed sentinel
// (subject to ShouldEncode).
func newDummyField[T, F any](key string, fc Codec[F]) *fieldDescriptor[T] {
	return &fieldDescriptor[T]{
		key: key,
		decodeInto: func(dec *jsontext.Decoder, target *T) error {
			_, err := fc.Decode(dec)
			return err
		},
		encodeFrom: func(enc *jsontext.Encoder, quotedKeyColon []byte, target *T) error {
			var zero F
			if !fc.ShouldEncode(zero) {
				return nil
			}
			enc.AppendBytes(quotedKeyColon)
			if err := fc.Encode(enc, zero); err != nil {
				return err
			}
			enc.Append(',')
			return nil
		},
	}
}
