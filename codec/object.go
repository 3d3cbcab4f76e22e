package codec

import (
	"fmt"
	"strings"

	"github.com/blockspacer/spotify-json/jsontext"
)

// ObjectCodec is a schema-driven Codec[T] for JSON objects: a fixed,
// registration-order list of field descriptors, each binding a JSON key to
// an accessor and a child codec. It is the centerpiece of this package.
type ObjectCodec[T any] struct {
	factory func() T
	fields  []*fieldDescriptor[T]
	table   *keyTable[T] // built at registration once there are linearScanThreshold fields; nil below that
	byKey   map[string]*fieldDescriptor[T]

	numRequired int
}

// NewObjectCodec creates an empty schema for T. factory, if non-nil, is
// invoked to produce the starting value for each decode instead of T's zero
// value. It exists for types that need non-zero defaults before fields are
// populated.
func NewObjectCodec[T any](factory func() T) *ObjectCodec[T] {
	return &ObjectCodec[T]{factory: factory}
}

func (c *ObjectCodec[T]) register(f *fieldDescriptor[T]) {
	if c.byKey == nil {
		c.byKey = make(map[string]*fieldDescriptor[T])
	}
	if _, dup := c.byKey[f.key]; dup {
		panic(fmt.Sprintf("codec: duplicate key %q registered on object schema", f.key))
	}
	f.quotedKeyColon = jsontext.AppendQuotedKeyColon(nil, f.key)
	if f.required {
		f.requiredIndex = c.numRequired
		c.numRequired++
	}
	c.byKey[f.key] = f
	c.fields = append(c.fields, f)
	// The key table is kept up to date here, at build time, so Decode never
	// mutates the codec and stays safe for concurrent use.
	if c.table != nil {
		c.table.insert(f.key, f)
	} else if len(c.fields) >= linearScanThreshold {
		c.table = newKeyTable[T](len(c.fields))
		for _, g := range c.fields {
			c.table.insert(g.key, g)
		}
	}
}

func (c *ObjectCodec[T]) lookup(key string) *fieldDescriptor[T] {
	if len(c.fields) < linearScanThreshold {
		for _, f := range c.fields {
			if f.key == key {
				return f
			}
		}
		return nil
	}
	if c.table == nil {
		c.table = newKeyTable[T](len(c.fields))
		for _, f := range c.fields {
			c.table.insert(f.key, f)
		}
	}
	return c.table.lookup(key)
}

// resolveFieldCodec returns the single explicitly supplied child codec, or
// the default codec for F when none was given. A field registration may omit
// its child codec entirely, letting the default-codec resolver supply one.
func resolveFieldCodec[F any](fc []Codec[F]) Codec[F] {
	switch len(fc) {
	case 0:
		return DefaultCodec[F]()
	case 1:
		return fc[0]
	default:
		panic("codec: at most one child codec may be supplied per field")
	}
}

// Required registers a required field backed by a direct struct member,
// addressed through project. fc is optional; if omitted, the default codec
// for F is resolved via DefaultCodec. It returns c so registrations can be
// chained.
func Required[T, F any](c *ObjectCodec[T], key string, project func(*T) *F, fc ...Codec[F]) *ObjectCodec[T] {
	f := newMemberField(key, project, resolveFieldCodec(fc))
	f.required = true
	c.register(f)
	return c
}

// OptionalField registers an optional field backed by a direct struct
// member. Whether it is emitted on encode is delegated to fc.ShouldEncode.
// fc is optional; if omitted, the default codec for F is resolved.
func OptionalField[T, F any](c *ObjectCodec[T], key string, project func(*T) *F, fc ...Codec[F]) *ObjectCodec[T] {
	f := newMemberField(key, project, resolveFieldCodec(fc))
	c.register(f)
	return c
}

// RequiredAccessor registers a required field backed by a getter/setter (or
// arbitrary reader/writer) closure pair instead of a direct member. fc is
// optional; if omitted, the default codec for F is resolved.
func RequiredAccessor[T, F any](c *ObjectCodec[T], key string, get func(T) F, set func(*T, F), fc ...Codec[F]) *ObjectCodec[T] {
	f := newAccessorField(key, get, set, resolveFieldCodec(fc))
	f.required = true
	c.register(f)
	return c
}

// OptionalAccessor registers an optional field backed by a getter/setter
// closure pair. fc is optional; if omitted, the default codec for F is
// resolved.
func OptionalAccessor[T, F any](c *ObjectCodec[T], key string, get func(T) F, set func(*T, F), fc ...Codec[F]) *ObjectCodec[T] {
	f := newAccessorField(key, get, set, resolveFieldCodec(fc))
	c.register(f)
	return c
}

// DummyRequired registers a key that must be present on decode (and is
// parsed and discarded) but is backed by no storage in T. On encode it
// emits the zero value of F, subject to fc.ShouldEncode. fc is optional; if
// omitted, the default codec for F is resolved.
func DummyRequired[T, F any](c *ObjectCodec[T], key string, fc ...Codec[F]) *ObjectCodec[T] {
	f := newDummyField[T](key, resolveFieldCodec(fc))
	f.required = true
	c.register(f)
	return c
}

// DummyOptional registers a key with no backing storage that is optional on
// decode. fc is optional; if omitted, the default codec for F is resolved.
func DummyOptional[T, F any](c *ObjectCodec[T], key string, fc ...Codec[F]) *ObjectCodec[T] {
	f := newDummyField[T](key, resolveFieldCodec(fc))
	c.register(f)
	return c
}

// requiredMask computes the full bitset of required-field bits and enforces
// the 64-required-fields-per-schema ceiling, panicking above it. Decode
// calls it at the start of every decode.
func (c *ObjectCodec[T]) requiredMask() uint64 {
	if c.numRequired > 64 {
		panic(fmt.Sprintf("codec: object schema has %d required fields, at most 64 are supported", c.numRequired))
	}
	if c.numRequired == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << c.numRequired) - 1
}

// Decode implements Codec[T]. It parses a JSON object, dispatching each
// member through the matching field descriptor (unknown keys are skipped
// with SkipValue, never an error), tracks which required fields have been
// seen in a bitset, and fails with "Missing required field(s)" if any
// remain unset once the closing brace is consumed.
func (c *ObjectCodec[T]) Decode(dec *jsontext.Decoder) (T, error) {
	want := c.requiredMask()
	var seen uint64

	var out T
	if c.factory != nil {
		out = c.factory()
	}

	err := dec.AdvancePastCommaSeparated('{', '}', func() error {
		key, err := dec.ReadString()
		if err != nil {
			return err
		}
		dec.SkipWhitespace()
		if err := dec.AdvancePast(':'); err != nil {
			return err
		}
		dec.SkipWhitespace()

		f := c.lookup(key)
		if f == nil {
			return dec.SkipValue()
		}
		if err := f.decodeInto(dec, &out); err != nil {
			return err
		}
		if f.required {
			seen |= uint64(1) << f.requiredIndex
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	if seen != want {
		missing := c.missingKeys(seen)
		var zero T
		return zero, &jsontext.SyntaxError{
			Offset:  dec.Offset(0),
			Message: fmt.Sprintf("Missing required field(s): %s", strings.Join(missing, ", ")),
		}
	}
	return out, nil
}

func (c *ObjectCodec[T]) missingKeys(seen uint64) []string {
	var missing []string
	for _, f := range c.fields {
		if f.required && seen&(uint64(1)<<f.requiredIndex) == 0 {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// Encode implements Codec[T]. Fields are emitted in registration order;
// each field decides for itself (via ShouldEncode) whether to appear at
// all. The trailing comma left after the last emitted field is turned into
// the closing brace in place, per the encoder's AppendOrReplace trick, so
// an all-absent object still closes correctly as "{}".
func (c *ObjectCodec[T]) Encode(enc *jsontext.Encoder, v T) error {
	enc.Append('{')
	for _, f := range c.fields {
		if err := f.encodeFrom(enc, f.quotedKeyColon, &v); err != nil {
			return err
		}
	}
	enc.AppendOrReplace(',', '}')
	return nil
}

// ShouldEncode reports true unconditionally: an object codec never
// suppresses its own key when nested as a field of another object.
func (c *ObjectCodec[T]) ShouldEncode(T) bool { return true }
