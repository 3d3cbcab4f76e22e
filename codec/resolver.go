package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// registry maps a reflect.Type to an untyped holder of its Codec[T], since
// Go generics offer no way to switch on a type parameter directly. This is
// solved the way the standard encoding/json family solves the analogous
// problem: a type-keyed map populated at init() time and consulted through
// a type assertion.
var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]any)
)

// RegisterDefaultCodec installs c as the default Codec[T] for T, replacing
// any codec previously registered for the same type. Packages that define
// scalar or composite codecs call this from an init() function.
func RegisterDefaultCodec[T any](c Codec[T]) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeOf((*T)(nil)).Elem()] = c
}

// RegisterObjectCodec installs oc as the default codec for T. It is
// RegisterDefaultCodec specialized to the common case of wiring a
// schema-driven ObjectCodec into the resolver, so a record type gets a
// default codec the moment its schema finishes registering its fields.
func RegisterObjectCodec[T any](oc *ObjectCodec[T]) {
	RegisterDefaultCodec[T](oc)
}

// DefaultCodec looks up the registered Codec[T], panicking if none has been
// registered. It is the entry point Marshal/Unmarshal use when the caller
// hasn't supplied an explicit codec.
func DefaultCodec[T any]() Codec[T] {
	registryMu.RLock()
	v, ok := registry[reflect.TypeOf((*T)(nil)).Elem()]
	registryMu.RUnlock()
	if !ok {
		var zero T
		panic(fmt.Sprintf("codec: no default codec registered for %T", zero))
	}
	return v.(Codec[T])
}

func init() {
	RegisterDefaultCodec[bool](Bool)
	RegisterDefaultCodec[string](String)
	RegisterDefaultCodec[int](Int[int]())
	RegisterDefaultCodec[int8](Int[int8]())
	RegisterDefaultCodec[int16](Int[int16]())
	RegisterDefaultCodec[int32](Int[int32]())
	RegisterDefaultCodec[int64](Int[int64]())
	RegisterDefaultCodec[uint](Uint[uint]())
	RegisterDefaultCodec[uint8](Uint[uint8]())
	RegisterDefaultCodec[uint16](Uint[uint16]())
	RegisterDefaultCodec[uint32](Uint[uint32]())
	RegisterDefaultCodec[uint64](Uint[uint64]())
	RegisterDefaultCodec[float32](Float[float32]())
	RegisterDefaultCodec[float64](Float[float64]())
	RegisterDefaultCodec[uuid.UUID](UUID)
}
