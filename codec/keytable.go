package codec

import (
	"github.com/dchest/siphash"
)

// keyTable is a hash mapping from JSON key bytes to a field descriptor. It
// open-addresses into a power-of-two slot array, hashing with SipHash-2-4
// under a process-lifetime random key — the same keyed-hashing rationale
// SnellerInc/sneller applies (via the same dchest/siphash package) to its
// own symbol table, chosen so that adversarial JSON keys cannot be crafted
// to force worst-case collision chains.
//
// Schemas with few fields (the common case) skip the table entirely and
// linear-scan the field slice instead, a common micro-optimization to avoid
// hashing short keys; the table only activates once a schema crosses
// linearScanThreshold fields.
const linearScanThreshold = 8

var tableSeed0, tableSeed1 = randSeed()

type keyTable[T any] struct {
	slots []keyTableSlot[T]
	count int
}

type keyTableSlot[T any] struct {
	key  string
	desc *fieldDescriptor[T]
}

func newKeyTable[T any](hint int) *keyTable[T] {
	n := 16
	for n < hint*2 {
		n *= 2
	}
	return &keyTable[T]{slots: make([]keyTableSlot[T], n)}
}

func (t *keyTable[T]) hash(key string) uint64 {
	return siphash.Hash(tableSeed0, tableSeed1, []byte(key))
}

func (t *keyTable[T]) insert(key string, desc *fieldDescriptor[T]) {
	if (t.count+1)*2 > len(t.slots) {
		t.grow()
	}
	t.insertSlot(t.slots, key, desc)
	t.count++
}

func (t *keyTable[T]) insertSlot(slots []keyTableSlot[T], key string, desc *fieldDescriptor[T]) {
	mask := uint64(len(slots) - 1)
	i := t.hash(key) & mask
	for slots[i].desc != nil {
		i = (i + 1) & mask
	}
	slots[i] = keyTableSlot[T]{key: key, desc: desc}
}

func (t *keyTable[T]) grow() {
	next := make([]keyTableSlot[T], len(t.slots)*2)
	for _, s := range t.slots {
		if s.desc != nil {
			t.insertSlot(next, s.key, s.desc)
		}
	}
	t.slots = next
}

func (t *keyTable[T]) lookup(key string) *fieldDescriptor[T] {
	if len(t.slots) == 0 {
		return nil
	}
	mask := uint64(len(t.slots) - 1)
	i := t.hash(key) & mask
	for {
		s := &t.slots[i]
		if s.desc == nil {
			return nil
		}
		if s.key == key {
			return s.desc
		}
		i = (i + 1) & mask
	}
}
