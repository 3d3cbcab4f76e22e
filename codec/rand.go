package codec

import (
	"crypto/rand"
	"encoding/binary"
)

// randSeed returns a pair of process-lifetime random 64-bit words used to
// key the SipHash key table, so that JSON keys chosen to collide under one
// process's table won't collide under another's.
func randSeed() (uint64, uint64) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the OS entropy source is broken; fall
		// back to fixed words rather than panicking out of an init path.
		return 0x9ae16a3b2f90404f, 0xc949d7c7509e6557
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
}
