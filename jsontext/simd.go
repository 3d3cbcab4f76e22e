package jsontext

import (
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// hasSWAR reports whether the 8-byte SIMD-within-a-register fast path for
// whitespace/quote scanning may be used on this CPU. minio/simdjson-go gates
// its stage-1 structural scan on cpuid feature bits the same way
// (cpuid.CPU.Supports(...)); we reuse that idiom here for a much smaller win
// than true SIMD, but the gating pattern — and the requirement that the
// vectorized path and the portable fallback agree byte-for-byte — is the
// same one simdjson-go documents for its own fast/slow split.
var hasSWAR = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)

// swarMightMatch reports whether any of the 8 bytes in word might equal one
// of targets. It never has false negatives; a false positive just falls
// back to the byte-at-a-time loop for that word.
func swarMightMatch(word uint64, targets ...byte) bool {
	for _, t := range targets {
		pattern := uint64(0x0101010101010101) * uint64(t)
		x := word ^ pattern
		// x has a zero byte wherever word == t.
		hasZero := (x - 0x0101010101010101) & ^x & 0x8080808080808080
		if hasZero != 0 {
			return true
		}
	}
	return false
}

// zeroByteMask has the high bit of each byte lane set wherever word's
// corresponding byte equals zero, and is zero elsewhere. Each lane is tested
// on its own low 7 bits plus its high bit, so no carry or borrow crosses
// lanes and the result is exact.
func zeroByteMask(word uint64) uint64 {
	const low7 = 0x7F7F7F7F7F7F7F7F
	return ^(((word & low7) + low7) | word | low7)
}

// swarAllWhitespace reports whether every one of the 8 bytes in word is JSON
// whitespace (space, tab, CR, LF), so the whole word can be skipped at once.
// A false here just means "not all 8 are whitespace"; the caller falls back
// to the scalar loop to find the exact boundary.
func swarAllWhitespace(word uint64) bool {
	const (
		sp = uint64(' ') * 0x0101010101010101
		ht = uint64('\t') * 0x0101010101010101
		lf = uint64('\n') * 0x0101010101010101
		cr = uint64('\r') * 0x0101010101010101
	)
	matched := zeroByteMask(word^sp) | zeroByteMask(word^ht) | zeroByteMask(word^lf) | zeroByteMask(word^cr)
	return matched == 0x8080808080808080
}

// loadWord reads 8 bytes from b starting at i in little-endian order; b
// must have at least 8 bytes remaining at i.
func loadWord(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i : i+8])
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
