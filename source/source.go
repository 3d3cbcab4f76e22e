// Package source supplies the byte sources a Decoder reads from: an
// mmap'd file for zero-copy decoding of large inputs, and a decompressing
// reader for gzip- or zstd-compressed JSON.
package source

// Closer releases resources acquired by a source (an mmap region, an
// underlying file). It is separate from io.Closer only so Mmap's no-op
// fallback doesn't need to wrap an *os.File it never opened persistently.
type Closer interface {
	Close() error
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }
