package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Format names the compression format Compressed decodes.
type Format int

const (
	Gzip Format = iota
	Zstd
)

// Compressed decompresses r fully into memory according to format and
// returns the decompressed bytes, for decoding JSON that arrives
// gzip- or zstd-compressed. It is grounded on the same klauspost/compress
// package the rest of this corpus uses for its own compressed block
// formats, substituting gzip/zstd (the two formats JSON payloads actually
// travel in) for sneller's zstd/s2 pairing.
func Compressed(r io.Reader, format Format) ([]byte, error) {
	switch format {
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("source: gzip: %w", err)
		}
		defer zr.Close()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, zr); err != nil {
			return nil, fmt.Errorf("source: gzip: %w", err)
		}
		return buf.Bytes(), nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("source: zstd: %w", err)
		}
		defer zr.Close()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, zr); err != nil {
			return nil, fmt.Errorf("source: zstd: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("source: unknown compression format %d", format)
	}
}
