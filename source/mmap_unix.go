//go:build unix

package source

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap maps the file at path into memory read-only and returns the mapped
// bytes for zero-copy decoding. The caller must call the returned closer's
// Close to unmap before the process exits.
func Mmap(path string) ([]byte, Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() == 0 {
		return nil, noopCloser{}, nil
	}
	if info.Size() > math.MaxInt {
		return nil, nil, fmt.Errorf("source: mapped file size %d exceeds max integer", info.Size())
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("source: mmap %s: %w", path, err)
	}
	return mem, mmapCloser(mem), nil
}

type mmapCloser []byte

func (m mmapCloser) Close() error {
	return unix.Munmap(m)
}
