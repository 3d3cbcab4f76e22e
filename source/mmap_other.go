//go:build !unix

package source

import "os"

// Mmap falls back to a plain read on platforms without a POSIX mmap(2); the
// returned Closer is a no-op since there is nothing to unmap.
func Mmap(path string) ([]byte, Closer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return b, noopCloser{}, nil
}
