package mmap

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// File is a read-only memory mapping of a whole file.
type File struct {
	data   []byte
	unmap  func([]byte) error
	closed atomic.Bool
}

// Open maps the file at path read-only and passes hint to the kernel.
// Empty files yield an empty mapping without a system call.
func Open(path string, hint AccessPattern) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size < 0 || int64(int(size)) != size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return &File{}, nil
	}

	data, unmap, err := osMap(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	if err := osAdvise(data, hint); err != nil {
		_ = unmap(data)
		return nil, fmt.Errorf("madvise %s: %w", path, err)
	}
	return &File{data: data, unmap: unmap}, nil
}

// Len returns the mapped size in bytes.
func (m *File) Len() int {
	return len(m.data)
}

// Bytes returns the mapped contents. The slice must not be used after
// Close.
func (m *File) Bytes() ([]byte, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	return m.data, nil
}

// ReadAt copies mapped bytes starting at off into p.
func (m *File) ReadAt(p []byte, off int64) (int, error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the file. Only the first call has an effect.
func (m *File) Close() error {
	if m.closed.Swap(true) || m.data == nil {
		return nil
	}
	return m.unmap(m.data)
}

var _ io.ReaderAt = (*File)(nil)
