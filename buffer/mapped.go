package buffer

import (
	"fmt"
	"os"
	"syscall"

	"github.com/arloliu/dbuf/errs"
)

// MappedBuffer is a Region backed by a file memory-mapped with MAP_SHARED:
// writes through the view are written back to the file by the kernel.
type MappedBuffer struct {
	b      []byte
	closed bool
}

// OpenMappedBuffer maps the first length bytes of the file at path,
// starting at offset (which must be a multiple of the platform page size).
// The file must already be at least offset+length bytes long.
func OpenMappedBuffer(path string, offset int64, length int) (*MappedBuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", errs.ErrAllocationFailure, path, err)
	}
	defer f.Close()

	b, err := syscall.Mmap(int(f.Fd()), offset, length, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", errs.ErrAllocationFailure, path, err)
	}

	return &MappedBuffer{b: b}, nil
}

// Capacity returns the number of bytes in the mapping.
func (m *MappedBuffer) Capacity() int { return len(m.b) }

// BoundsCheck reports whether an access at [index, index+length) is valid.
func (m *MappedBuffer) BoundsCheck(index, length int) error {
	return checkBounds(index, length, len(m.b))
}

// ReadAt copies length bytes starting at index into dst[dstOffset:].
func (m *MappedBuffer) ReadAt(index int, dst []byte, dstOffset, length int) error {
	return readAt(m.b, len(m.b), index, dst, dstOffset, length)
}

// WriteAt copies length bytes from src[srcOffset:] into the mapping at
// index. The kernel writes the change back to the underlying file.
func (m *MappedBuffer) WriteAt(index int, src []byte, srcOffset, length int) error {
	return writeAt(m.b, len(m.b), index, src, srcOffset, length)
}

// Bytes returns the backing slice directly.
func (m *MappedBuffer) Bytes() []byte { return m.b }

// Expandable always reports false: a file mapping has a fixed length set
// at construction.
func (m *MappedBuffer) Expandable() bool { return false }

// Close unmaps the file. It is idempotent.
func (m *MappedBuffer) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if len(m.b) == 0 {
		return nil
	}
	b := m.b
	m.b = nil
	if err := syscall.Munmap(b); err != nil {
		return fmt.Errorf("%w: munmap: %v", errs.ErrAllocationFailure, err)
	}

	return nil
}
