package buffer

import (
	"fmt"
	"syscall"

	"github.com/arloliu/dbuf/errs"
)

// OffHeapBuffer is a Region backed by an anonymous memory-mapped
// allocation, outside the Go heap's GC-managed memory. Allocating this way
// avoids GC scan overhead for large buffers and lets the kernel reclaim the
// pages immediately on Close rather than waiting on a collection cycle.
type OffHeapBuffer struct {
	b      []byte
	closed bool
}

// NewOffHeapBuffer allocates capacity bytes of anonymous off-heap memory.
// The allocation is zero-filled by the kernel. Allocation failure wraps
// errs.ErrAllocationFailure.
func NewOffHeapBuffer(capacity int) (*OffHeapBuffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", errs.ErrIllegalArgument, capacity)
	}
	if capacity == 0 {
		return &OffHeapBuffer{b: []byte{}}, nil
	}

	b, err := syscall.Mmap(-1, 0, capacity, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_ANON|syscall.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap anonymous region of %d bytes: %v", errs.ErrAllocationFailure, capacity, err)
	}

	return &OffHeapBuffer{b: b}, nil
}

// Capacity returns the number of bytes in the allocation.
func (o *OffHeapBuffer) Capacity() int { return len(o.b) }

// BoundsCheck reports whether an access at [index, index+length) is valid.
func (o *OffHeapBuffer) BoundsCheck(index, length int) error {
	return checkBounds(index, length, len(o.b))
}

// ReadAt copies length bytes starting at index into dst[dstOffset:].
func (o *OffHeapBuffer) ReadAt(index int, dst []byte, dstOffset, length int) error {
	return readAt(o.b, len(o.b), index, dst, dstOffset, length)
}

// WriteAt copies length bytes from src[srcOffset:] into the allocation at index.
func (o *OffHeapBuffer) WriteAt(index int, src []byte, srcOffset, length int) error {
	return writeAt(o.b, len(o.b), index, src, srcOffset, length)
}

// Bytes returns the backing slice directly.
func (o *OffHeapBuffer) Bytes() []byte { return o.b }

// Expandable always reports false: an off-heap allocation has a fixed
// capacity set at construction.
func (o *OffHeapBuffer) Expandable() bool { return false }

// Close unmaps the allocation. It is idempotent: calling it again after the
// first successful call is a no-op, so defer Close alongside an early
// explicit Close never double-unmaps.
func (o *OffHeapBuffer) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	if len(o.b) == 0 {
		return nil
	}
	b := o.b
	o.b = nil
	if err := syscall.Munmap(b); err != nil {
		return fmt.Errorf("%w: munmap: %v", errs.ErrAllocationFailure, err)
	}

	return nil
}
