package buffer

import "github.com/arloliu/dbuf/errs"

// HeapBuffer is a Region backed by a plain Go byte slice. It is created by
// allocating a new array (NewHeapBuffer), by wrapping an existing one
// (Wrap), or by subrange-wrapping another Region (SubRegion).
type HeapBuffer struct {
	b      []byte
	closed bool
}

// NewHeapBuffer allocates a new zero-filled HeapBuffer of the given
// capacity. Lifecycle case (a): allocating a new array of capacity N.
func NewHeapBuffer(capacity int) *HeapBuffer {
	return &HeapBuffer{b: make([]byte, capacity)}
}

// Wrap returns a HeapBuffer borrowing b directly: no copy is made, and
// writes through the returned region are visible in b. Lifecycle case (c):
// wrapping an existing array.
func Wrap(b []byte) *HeapBuffer {
	return &HeapBuffer{b: b}
}

// SubRegion returns a HeapBuffer borrowing the [offset, offset+length) range
// of r's backing bytes. It fails with errs.ErrNotSupported if r is
// expandable: an expandable region's backing array can be reallocated by a
// later grow, which would silently invalidate any sub-region wrapping it.
func SubRegion(r Region, offset, length int) (*HeapBuffer, error) {
	if r.Expandable() {
		return nil, errs.ErrNotSupported
	}
	if err := checkBounds(offset, length, r.Capacity()); err != nil {
		return nil, err
	}
	b := r.Bytes()
	if b == nil {
		return nil, errs.ErrNotSupported
	}

	return Wrap(b[offset : offset+length]), nil
}

// Capacity returns the number of bytes in the buffer.
func (h *HeapBuffer) Capacity() int { return len(h.b) }

// BoundsCheck reports whether an access at [index, index+length) is valid.
func (h *HeapBuffer) BoundsCheck(index, length int) error {
	return checkBounds(index, length, len(h.b))
}

// ReadAt copies length bytes starting at index into dst[dstOffset:].
func (h *HeapBuffer) ReadAt(index int, dst []byte, dstOffset, length int) error {
	return readAt(h.b, len(h.b), index, dst, dstOffset, length)
}

// WriteAt copies length bytes from src[srcOffset:] into the buffer at index.
func (h *HeapBuffer) WriteAt(index int, src []byte, srcOffset, length int) error {
	return writeAt(h.b, len(h.b), index, src, srcOffset, length)
}

// Bytes returns the backing slice directly. Callers must not retain it past
// the buffer's lifetime and must not mutate it concurrently with accessors.
func (h *HeapBuffer) Bytes() []byte { return h.b }

// Expandable always reports false: a HeapBuffer has a fixed capacity set at
// construction.
func (h *HeapBuffer) Expandable() bool { return false }

// Close releases the buffer's reference to its backing slice. It is
// idempotent. HeapBuffer owns no external resource, so this only guards
// against use-after-close; it never returns an error.
func (h *HeapBuffer) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.b = nil

	return nil
}
