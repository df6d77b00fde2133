// Package pool provides a pooled, growable byte buffer used as the backing
// store for expandable buffer.Region implementations and for scratch space
// in the snapshot package.
package pool

import (
	"io"
	"sync"
)

// Default and max-threshold sizes for the general-purpose scratch pool.
const (
	DefaultBufferSize  = 1024 * 16  // 16KiB
	MaxBufferThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable []byte wrapper with two growth strategies:
// Grow (amortized, unbounded) for scratch/staging use, and GrowTo (bounded,
// geometric) for the expandable region state machine in buffer.ExpandableBuffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n.
// Panics if n is negative or greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without
// reallocating, using an amortized strategy unbounded by any maximum. This is
// the strategy used by scratch/staging buffers that are not subject to a
// declared capacity ceiling.
//
//   - For small buffers (<4x DefaultBufferSize), grow by DefaultBufferSize.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultBufferSize
	if cap(bb.B) > 4*DefaultBufferSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// GrowTo grows the buffer's capacity to at least required bytes, clamped to
// maxCapacity, using the geometric 1.5x strategy:
//
//	new = max(cap, initialCapacity)
//	while new < required { new += new/2 }
//	new = min(new, maxCapacity)
//
// It reports the resulting capacity and whether it satisfies required; the
// caller (buffer.ExpandableBuffer) treats required > maxCapacity as an
// out-of-bounds write.
func (bb *ByteBuffer) GrowTo(required, initialCapacity, maxCapacity int) (newCapacity int, ok bool) {
	cur := cap(bb.B)
	if cur >= required {
		return cur, true
	}

	next := cur
	if next < initialCapacity {
		next = initialCapacity
	}
	for next < required {
		grown := next + next/2
		if grown <= next {
			grown = required
		}
		next = grown
	}
	if next > maxCapacity {
		next = maxCapacity
	}
	if next < required {
		return cur, false
	}

	newBuf := make([]byte, len(bb.B), next)
	copy(newBuf, bb.B)
	bb.B = newBuf

	return next, true
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. The pool can be
// configured with a maximum size threshold to avoid retaining overly large
// buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)

// GetScratchBuffer retrieves a ByteBuffer from the default scratch pool.
// Used by the snapshot package for staging compressed/decompressed payloads.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a ByteBuffer to the default scratch pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
