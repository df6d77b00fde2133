package buffer

import (
	"fmt"

	"github.com/arloliu/dbuf/errs"
	"github.com/arloliu/dbuf/internal/pool"
)

// ExpandableBuffer is a Region that grows on write, moving through the
// state machine:
//
//	empty(cap=N0) -> grown(cap=k*N0) -> saturated(cap=MAX)
//
// A write whose index+length exceeds the current capacity grows the
// buffer geometrically (via internal/pool.ByteBuffer.GrowTo), preserving
// existing bytes and zero-filling the newly exposed range. Once at
// maxCapacity, a write requiring more fails with errs.ErrOutOfBounds.
// Reads never grow and fail if out of bounds. Wrap/SubRegion are not
// supported against it (see heap.go's SubRegion).
type ExpandableBuffer struct {
	buf        *pool.ByteBuffer
	initialCap int
	maxCap     int
	closed     bool
}

// NewExpandableBuffer creates an ExpandableBuffer starting in the empty
// state at initialCapacity, able to grow up to maxCapacity.
func NewExpandableBuffer(initialCapacity, maxCapacity int) (*ExpandableBuffer, error) {
	if initialCapacity < 0 || maxCapacity < initialCapacity {
		return nil, fmt.Errorf("%w: initialCapacity=%d maxCapacity=%d", errs.ErrIllegalArgument, initialCapacity, maxCapacity)
	}

	bb := pool.NewByteBuffer(initialCapacity)
	bb.SetLength(initialCapacity)

	return &ExpandableBuffer{buf: bb, initialCap: initialCapacity, maxCap: maxCapacity}, nil
}

// Capacity returns the buffer's current capacity (not its declared maximum).
func (e *ExpandableBuffer) Capacity() int { return e.buf.Len() }

// MaxCapacity returns the declared upper bound on growth.
func (e *ExpandableBuffer) MaxCapacity() int { return e.maxCap }

// BoundsCheck reports whether a read at [index, index+length) is valid
// against the current capacity. Writes use ensureCapacity instead, since
// they are permitted to grow the buffer first.
func (e *ExpandableBuffer) BoundsCheck(index, length int) error {
	return checkBounds(index, length, e.buf.Len())
}

// ReadAt copies length bytes starting at index into dst[dstOffset:]. Reads
// never grow the buffer.
func (e *ExpandableBuffer) ReadAt(index int, dst []byte, dstOffset, length int) error {
	return readAt(e.buf.Bytes(), e.buf.Len(), index, dst, dstOffset, length)
}

// WriteAt copies length bytes from src[srcOffset:] into the buffer at
// index, growing the buffer first if index+length exceeds the current
// capacity. A grow beyond maxCapacity fails with errs.ErrOutOfBounds and
// leaves the buffer at its previous capacity: a failed grow never corrupts
// or truncates existing data.
func (e *ExpandableBuffer) WriteAt(index int, src []byte, srcOffset, length int) error {
	if err := e.ensureCapacity(index, length); err != nil {
		return err
	}

	return writeAt(e.buf.Bytes(), e.buf.Len(), index, src, srcOffset, length)
}

// ensureCapacity grows the buffer so that index+length fits, using a
// geometric growth formula: new = max(old, initialCapacity);
// while new < required { new += new/2 }; new = min(new, maxCapacity).
func (e *ExpandableBuffer) ensureCapacity(index, length int) error {
	if index < 0 || length < 0 {
		return errs.ErrOutOfBounds
	}
	required := index + length
	if required <= e.buf.Len() {
		return nil
	}
	if required > e.maxCap {
		return errs.ErrOutOfBounds
	}

	newCap, ok := e.buf.GrowTo(required, e.initialCap, e.maxCap)
	if !ok {
		return errs.ErrOutOfBounds
	}
	e.buf.SetLength(newCap)

	return nil
}

// Bytes returns the backing slice directly. The slice identity changes
// across a grow; callers must not retain it across a WriteAt call that
// might grow the buffer.
func (e *ExpandableBuffer) Bytes() []byte { return e.buf.Bytes() }

// Expandable always reports true.
func (e *ExpandableBuffer) Expandable() bool { return true }

// Close releases the buffer's reference to its backing slice. It is
// idempotent.
func (e *ExpandableBuffer) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.buf = nil

	return nil
}
