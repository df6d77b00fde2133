package buffer

import "github.com/arloliu/dbuf/errs"

// Region is a bounds-checked, contiguous span of bytes addressable by index.
// It may own its storage (HeapBuffer, OffHeapBuffer, MappedBuffer) or borrow
// it (Wrap, SubRegion). View layers typed accessors on top of any Region.
type Region interface {
	// Capacity returns the region's current length in bytes.
	Capacity() int

	// BoundsCheck fails with errs.ErrOutOfBounds unless
	// 0 <= index, 0 <= length, and index+length <= Capacity().
	// Expandable regions override this for writes; reads always use it as-is.
	BoundsCheck(index, length int) error

	// ReadAt copies length bytes starting at index into dst[dstOffset:].
	ReadAt(index int, dst []byte, dstOffset, length int) error

	// WriteAt copies length bytes from src[srcOffset:] into the region at
	// index. On an Expandable region this may grow the region first.
	WriteAt(index int, src []byte, srcOffset, length int) error

	// Bytes returns the region's backing slice directly, or nil if the
	// region is not addressable as a single contiguous Go slice (there is
	// none for every Region implementation, e.g. a future network-backed
	// variant). Callers must not retain it past the region's lifetime.
	Bytes() []byte

	// Expandable reports whether writes past Capacity() grow the region
	// rather than failing.
	Expandable() bool

	// Close releases any resources the region owns. It is idempotent:
	// calling it more than once is a no-op after the first call.
	Close() error
}

// checkBounds is the free function every Region implementation's
// BoundsCheck delegates to, so every variant enforces the same bounds
// rule without re-deriving it.
func checkBounds(index, length, capacity int) error {
	if index < 0 {
		return errs.ErrOutOfBounds
	}
	if length < 0 {
		return errs.ErrOutOfBounds
	}
	if index+length > capacity {
		return errs.ErrOutOfBounds
	}

	return nil
}

// readAt is the free function shared by Region implementations whose
// backing store is a plain Go byte slice.
func readAt(b []byte, capacity, index int, dst []byte, dstOffset, length int) error {
	if err := checkBounds(index, length, capacity); err != nil {
		return err
	}
	if dstOffset < 0 || dstOffset+length > len(dst) {
		return errs.ErrOutOfBounds
	}
	copy(dst[dstOffset:dstOffset+length], b[index:index+length])

	return nil
}

// writeAt is the free function shared by Region implementations whose
// backing store is a plain Go byte slice and which do not grow on write.
func writeAt(b []byte, capacity, index int, src []byte, srcOffset, length int) error {
	if err := checkBounds(index, length, capacity); err != nil {
		return err
	}
	if srcOffset < 0 || srcOffset+length > len(src) {
		return errs.ErrOutOfBounds
	}
	copy(b[index:index+length], src[srcOffset:srcOffset+length])

	return nil
}
