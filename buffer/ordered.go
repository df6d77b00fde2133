package buffer

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/arloliu/dbuf/errs"
)

// PutUint64Ordered performs an ordered store of val to the 8-byte-aligned
// region offset index: no prior store from this writer may be reordered
// after it, so a concurrent GetUint64Volatile reader that observes val
// also observes every write that preceded it. Mirrors Agrona's
// AtomicBuffer.putLongOrdered, which operates on a buffer index rather
// than an independently owned field — the usual shape of a heartbeat
// field shared with an external collaborator over mapped memory.
//
// index must be a multiple of 8 and the region must expose its backing
// bytes directly (region.Bytes() != nil); HeapBuffer, OffHeapBuffer, and
// MappedBuffer all qualify.
func (v *View) PutUint64Ordered(index int, val uint64) error {
	addr, err := v.atomicUint64At(index)
	if err != nil {
		return err
	}
	addr.Store(val)

	return nil
}

// GetUint64Volatile performs a volatile load from the 8-byte-aligned
// region offset index: no subsequent load issued by this reader may be
// reordered before it.
func (v *View) GetUint64Volatile(index int) (uint64, error) {
	addr, err := v.atomicUint64At(index)
	if err != nil {
		return 0, err
	}

	return addr.Load(), nil
}

func (v *View) atomicUint64At(index int) (*atomic.Uint64, error) {
	if err := v.region.BoundsCheck(index, 8); err != nil {
		return nil, err
	}
	if index%8 != 0 {
		return nil, fmt.Errorf("%w: ordered/volatile index %d is not 8-byte aligned", errs.ErrIllegalArgument, index)
	}
	b := v.region.Bytes()
	if b == nil {
		return nil, fmt.Errorf("%w: ordered/volatile accessors require an addressable region", errs.ErrNotSupported)
	}

	//nolint:gosec // reinterpreting a bounds-checked, 8-byte-aligned slice
	// position as *atomic.Uint64 is the documented way to get true
	// hardware-ordered access to a shared memory location in Go; there is
	// no atomic accessor over a []byte slice in the standard library.
	return (*atomic.Uint64)(unsafe.Pointer(&b[index])), nil
}
