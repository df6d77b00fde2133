package timer

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/dbuf/errs"
)

// TimeUnit records the unit of time stored in a Wheel's deadlines and
// start time. It is carried for the caller's own bookkeeping; Wheel treats
// deadlines as opaque ticks of whatever unit the caller chose and never
// interprets TimeUnit itself.
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Millis
	Micros
	Nanos
)

// NullDeadline is the sentinel value marking a free slot: the maximum
// signed 64-bit value, chosen so no real deadline can collide with it.
const NullDeadline int64 = 1<<63 - 1

// PollHandler is called for each timer that expires during Poll. It
// returns false to veto the expiry: the timer's slot and timer_count are
// restored as if the call never happened, and Poll stops immediately.
type PollHandler func(timerID int64, deadline int64) bool

// Wheel is a single-threaded hashed deadline timer wheel: O(1) cancel,
// amortized O(1) schedule, bounded-work polling. All operations must be
// serialized by the caller; Wheel holds no internal lock.
type Wheel struct {
	unit           TimeUnit
	startTime      int64
	tickResolution int64
	log2Tick       uint
	ticksPerWheel  int32
	mask           int64
	initialAlloc   int32

	currentTick int64
	pollIndex   int32
	timerCount  int32
	spokes      [][]int64
}

// NewWheel constructs a Wheel. tickResolution and ticksPerWheel must each
// be a power of two (enables shift/mask arithmetic); violating that fails
// with errs.ErrIllegalArgument. Every spoke starts with
// initialTickAllocation sentinel slots.
func NewWheel(unit TimeUnit, startTime, tickResolution int64, ticksPerWheel, initialTickAllocation int32) (*Wheel, error) {
	if tickResolution <= 0 || !isPowerOfTwo64(tickResolution) {
		return nil, fmt.Errorf("%w: tickResolution %d is not a power of two", errs.ErrIllegalArgument, tickResolution)
	}
	if ticksPerWheel <= 0 || !isPowerOfTwo32(ticksPerWheel) {
		return nil, fmt.Errorf("%w: ticksPerWheel %d is not a power of two", errs.ErrIllegalArgument, ticksPerWheel)
	}
	if initialTickAllocation < 0 {
		return nil, fmt.Errorf("%w: negative initialTickAllocation %d", errs.ErrIllegalArgument, initialTickAllocation)
	}

	spokes := make([][]int64, ticksPerWheel)
	for i := range spokes {
		spoke := make([]int64, initialTickAllocation)
		for j := range spoke {
			spoke[j] = NullDeadline
		}
		spokes[i] = spoke
	}

	return &Wheel{
		unit:           unit,
		startTime:      startTime,
		tickResolution: tickResolution,
		log2Tick:       uint(bits.TrailingZeros64(uint64(tickResolution))),
		ticksPerWheel:  ticksPerWheel,
		mask:           int64(ticksPerWheel - 1),
		initialAlloc:   initialTickAllocation,
		spokes:         spokes,
	}, nil
}

func isPowerOfTwo64(v int64) bool { return v > 0 && v&(v-1) == 0 }
func isPowerOfTwo32(v int32) bool { return v > 0 && v&(v-1) == 0 }

// TimerCount returns the number of live (non-sentinel) timers.
func (w *Wheel) TimerCount() int32 { return w.timerCount }

// CurrentTickTime returns ((current_tick+1) << log2(tick_resolution)) + start_time.
func (w *Wheel) CurrentTickTime() int64 {
	return ((w.currentTick + 1) << w.log2Tick) + w.startTime
}

// Schedule registers deadline and returns an opaque timer ID: the upper
// 32 bits are the spoke index, the lower 32 the slot index. Stale
// deadlines (at or before the current tick) collapse to the current tick,
// so a deadline that has already passed still fires on the very next
// Poll instead of being silently dropped. Schedule never fails: a full
// spoke grows by one slot.
func (w *Wheel) Schedule(deadline int64) int64 {
	targetTick := (deadline - w.startTime) >> w.log2Tick
	if targetTick < w.currentTick {
		targetTick = w.currentTick
	}
	spokeIndex := targetTick & w.mask
	spoke := w.spokes[spokeIndex]

	slot := -1
	for i, d := range spoke {
		if d == NullDeadline {
			slot = i
			break
		}
	}
	if slot == -1 {
		spoke = append(spoke, NullDeadline)
		slot = len(spoke) - 1
		w.spokes[spokeIndex] = spoke
	}
	spoke[slot] = deadline
	w.timerCount++

	return (spokeIndex << 32) | int64(slot)
}

// Cancel decodes timerID and, if it refers to a live timer, frees its
// slot and returns true. A timer ID referring to an out-of-range spoke
// or slot, or to an already-free slot, returns false and leaves state
// unchanged, so calling Cancel twice on the same id is safe: the second
// call is a harmless false.
func (w *Wheel) Cancel(timerID int64) bool {
	spokeIndex, slot, ok := w.decode(timerID)
	if !ok {
		return false
	}
	spoke := w.spokes[spokeIndex]
	if spoke[slot] == NullDeadline {
		return false
	}
	spoke[slot] = NullDeadline
	w.timerCount--

	return true
}

// Deadline returns the stored deadline for timerID, or NullDeadline if
// the decoded indices are out of range or the slot is free.
func (w *Wheel) Deadline(timerID int64) int64 {
	spokeIndex, slot, ok := w.decode(timerID)
	if !ok {
		return NullDeadline
	}

	return w.spokes[spokeIndex][slot]
}

func (w *Wheel) decode(timerID int64) (spokeIndex, slot int64, ok bool) {
	spokeIndex = timerID >> 32
	slot = timerID & 0xFFFFFFFF
	if spokeIndex < 0 || spokeIndex >= int64(w.ticksPerWheel) {
		return 0, 0, false
	}
	if slot < 0 || slot >= int64(len(w.spokes[spokeIndex])) {
		return 0, 0, false
	}

	return spokeIndex, slot, true
}

// Poll advances the wheel and expires timers whose deadline is <= now,
// calling handler for each, returning the number expired. Total
// expirations across the call are bounded by expiryLimit. If handler
// returns false, the slot it was called for is restored (its deadline
// and timer count as before the call) and Poll returns immediately with
// the count expired so far — a caller doing fixed-size batches of work
// per expiry can veto the last one and pick it back up on the next Poll
// without losing it.
//
// A single call may advance current_tick through more than one spoke
// when now is already past their tick boundaries (e.g. nothing was
// scheduled in the intervening ticks): each spoke is fully inspected (one
// lap through its slots) before the next tick's spoke is visited, and the
// loop stops as soon as either the expiry budget is spent or
// current_tick_time() exceeds now. A caller that polls rarely relative to
// tick_resolution (or falls behind under load) still gets every timer
// that's come due, in one call, rather than needing to call Poll once per
// skipped tick to catch up. This is still bounded work: the number of
// ticks crossed is capped by how far now has advanced past
// current_tick_time(), and the number of handler calls is capped by
// expiryLimit.
func (w *Wheel) Poll(now int64, handler PollHandler, expiryLimit int) int {
	expired := 0
	for {
		if w.timerCount == 0 {
			if expired == 0 && w.CurrentTickTime() <= now {
				w.currentTick++
				w.pollIndex = 0
			}

			return expired
		}

		spokeIndex := w.currentTick & w.mask
		spoke := w.spokes[spokeIndex]
		spokeLen := int32(len(spoke))

		var visited int32
		for visited < spokeLen && expired < expiryLimit {
			idx := w.pollIndex
			d := spoke[idx]
			if d != NullDeadline && d <= now {
				spoke[idx] = NullDeadline
				w.timerCount--
				timerID := (spokeIndex << 32) | int64(idx)
				if !handler(timerID, d) {
					spoke[idx] = d
					w.timerCount++

					return expired
				}
				expired++
			}
			w.pollIndex = (w.pollIndex + 1) % spokeLen
			visited++
		}

		if expired < expiryLimit && w.CurrentTickTime() <= now {
			w.currentTick++
			w.pollIndex = 0
			continue
		}

		return expired
	}
}

// ForEach visits every non-sentinel entry in order, starting from the
// current tick's spoke and proceeding one full revolution, until all
// timer_count entries are visited. It does not mutate the wheel.
func (w *Wheel) ForEach(consumer func(timerID int64, deadline int64)) {
	if w.timerCount == 0 {
		return
	}

	var visited int32
	for offset := int64(0); offset < int64(w.ticksPerWheel); offset++ {
		spokeIndex := (w.currentTick + offset) & w.mask
		spoke := w.spokes[spokeIndex]
		for slot, d := range spoke {
			if d == NullDeadline {
				continue
			}
			consumer((spokeIndex<<32)|int64(slot), d)
			visited++
			if visited == w.timerCount {
				return
			}
		}
	}
}

// Clear frees every live timer: every non-sentinel slot becomes
// sentinel and timer_count resets to 0.
func (w *Wheel) Clear() {
	for _, spoke := range w.spokes {
		for i := range spoke {
			spoke[i] = NullDeadline
		}
	}
	w.timerCount = 0
}

// ResetStartTime sets a new start_time and resets current_tick and
// poll_index to 0. It is only permitted when no timers are scheduled,
// since every live timer's slot is hashed against the old start_time —
// rebasing it underneath them would scatter timers into the wrong spokes.
func (w *Wheel) ResetStartTime(t int64) error {
	if w.timerCount != 0 {
		return fmt.Errorf("%w: reset_start_time with %d live timers", errs.ErrIllegalState, w.timerCount)
	}
	w.startTime = t
	w.currentTick = 0
	w.pollIndex = 0

	return nil
}
