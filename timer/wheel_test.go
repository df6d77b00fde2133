package timer

import (
	"testing"

	"github.com/arloliu/dbuf/errs"
	"github.com/stretchr/testify/require"
)

func TestNewWheel_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewWheel(Millis, 0, 3, 8, 4)
	require.ErrorIs(t, err, errs.ErrIllegalArgument)

	_, err = NewWheel(Millis, 0, 1, 7, 4)
	require.ErrorIs(t, err, errs.ErrIllegalArgument)
}

func TestWheel_PollReturnsCountOfExpiredEntriesAcrossTicks(t *testing.T) {
	// tick_resolution=1ms, ticks_per_wheel=8, start_time=0: two timers due at
	// tick 1 and one at tick 9 must all be reported once their tick is
	// reached, across two calls. All three share spoke 1 (9 & 7 == 1); the
	// tick-9 entry stays put on the first call because its deadline is > now.
	w, err := NewWheel(Millis, 0, 1, 8, 4)
	require.NoError(t, err)

	w.Schedule(1)
	w.Schedule(1)
	w.Schedule(9)
	require.Equal(t, int32(3), w.TimerCount())

	acceptAll := func(timerID, deadline int64) bool { return true }

	n := w.Poll(1, acceptAll, 10)
	require.Equal(t, 2, n)

	n = w.Poll(9, acceptAll, 10)
	require.Equal(t, 1, n)

	require.Equal(t, int32(0), w.TimerCount())
}

func TestWheel_CancelIsIdempotent(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 4)
	require.NoError(t, err)

	id := w.Schedule(5)
	require.True(t, w.Cancel(id))
	require.False(t, w.Cancel(id))

	n := w.Poll(100, func(int64, int64) bool { return true }, 10)
	require.Equal(t, 0, n)
}

func TestWheel_TimerCountInvariant(t *testing.T) {
	w, err := NewWheel(Nanos, 0, 1, 4, 2)
	require.NoError(t, err)

	a := w.Schedule(1)
	w.Schedule(2)
	require.Equal(t, int32(2), w.TimerCount())

	w.Cancel(a)
	require.Equal(t, int32(1), w.TimerCount())
}

func TestWheel_PollBound(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		w.Schedule(1)
	}

	calls := 0
	n := w.Poll(1, func(int64, int64) bool { calls++; return true }, 3)
	require.Equal(t, 3, n)
	require.Equal(t, 3, calls)
	require.Equal(t, int32(2), w.TimerCount())
}

func TestWheel_HandlerVeto(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	id := w.Schedule(1)
	before := w.Deadline(id)

	n := w.Poll(1, func(int64, int64) bool { return false }, 10)
	require.Equal(t, 0, n)
	require.Equal(t, int32(1), w.TimerCount())
	require.Equal(t, before, w.Deadline(id))
}

func TestWheel_ForEach_VisitsAllLiveEntries(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	w.Schedule(1)
	w.Schedule(2)
	w.Schedule(9)

	seen := map[int64]bool{}
	w.ForEach(func(timerID, deadline int64) {
		seen[deadline] = true
	})
	require.Len(t, seen, 3)
	require.True(t, seen[1])
	require.True(t, seen[2])
	require.True(t, seen[9])
}

func TestWheel_Clear(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	w.Schedule(1)
	w.Schedule(2)
	w.Clear()
	require.Equal(t, int32(0), w.TimerCount())

	n := w.Poll(100, func(int64, int64) bool { return true }, 10)
	require.Equal(t, 0, n)
}

func TestWheel_ResetStartTime_RequiresNoLiveTimers(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	id := w.Schedule(1)
	err = w.ResetStartTime(100)
	require.ErrorIs(t, err, errs.ErrIllegalState)

	w.Cancel(id)
	require.NoError(t, w.ResetStartTime(100))
}

func TestWheel_ScheduleGrowsSpoke(t *testing.T) {
	// initial allocation of 1 per spoke; schedule more than that to a
	// colliding spoke and confirm it grows rather than failing.
	w, err := NewWheel(Millis, 0, 1, 2, 1)
	require.NoError(t, err)

	ids := make([]int64, 5)
	for i := range ids {
		ids[i] = w.Schedule(0)
	}
	require.Equal(t, int32(5), w.TimerCount())
	for _, id := range ids {
		require.True(t, w.Cancel(id))
	}
}

func TestWheel_StaleDeadlineCollapsesToCurrentTick(t *testing.T) {
	w, err := NewWheel(Millis, 0, 1, 8, 2)
	require.NoError(t, err)

	id := w.Schedule(-100)
	require.Equal(t, int64(-100), w.Deadline(id))

	n := w.Poll(0, func(int64, int64) bool { return true }, 10)
	require.Equal(t, 1, n)
}

func TestWheel_CurrentTickTime(t *testing.T) {
	w, err := NewWheel(Millis, 100, 4, 8, 2)
	require.NoError(t, err)
	require.Equal(t, int64(104), w.CurrentTickTime())
}
