package buffer

import (
	"testing"

	"github.com/arloliu/dbuf/errs"
	"github.com/stretchr/testify/require"
)

func TestView_OrderedVolatileRoundTrip(t *testing.T) {
	v := NewView(NewHeapBuffer(16))
	require.NoError(t, v.PutUint64Ordered(8, 0xDEADBEEFCAFEBABE))

	got, err := v.GetUint64Volatile(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xDEADBEEFCAFEBABE), got)
}

func TestView_OrderedVolatile_RequiresAlignment(t *testing.T) {
	v := NewView(NewHeapBuffer(16))
	err := v.PutUint64Ordered(1, 1)
	require.ErrorIs(t, err, errs.ErrIllegalArgument)

	_, err = v.GetUint64Volatile(3)
	require.ErrorIs(t, err, errs.ErrIllegalArgument)
}

func TestView_OrderedVolatile_BoundsChecked(t *testing.T) {
	v := NewView(NewHeapBuffer(8))
	err := v.PutUint64Ordered(8, 1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}
