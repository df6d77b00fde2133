package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOffHeapBuffer_AllocatesZeroFilled(t *testing.T) {
	o, err := NewOffHeapBuffer(64)
	require.NoError(t, err)
	defer o.Close()

	require.Equal(t, 64, o.Capacity())
	dst := make([]byte, 64)
	require.NoError(t, o.ReadAt(0, dst, 0, 64))
	for _, b := range dst {
		require.Equal(t, byte(0), b)
	}
}

func TestOffHeapBuffer_ReadWriteAt(t *testing.T) {
	o, err := NewOffHeapBuffer(16)
	require.NoError(t, err)
	defer o.Close()

	require.NoError(t, o.WriteAt(0, []byte{1, 2, 3, 4}, 0, 4))
	got := make([]byte, 4)
	require.NoError(t, o.ReadAt(0, got, 0, 4))
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestOffHeapBuffer_Close_Idempotent(t *testing.T) {
	o, err := NewOffHeapBuffer(16)
	require.NoError(t, err)
	require.NoError(t, o.Close())
	require.NoError(t, o.Close())
}

func TestOffHeapBuffer_NotExpandable(t *testing.T) {
	o, err := NewOffHeapBuffer(16)
	require.NoError(t, err)
	defer o.Close()
	require.False(t, o.Expandable())
}

func TestOffHeapBuffer_ZeroCapacity(t *testing.T) {
	o, err := NewOffHeapBuffer(0)
	require.NoError(t, err)
	require.Equal(t, 0, o.Capacity())
	require.NoError(t, o.Close())
}
