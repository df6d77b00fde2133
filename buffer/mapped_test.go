package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappedBuffer_ReadWriteAtPersistsToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "region.dat")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	m, err := OpenMappedBuffer(path, 0, 64)
	require.NoError(t, err)
	require.Equal(t, 64, m.Capacity())

	require.NoError(t, m.WriteAt(0, []byte{0xDE, 0xAD, 0xBE, 0xEF}, 0, 4))
	require.NoError(t, m.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, contents[:4])
}

func TestMappedBuffer_Close_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "region.dat")
	require.NoError(t, os.WriteFile(path, make([]byte, 16), 0o600))

	m, err := OpenMappedBuffer(path, 0, 16)
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
}
