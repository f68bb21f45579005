package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.idxa")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestOpenReadClose(t *testing.T) {
	content := []byte("IDXA snapshot bytes")

	for _, hint := range []AccessPattern{AccessDefault, AccessSequential, AccessRandom, AccessWillNeed} {
		m, err := Open(writeFile(t, content), hint)
		require.NoError(t, err)

		assert.Equal(t, len(content), m.Len())
		data, err := m.Bytes()
		require.NoError(t, err)
		assert.Equal(t, content, data)
		require.NoError(t, m.Close())
	}
}

func TestReadAt(t *testing.T) {
	m, err := Open(writeFile(t, []byte("IDXA snapshot bytes")), AccessRandom)
	require.NoError(t, err)
	defer m.Close()

	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 14)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "bytes", string(buf))

	n, err = m.ReadAt(make([]byte, 10), 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	partial := make([]byte, 10)
	n, err = m.ReadAt(partial, 14)
	assert.Equal(t, 5, n)
	assert.Equal(t, io.EOF, err)

	_, err = m.ReadAt(buf, -1)
	assert.Equal(t, ErrInvalidOffset, err)
}

func TestEmptyFile(t *testing.T) {
	m, err := Open(writeFile(t, nil), AccessSequential)
	require.NoError(t, err)

	assert.Zero(t, m.Len())
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.NoError(t, m.Close())
}

func TestAfterClose(t *testing.T) {
	m, err := Open(writeFile(t, []byte("data")), AccessDefault)
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.NoError(t, m.Close(), "Close is idempotent")

	_, err = m.Bytes()
	assert.ErrorIs(t, err, ErrClosed)

	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.Equal(t, ErrClosed, err)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), AccessDefault)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
