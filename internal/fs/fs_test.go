package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.bin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocalFS(t *testing.T) {
	lfs := LocalFS{}
	path := writeFile(t, "hello")

	info, err := lfs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())

	f, err := lfs.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = lfs.Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFaultyFS_GlobalLimit(t *testing.T) {
	path := writeFile(t, "hello world")

	ffs := NewFaultyFS(nil)
	ffs.SetLimit(5)

	f, err := ffs.Open(path)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, int64(5), ffs.BytesRead())
}

func TestFaultyFS_Rules(t *testing.T) {
	path := writeFile(t, "0123456789")
	boom := errors.New("disk on fire")

	t.Run("fail after bytes", func(t *testing.T) {
		ffs := NewFaultyFS(LocalFS{})
		ffs.AddRule("records", Fault{FailAfterBytes: 3, Err: boom})

		f, err := ffs.Open(path)
		require.NoError(t, err)
		defer f.Close()

		buf := make([]byte, 8)
		n, err := f.Read(buf)
		assert.Equal(t, 3, n)
		assert.ErrorIs(t, err, boom)

		n, err = f.Read(buf)
		assert.Zero(t, n)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unmatched file passes through", func(t *testing.T) {
		ffs := NewFaultyFS(LocalFS{})
		ffs.AddRule("other", Fault{FailAfterBytes: 0})

		f, err := ffs.Open(path)
		require.NoError(t, err)
		defer f.Close()

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(data))
	})

	t.Run("fail on open", func(t *testing.T) {
		ffs := NewFaultyFS(LocalFS{})
		ffs.AddRule("records", Fault{FailAfterBytes: -1, FailOnOpen: true})

		_, err := ffs.Open(path)
		assert.ErrorIs(t, err, ErrInjected)
	})

	t.Run("fail on close", func(t *testing.T) {
		ffs := NewFaultyFS(LocalFS{})
		ffs.AddRule("records", Fault{FailAfterBytes: -1, FailOnClose: true, Err: boom})

		f, err := ffs.Open(path)
		require.NoError(t, err)
		assert.ErrorIs(t, f.Close(), boom)
	})
}

func TestFaultyFS_Delegation(t *testing.T) {
	ffs := NewFaultyFS(nil)
	path := writeFile(t, "abc")

	info, err := ffs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	_, err = ffs.Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, ffs.BytesRead())
}
