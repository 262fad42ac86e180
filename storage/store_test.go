package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stores returns a fresh instance of every Store implementation.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemory(),
		"dir":    NewDir(filepath.Join(t.TempDir(), "nested", "store")),
		"limit":  NewLimit(NewMemory(), 1<<20),
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "savedSignature")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Save(ctx, "savedSignature", []byte("first")))
			require.NoError(t, s.Save(ctx, "savedSignature", []byte("second")))

			got, err := s.Load(ctx, "savedSignature")
			require.NoError(t, err)
			assert.Equal(t, "second", string(got), "last write wins")
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.Save(ctx, "k", []byte("v")), context.Canceled)
			_, err := s.Load(ctx, "k")
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Save(ctx, "k", v))
	v[0] = 'x'

	got, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, _ := m.Load(ctx, "k")
	assert.Equal(t, "abc", string(again))
	assert.Equal(t, []string{"k"}, m.Keys())
}

func TestDir_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	d := NewDir(root)
	require.NoError(t, d.Save(ctx, "savedSignature", []byte("value")))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "savedSignature.value", entries[0].Name())
	assert.Equal(t, root, d.Path())
}

func TestDir_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	d := NewDir(t.TempDir())
	for _, key := range []string{"", ".", "..", "../escape", `a\b`, "a/b"} {
		assert.Error(t, d.Save(ctx, key, []byte("v")), "key %q", key)
		_, err := d.Load(ctx, key)
		assert.Error(t, err, "key %q", key)
		assert.False(t, errors.Is(err, ErrNotFound), "key %q", key)
	}
}

func TestDir_WriteFailure(t *testing.T) {
	ctx := context.Background()
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	d := NewDir(filepath.Join(blocker, "store"))
	err := d.Save(ctx, "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"k"`)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "signpad", filepath.Base(dir))
}

func TestLimit_RejectsOversizedValues(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory()
	l := NewLimit(inner, 4)

	require.NoError(t, l.Save(ctx, "k", []byte("1234")))
	err := l.Save(ctx, "k", []byte("12345"))
	require.ErrorIs(t, err, ErrQuotaExceeded)

	got, err := l.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1234", string(got), "rejected write must not replace the old value")
}
