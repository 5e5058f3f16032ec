package applied

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkThenHas(t *testing.T) {
	tr := NewTracker(NewMemoryStorage())

	ok, err := tr.HasApplied("job-42")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tr.MarkApplied("job-42"))

	ok, err = tr.HasApplied("job-42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tr.HasApplied("job-43")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkIsIdempotent(t *testing.T) {
	storage := NewMemoryStorage()
	tr := NewTracker(storage)

	require.NoError(t, tr.MarkApplied("a"))
	require.NoError(t, tr.MarkApplied("b"))
	require.NoError(t, tr.MarkApplied("a"))

	raw, ok, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["a","b"]`, raw)
}

func TestCorruptValueReadsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(StorageKey, "{oops"))
	tr := NewTracker(storage)

	ok, err := tr.HasApplied("a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tr.MarkApplied("a"))
	raw, _, _ := storage.GetItem(StorageKey)
	assert.JSONEq(t, `["a"]`, raw)
}

func TestFileStoragePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobctl", "state.json")

	require.NoError(t, NewTracker(NewFileStorage(path)).MarkApplied("job-42"))

	// a fresh tracker over the same file sees the mark
	ok, err := NewTracker(NewFileStorage(path)).HasApplied("job-42")
	require.NoError(t, err)
	assert.True(t, ok)

	// a cleared state forgets it
	require.NoError(t, os.Remove(path))
	ok, err = NewTracker(NewFileStorage(path)).HasApplied("job-42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorageReplaceErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	failure := errors.New("cross-device link")
	rename = func(oldpath, newpath string) error { return failure }
	t.Cleanup(func() { rename = os.Rename })

	err := NewFileStorage(path).SetItem(StorageKey, `["a"]`)

	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), path)
}
