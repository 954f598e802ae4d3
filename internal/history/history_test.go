package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	store, err := NewStoreAt(t.TempDir())
	require.NoError(t, err)

	rec := &Record{AppName: "Pixel Edit", BundleID: "com.foo.pixeledit"}
	require.NoError(t, store.Save(rec))

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	store, err := NewStoreAt(t.TempDir())
	require.NoError(t, err)

	older := &Record{AppName: "Older", Timestamp: time.Now().Add(-time.Hour)}
	newer := &Record{AppName: "Newer", Timestamp: time.Now()}
	require.NoError(t, store.Save(older))
	require.NoError(t, store.Save(newer))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Newer", records[0].AppName)
	assert.Equal(t, "Older", records[1].AppName)
}

func TestListSkipsGarbageFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStoreAt(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(&Record{AppName: "Pixel Edit"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Pixel Edit", records[0].AppName)
}

func TestSaveRoundTrip(t *testing.T) {
	store, err := NewStoreAt(t.TempDir())
	require.NoError(t, err)

	rec := &Record{
		AppName:    "Pixel Edit",
		BundleID:   "com.foo.pixeledit",
		Removed:    []string{"/tmp/a", "/tmp/b"},
		FreedBytes: 42,
		DryRun:     true,
	}
	require.NoError(t, store.Save(rec))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.Removed, records[0].Removed)
	assert.Equal(t, int64(42), records[0].FreedBytes)
	assert.True(t, records[0].DryRun)
}
