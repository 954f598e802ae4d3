package remover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appsweep/appsweep/internal/scanner"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func entry(path string, size int64, isDir, selected bool) scanner.Entry {
	return scanner.Entry{
		Path:     path,
		Name:     filepath.Base(path),
		Parent:   filepath.Dir(path),
		Size:     size,
		IsDir:    isDir,
		Selected: selected,
	}
}

func TestRemoveMovesToTrash(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	file := filepath.Join(base, "data", "com.foo.pixeledit.plist")
	writeFile(t, file, "leftover")

	r := New(trash, false, nil)
	result, err := r.Remove([]scanner.Entry{entry(file, 8, false, true)})
	require.NoError(t, err)

	assert.Equal(t, []string{file}, result.Removed)
	assert.Equal(t, int64(8), result.FreedBytes)
	assert.Empty(t, result.Errors)
	assert.NoFileExists(t, file)
	assert.FileExists(t, filepath.Join(trash, "com.foo.pixeledit.plist"))
}

func TestRemoveCollisionGetsNumberedSuffix(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	writeFile(t, filepath.Join(trash, "settings.plist"), "old")

	file := filepath.Join(base, "data", "settings.plist")
	writeFile(t, file, "new")

	r := New(trash, false, nil)
	_, err := r.Remove([]scanner.Entry{entry(file, 3, false, true)})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(trash, "settings 2.plist"))
}

func TestRemoveSkipsUnselected(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	file := filepath.Join(base, "data", "keep.plist")
	writeFile(t, file, "keep")

	r := New(trash, false, nil)
	result, err := r.Remove([]scanner.Entry{entry(file, 4, false, false)})
	require.NoError(t, err)

	assert.Empty(t, result.Removed)
	assert.Equal(t, []string{file}, result.Skipped)
	assert.FileExists(t, file)
}

func TestRemoveSkipsNestedUnderRemovedDir(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	dir := filepath.Join(base, "data", "com.foo.pixeledit")
	nested := filepath.Join(dir, "cache.bin")
	writeFile(t, nested, "blob")

	r := New(trash, false, nil)
	result, err := r.Remove([]scanner.Entry{
		entry(nested, 4, false, true),
		entry(dir, 0, true, true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{dir}, result.Removed)
	assert.Equal(t, []string{nested}, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.NoDirExists(t, dir)
}

func TestRemoveSkipsNestedWithSiblingBetween(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	dir := filepath.Join(base, "data", "com.foo.pixeledit")
	nested := filepath.Join(dir, "cache.bin")
	writeFile(t, nested, "blob")
	// Sorts after the directory but before its children ('.' < '/').
	sibling := filepath.Join(base, "data", "com.foo.pixeledit.helper")
	writeFile(t, filepath.Join(sibling, "state.db"), "x")

	r := New(trash, false, nil)
	result, err := r.Remove([]scanner.Entry{
		entry(dir, 0, true, true),
		entry(sibling, 0, true, true),
		entry(nested, 4, false, true),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{dir, sibling}, result.Removed)
	assert.Equal(t, []string{nested}, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.NoDirExists(t, dir)
	assert.NoDirExists(t, sibling)
}

func TestRemoveDryRun(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	file := filepath.Join(base, "data", "com.foo.pixeledit.plist")
	writeFile(t, file, "leftover")

	r := New(trash, true, nil)
	result, err := r.Remove([]scanner.Entry{entry(file, 8, false, true)})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, []string{file}, result.Removed)
	assert.FileExists(t, file)
	assert.NoDirExists(t, trash)
}

func TestRemoveCollectsErrors(t *testing.T) {
	base := t.TempDir()
	trash := filepath.Join(base, "trash")
	missing := filepath.Join(base, "data", "gone.plist")
	present := filepath.Join(base, "data", "here.plist")
	writeFile(t, present, "x")

	r := New(trash, false, nil)
	result, err := r.Remove([]scanner.Entry{
		entry(missing, 1, false, true),
		entry(present, 1, false, true),
	})
	require.NoError(t, err)

	// The missing entry is reported, the present one still removed.
	require.Len(t, result.Errors, 1)
	assert.Equal(t, missing, result.Errors[0].Path)
	assert.Equal(t, ReasonNotFound, result.Errors[0].Reason)
	assert.Equal(t, []string{present}, result.Removed)
}
