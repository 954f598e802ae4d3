package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExclusions(t *testing.T) {
	dir := t.TempDir()
	writeAppBundle(t, dir, "Pixel Edit.app", "com.foo.pixeledit")
	writeAppBundle(t, dir, "Other Tool.app", "com.other.tool")
	writeAppBundle(t, dir, "Third.app", "COM.Third.APP")

	ex := BuildExclusions([]string{dir}, "com.foo.pixeledit")

	assert.True(t, ex.MatchesDir("com.other.tool"))
	assert.True(t, ex.MatchesDir("COM.Other.Tool"))
	// Identifiers are stored lowercase regardless of plist casing.
	assert.True(t, ex.MatchesDir("com.third.app"))
	// The target's own identifier is never excluded.
	assert.False(t, ex.MatchesDir("com.foo.pixeledit"))
}

func TestBuildExclusionsOwnIDCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeAppBundle(t, dir, "Pixel Edit.app", "com.foo.pixeledit")

	ex := BuildExclusions([]string{dir}, "COM.FOO.PIXELEDIT")
	assert.False(t, ex.MatchesDir("com.foo.pixeledit"))
	require.Empty(t, ex)
}

func TestBuildExclusionsMissingDirs(t *testing.T) {
	ex := BuildExclusions([]string{"/does/not/exist"}, "com.foo.pixeledit")
	assert.Empty(t, ex)
}

func TestIsRuntimeDir(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Python3", true},
		{"python3.11", true},
		{"Python2.7.18", true},
		{"Python", false},
		{"python3.11-slim", false},
		{"Caches", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRuntimeDir(tt.name))
		})
	}
}
