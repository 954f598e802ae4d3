package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileGlob(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		input     string
		match     bool
	}{
		{"wildcard bridges separators", "app*name", "app name", true},
		{"wildcard bridges hyphen", "app*name", "app-name", true},
		{"wildcard bridges path segment", "com*test*app", "/library/caches/com.test.app", true},
		{"chunks need word boundaries", "com*app*desktop", "com*nottheapp*desktop", false},
		{"chunks match own form", "com*app*desktop", "com*app*desktop", true},
		{"no wildcard is word anchored", "app", "app", true},
		{"no wildcard rejects superstring", "app", "webapp", false},
		{"no wildcard matches inside path", "outlook", "/library/caches/outlook/data", true},
		{"leading wildcard", "*app", "some.app", true},
		{"metacharacters escaped", "app+name", "appname", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompileGlob(tt.signature)
			require.NoError(t, err)
			assert.Equal(t, tt.match, re.MatchString(tt.input),
				"CompileGlob(%q) on %q", tt.signature, tt.input)
		})
	}
}

func newTestMatcher(t *testing.T, sigs []string, appName, bundleID, installPath string) *Matcher {
	t.Helper()
	m, err := newMatcher(sigs, appName, bundleID, installPath, NewStripper(""))
	require.NoError(t, err)
	return m
}

func TestIsAppRelatedInstallPath(t *testing.T) {
	m, err := NewMatcher("Zzzz", "com.zzzz.zzzz", "/Applications/Zzzz.app", NewStripper(""))
	require.NoError(t, err)

	// Anything under the install path matches, regardless of signatures.
	assert.True(t, m.IsAppRelated("/Applications/Zzzz.app"))
	assert.True(t, m.IsAppRelated("/Applications/Zzzz.app/Contents/MacOS/unrelated-binary"))
	assert.False(t, m.IsAppRelated("/Applications/Other.app/Contents/Info.plist"))
}

func TestIsAppRelatedStrongPathPatterns(t *testing.T) {
	m, err := NewMatcher("Pixel Edit", "com.foo.pixeledit", "/Applications/Pixel Edit.app", NewStripper(""))
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"bundle id directory", "/Users/me/Library/Containers/com.foo.pixeledit/Data/settings.bin", true},
		{"app name directory", "/Users/me/Library/Application Support/Pixel Edit/state.db", true},
		{"saved state bundle", "/Users/me/Library/Saved Application State/pixel edit.app.savedState", true},
		{"unrelated path", "/Users/me/Library/Caches/com.other.tool/blob", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsAppRelated(tt.path))
		})
	}
}

func TestIsAppRelatedSignatureCases(t *testing.T) {
	sigs := []string{"app", "com*app*desktop", "com*app"}
	m := newTestMatcher(t, sigs, "App Desktop", "com.test.app", "/Applications/App Desktop.app")

	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{"generic covers whole name with context", "app", true},
		{"generic inside longer name", "nottheapp", false},
		{"wildcard chunks not found bounded", "com*nottheapp*desktop", false},
		{"specific signature matches", "com.app.desktop", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The parent contains the raw app name as a substring, providing
			// strong context for the generic case without itself matching a
			// word-bounded strong pattern.
			path := "/Users/me/Library/Caches/myapp desktopper/" + tt.fileName
			assert.Equal(t, tt.want, m.IsAppRelated(path))
		})
	}
}

func TestIsAppRelatedGenericNeedsBothConditions(t *testing.T) {
	// "edit" is generic (4 chars, no wildcard) and distinct from any strong
	// path pattern of "Pixel Edit" / com.foo.edit.
	m, err := NewMatcher("Pixel Edit", "com.foo.edit", "/Applications/Pixel Edit.app", NewStripper(""))
	require.NoError(t, err)

	// Full cover and parent context (the raw app name appears inside the
	// directory name): matches.
	assert.True(t, m.IsAppRelated("/Users/me/Library/WebKit/mypixel editors/edit"))

	// Full cover but a parent with no app context: no match.
	assert.False(t, m.IsAppRelated("/Users/me/Library/WebKit/somewhere/edit"))

	// Parent context but the generic signature only covers part of the
	// name: no match.
	assert.False(t, m.IsAppRelated("/Users/me/Library/WebKit/mypixel editors/editor"))
}

func TestIsAppRelatedStrippedNoise(t *testing.T) {
	m, err := NewMatcher("Pixel Edit", "com.foo.pixeledit", "/Applications/Pixel Edit.app", NewStripper("Jordans-Mac"))
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"versioned installer", "/Users/me/Downloads/pixeledit-2.4.1-arm64.dmg", true},
		{"crash report", "/Users/me/Library/Logs/DiagnosticReports/pixeledit_2023-11-04-123456_Jordans-Mac.crash", true},
		{"uuid receipt", "/private/var/db/receipts/pixeledita7293542-411f-400f-ac18-fb93c61bb5b6.bom", true},
		{"other vendor installer", "/Users/me/Downloads/otherapp-2.4.1-arm64.dmg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsAppRelated(tt.path))
		})
	}
}
