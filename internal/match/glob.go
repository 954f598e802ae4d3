package match

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// genericSignatureMaxLen is the length at or below which a wildcard-free
// signature is considered generic and requires parent-directory context
// to count as a match. Fixed heuristic, deliberately not configurable.
const genericSignatureMaxLen = 4

// CompileGlob converts a wildcard signature into an anchored regular
// expression. Regex metacharacters in the signature are escaped, '*'
// becomes a word-bounded "any characters, including none" gap and '?'
// matches exactly one character. A signature without wildcards is wrapped
// in word-boundary anchors, so "app" matches the word "app" but never
// "webapp". The same boundaries sit on each literal chunk adjacent to a
// gap, which is what keeps "com*app*desktop" from matching
// "com*nottheapp*desktop".
func CompileGlob(signature string) (*regexp.Regexp, error) {
	chunks := strings.Split(signature, Wildcard)
	parts := make([]string, len(chunks))
	for i, chunk := range chunks {
		if chunk == "" {
			continue
		}
		quoted := regexp.QuoteMeta(chunk)
		quoted = strings.ReplaceAll(quoted, `\?`, `.`)
		parts[i] = `\b` + quoted + `\b`
	}

	re, err := regexp.Compile(strings.Join(parts, `.*`))
	if err != nil {
		return nil, fmt.Errorf("compile signature %q: %w", signature, err)
	}
	return re, nil
}

// compiledSignature pairs a signature with its matcher and generic
// classification.
type compiledSignature struct {
	raw     string
	re      *regexp.Regexp
	generic bool
}

// Matcher decides whether filesystem entries belong to one application.
// It is immutable after construction and safe for concurrent use by the
// scan workers.
type Matcher struct {
	appName     string // lowercase
	bundleID    string // lowercase
	installPath string // lowercase
	signatures  []compiledSignature
	strong      []*regexp.Regexp
	stripper    *Stripper
}

// NewMatcher builds a Matcher for the application described by appName,
// bundleID and installPath, deriving its signature set via Signatures.
// The stripper carries the injected host name.
func NewMatcher(appName, bundleID, installPath string, stripper *Stripper) (*Matcher, error) {
	return newMatcher(Signatures(appName, bundleID), appName, bundleID, installPath, stripper)
}

func newMatcher(signatures []string, appName, bundleID, installPath string, stripper *Stripper) (*Matcher, error) {
	m := &Matcher{
		appName:     strings.ToLower(appName),
		bundleID:    strings.ToLower(bundleID),
		installPath: strings.ToLower(installPath),
		stripper:    stripper,
	}

	for _, sig := range signatures {
		re, err := CompileGlob(sig)
		if err != nil {
			return nil, err
		}
		m.signatures = append(m.signatures, compiledSignature{
			raw:     sig,
			re:      re,
			generic: isGeneric(sig),
		})
	}

	// Strong path-level patterns: the bundle id, the app name and the app
	// bundle directory name. Any one of them matching anywhere in the full
	// path claims the entry without further checks.
	for _, sig := range []string{
		Wildcardize(bundleID),
		Wildcardize(appName),
		Wildcardize(appName + ".app"),
	} {
		if sig == "" || sig == Wildcard {
			continue
		}
		re, err := CompileGlob(sig)
		if err != nil {
			return nil, err
		}
		m.strong = append(m.strong, re)
	}

	return m, nil
}

// isGeneric reports whether a signature is too common to match on its
// own: short wildcard-free tokens and anything equal to a known noise
// token produce unacceptable false-positive rates without corroborating
// directory context.
func isGeneric(sig string) bool {
	if len(sig) <= genericSignatureMaxLen && !strings.Contains(sig, Wildcard) {
		return true
	}
	return isNoiseToken(sig)
}

// IsAppRelated reports whether the filesystem entry at entryPath belongs
// to the matcher's application.
func (m *Matcher) IsAppRelated(entryPath string) bool {
	lowerPath := strings.ToLower(entryPath)

	// Anything inside the application's own bundle belongs to it.
	if m.installPath != "" {
		if lowerPath == m.installPath || strings.HasPrefix(lowerPath, m.installPath+string(filepath.Separator)) {
			return true
		}
	}

	// Directory names that encode the app identity claim the entry even
	// when the leaf filename does not.
	for _, re := range m.strong {
		if re.MatchString(lowerPath) {
			return true
		}
	}

	stripped := m.stripper.Strip(filepath.Base(entryPath))
	if stripped == "" {
		return false
	}

	parentChecked := false
	parentStrong := false
	for _, sig := range m.signatures {
		if !sig.generic {
			if sig.re.MatchString(stripped) {
				return true
			}
			continue
		}

		// Generic signatures must cover the whole stripped segment and the
		// parent directory must independently look like the app's own.
		loc := sig.re.FindStringIndex(stripped)
		if loc == nil || loc[0] != 0 || loc[1] != len(stripped) {
			continue
		}
		if !parentChecked {
			parentStrong = m.parentHasStrongContext(filepath.Dir(entryPath))
			parentChecked = true
		}
		if parentStrong {
			return true
		}
	}

	return false
}

// parentHasStrongContext reports whether the parent directory path itself
// matches a strong app pattern, or contains the raw bundle id or app name
// as a literal substring.
func (m *Matcher) parentHasStrongContext(parent string) bool {
	lower := strings.ToLower(parent)
	for _, re := range m.strong {
		if re.MatchString(lower) {
			return true
		}
	}
	if m.bundleID != "" && strings.Contains(lower, m.bundleID) {
		return true
	}
	if m.appName != "" && strings.Contains(lower, m.appName) {
		return true
	}
	return false
}
