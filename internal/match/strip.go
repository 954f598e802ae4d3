package match

import (
	"regexp"
	"strings"
)

// noisePatterns are applied sequentially, each pass operating on the
// output of the previous one. Order matters: the date token would
// otherwise be half-eaten by the version patterns.
var noisePatterns = []*regexp.Regexp{
	// 8-4-4-4-12 hex UUID
	regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`),
	// crash report date token, e.g. 2023-11-04-123456
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}-\d{6}`),
	// diagnostic report suffix, e.g. cpu_resource.diag
	regexp.MustCompile(`\w+_resource\.diag`),
	// three-part dotted version
	regexp.MustCompile(`\d{1,4}\.\d{1,4}\.\d{1,4}`),
	// two-part dotted version
	regexp.MustCompile(`\d{1,4}\.\d{1,4}`),
	// duplicate-file counter, e.g. (2)
	regexp.MustCompile(`\(\d{1,2}\)`),
}

// knownExtensions and knownSubstrings are removed from candidate names by
// plain substring deletion. A signature equal to one of these is treated
// as generic by the matcher.
var knownExtensions = []string{
	".app",
	".plist",
	".dmg",
	".pkg",
	".bom",
	".zip",
	".xip",
	".driver",
	".download",
	".diag",
	".dsym",
}

var knownSubstrings = []string{
	"install",
	"universal",
	"arm64",
	"x64",
	"intel",
	"macos",
}

var hostNameCleaner = strings.NewReplacer("'", "", "(", "", ")", "")

// Stripper removes filename noise (UUIDs, dates, versions, duplicate
// counters, known extensions and the host machine name) from candidate
// names before they are matched against signatures.
type Stripper struct {
	hostName string
}

// NewStripper returns a Stripper. hostName is the machine's display name
// as supplied by the caller; pass "" when unknown.
func NewStripper(hostName string) *Stripper {
	host := Normalize(hostName, "-")
	host = hostNameCleaner.Replace(host)
	return &Stripper{hostName: host}
}

// Strip removes noise from name and wildcardizes the leftover separators.
//
// Strip is idempotent for the regex noise it targets, but not in general:
// deleting an extension or substring can expose a noise pattern that was
// not adjacent before. We accept that rather than re-looping.
func (st *Stripper) Strip(name string) string {
	s := strings.ToLower(name)

	for _, re := range noisePatterns {
		s = re.ReplaceAllString(s, "")
	}

	for _, ext := range knownExtensions {
		s = strings.ReplaceAll(s, ext, "")
	}
	for _, sub := range knownSubstrings {
		s = strings.ReplaceAll(s, sub, "")
	}

	if st.hostName != "" {
		s = strings.ReplaceAll(s, st.hostName, "")
	}

	return Wildcardize(s)
}

// isNoiseToken reports whether s is one of the known extensions or noise
// substrings.
func isNoiseToken(s string) bool {
	for _, ext := range knownExtensions {
		if s == ext || s == strings.TrimPrefix(ext, ".") {
			return true
		}
	}
	for _, sub := range knownSubstrings {
		if s == sub {
			return true
		}
	}
	return false
}
