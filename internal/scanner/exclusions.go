package scanner

import (
	"regexp"
	"strings"

	"github.com/appsweep/appsweep/internal/apps"
)

// Exclusions is the set of lowercase bundle identifiers belonging to
// every other installed application. Directories named after one of them
// are pruned during the walk so a sibling app's files are never
// attributed to the target. Rebuilt at the start of every scan.
type Exclusions map[string]struct{}

// BuildExclusions enumerates the top-level .app bundles under appDirs and
// collects their bundle identifiers, excluding the target's own
// identifier case-insensitively.
func BuildExclusions(appDirs []string, ownBundleID string) Exclusions {
	own := strings.ToLower(ownBundleID)
	ex := make(Exclusions)

	installed, err := apps.List(appDirs)
	if err != nil {
		return ex
	}
	for _, app := range installed {
		id := strings.ToLower(app.BundleID)
		if id == "" || id == own {
			continue
		}
		ex[id] = struct{}{}
	}
	return ex
}

// MatchesDir reports whether a directory name equals one of the excluded
// identifiers, case-insensitively.
func (e Exclusions) MatchesDir(name string) bool {
	_, ok := e[strings.ToLower(name)]
	return ok
}

// pythonRuntimePattern matches language-runtime directories like
// "Python3" or "python3.11"; their internals are never app-specific
// clutter worth surfacing.
var pythonRuntimePattern = regexp.MustCompile(`^(?i)python\d+(\.\d+)*$`)

func isRuntimeDir(name string) bool {
	return pythonRuntimePattern.MatchString(name)
}
