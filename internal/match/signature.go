package match

import "strings"

// Signatures derives the set of match signatures for an application from
// its display name and bundle identifier. The result preserves insertion
// order, contains no duplicates and no empty strings. Pure function of
// its two arguments.
func Signatures(appName, bundleID string) []string {
	var sigs []string
	seen := make(map[string]struct{})

	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		sigs = append(sigs, s)
	}

	add(Wildcardize(appName))
	add(Normalize(appName, ""))
	add(Wildcardize(bundleID))
	add(Normalize(bundleID, ""))

	// Vendor prefix: for com.microsoft.outlook we also want com.microsoft,
	// which catches files scoped to the vendor rather than the product.
	comps := strings.Split(bundleID, ".")
	if len(comps) > 2 {
		prefix := strings.Join(comps[:len(comps)-1], ".")
		add(Normalize(prefix, ""))
		add(Wildcardize(prefix))
	}

	if words := strings.Fields(appName); len(words) > 0 {
		last := words[len(words)-1]
		add(Normalize(last, ""))
		add(Wildcardize(last))
	}

	// Product token, e.g. "outlook" from com.microsoft.outlook.
	if last := comps[len(comps)-1]; last != "" {
		add(Normalize(last, ""))
		add(Wildcardize(last))
	}

	return sigs
}
