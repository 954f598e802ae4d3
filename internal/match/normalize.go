// Package match turns an application's name and bundle identifier into
// matchable signatures and decides whether candidate filesystem paths
// belong to that application.
package match

import "strings"

// Wildcard is the character that stands in for any run of characters
// in a signature.
const Wildcard = "*"

var wildcardReplacer = strings.NewReplacer(
	" ", Wildcard,
	"-", Wildcard,
	"_", Wildcard,
	".", Wildcard,
)

// Normalize lowercases s and replaces every space with spacer.
// No other characters are touched.
func Normalize(s, spacer string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", spacer)
}

// Wildcardize lowercases s and replaces each space, hyphen, underscore
// and period with the wildcard character. Word boundaries become wildcard
// boundaries, so a compiled signature matches any of the original
// separator styles.
func Wildcardize(s string) string {
	return wildcardReplacer.Replace(strings.ToLower(s))
}
