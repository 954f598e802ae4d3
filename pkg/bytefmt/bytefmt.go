// Package bytefmt formats byte counts for humans.
package bytefmt

import "fmt"

const (
	B  = 1
	KB = 1024 * B
	MB = 1024 * KB
	GB = 1024 * MB
	TB = 1024 * GB
)

var units = []struct {
	div    int64
	suffix string
}{
	{TB, "TB"},
	{GB, "GB"},
	{MB, "MB"},
	{KB, "KB"},
}

// Format converts bytes to a human-readable string. Negative counts
// render as zero.
func Format(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	for _, u := range units {
		if bytes >= u.div {
			return fmt.Sprintf("%.2f %s", float64(bytes)/float64(u.div), u.suffix)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// FormatEntries renders a count-and-size summary, e.g. "3 entries (1.50 KB)".
func FormatEntries(count int, size int64) string {
	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	return fmt.Sprintf("%d %s (%s)", count, noun, Format(size))
}
