package bytefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.00 KB"},
		{"megabytes", 5 * MB, "5.00 MB"},
		{"gigabytes", 3 * GB, "3.00 GB"},
		{"terabytes", 2 * TB, "2.00 TB"},
		{"fractional", 1536, "1.50 KB"},
		{"negative clamps", -10, "0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.bytes))
		})
	}
}

func TestFormatEntries(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int64
		want  string
	}{
		{"plural", 3, 1536, "3 entries (1.50 KB)"},
		{"singular", 1, 512, "1 entry (512 B)"},
		{"empty", 0, 0, "0 entries (0 B)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEntries(tt.count, tt.size))
		})
	}
}
