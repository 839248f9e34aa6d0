package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// formatSize renders a byte count for logs: 1234 -> "1.2 kB".
func formatSize(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// countLabel pluralises a count: (1, "line") -> "1 line", (3, "line") -> "3 lines".
func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%s %ss", humanize.Comma(int64(n)), noun)
}
