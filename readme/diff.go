package readme

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is how many unchanged lines are shown around each change.
const diffContext = 2

// Diff returns a line-oriented diff of two documents: removed lines start
// with "-", added lines with "+", and long unchanged runs are collapsed.
// Identical documents yield "".
func Diff(oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out strings.Builder
	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range text {
				out.WriteString("-" + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range text {
				out.WriteString("+" + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			writeContext(&out, text, i > 0, i < len(diffs)-1)
		}
	}
	return out.String()
}

// writeContext prints the tail of the run when a change precedes it and the
// head when one follows, eliding the middle.
func writeContext(out *strings.Builder, text []string, before, after bool) {
	head, tail := 0, 0
	if before {
		head = diffContext
	}
	if after {
		tail = diffContext
	}
	if head+tail >= len(text) {
		for _, l := range text {
			out.WriteString(" " + l + "\n")
		}
		return
	}
	for _, l := range text[:head] {
		out.WriteString(" " + l + "\n")
	}
	fmt.Fprintf(out, "@@ %d unchanged lines @@\n", len(text)-head-tail)
	for _, l := range text[len(text)-tail:] {
		out.WriteString(" " + l + "\n")
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
