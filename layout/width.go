// Package layout measures, clips, pads and wraps text in terminal display
// columns. Every function here counts columns with Width; nothing counts
// bytes or runes.
package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks clipped text. It is one column wide.
const Ellipsis = "…"

// cond is pinned rather than taken from runewidth.DefaultCondition, which
// reads RUNEWIDTH_EASTASIAN and the locale at init. Ambiguous-width code
// points (including the ellipsis and box-drawing glyphs) count as narrow.
var cond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// RuneWidth returns the column width of a single code point: 0 for combining
// and zero-width marks, 2 for wide and full-width characters, 1 otherwise.
func RuneWidth(r rune) int {
	w := cond.RuneWidth(r)
	if w < 0 {
		return 1
	}
	return w
}

// Width returns the number of display columns s occupies: the sum of the
// widths of its code points.
func Width(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// graphemes splits s into user-perceived characters so truncation never
// separates a base character from its combining marks.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
