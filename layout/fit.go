package layout

import "strings"

// Spaces returns n ASCII spaces, or "" when n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Repeat returns glyph repeated n times, or "" when n <= 0.
func Repeat(glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(glyph, n)
}

// Fit returns s occupying exactly width columns. Short strings are padded
// on the right with spaces; long strings are cut at a grapheme boundary and
// end in Ellipsis, with any leftover column (a wide glyph that no longer
// fits) padded. Fit(s, 0) is "".
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := Width(s)
	if w <= width {
		return s + Spaces(width-w)
	}
	out := Clip(s, width-Width(Ellipsis)) + Ellipsis
	return out + Spaces(width-Width(out))
}

// Clip returns the longest grapheme-aligned prefix of s that fits in width
// columns. It never adds a marker or padding.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, g := range graphemes(s) {
		gw := Width(g)
		if used+gw > width {
			break
		}
		b.WriteString(g)
		used += gw
	}
	return b.String()
}

// PadLeft right-aligns s in exactly width columns. Strings that are too
// wide are clipped the same way Fit clips them.
func PadLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := Width(s)
	if w > width {
		return Fit(s, width)
	}
	return Spaces(width-w) + s
}

// Center places s in the middle of width columns. An odd leftover column
// goes to the right.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := Width(s)
	if w > width {
		return Fit(s, width)
	}
	left := (width - w) / 2
	return Spaces(left) + s + Spaces(width-w-left)
}

// Leader lays out left and right at the two ends of width columns, joined by
// a run of fill glyphs with one space on each side. When the pair does not
// leave room for at least one fill glyph it falls back to a single space
// between them, clipped to width.
func Leader(left, right, fill string, width int) string {
	gap := width - Width(left) - Width(right) - 2
	fw := Width(fill)
	if fw < 1 || gap < fw {
		return Fit(left+" "+right, width)
	}
	n := gap / fw
	return Fit(left+" "+Repeat(fill, n)+" "+right, width)
}
