package layout

import "strings"

// Wrap splits body into lines no wider than width columns. Paragraphs are
// separated by newlines and wrapped independently; an empty paragraph keeps
// its blank line. Words are packed greedily and joined with one space. A
// word wider than the whole line is broken at grapheme boundaries, and its
// last piece may be followed by the next word on the same line.
//
// A width below 1 is treated as 1. A single glyph wider than width is
// replaced by Ellipsis so the bound still holds.
func Wrap(body string, width int) []string {
	if width < 1 {
		width = 1
	}
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var lines []string
	for _, para := range strings.Split(body, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range words {
		ww := Width(word)

		if ww > width {
			if cur.Len() > 0 {
				flush()
			}
			pieces := breakWord(word, width)
			out = append(out, pieces[:len(pieces)-1]...)
			last := pieces[len(pieces)-1]
			cur.WriteString(last)
			curW = Width(last)
			continue
		}

		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(word)
			curW = ww
		}
	}
	if cur.Len() > 0 {
		flush()
	}
	return out
}

// breakWord cuts word into pieces of at most width columns. It always
// returns at least one piece.
func breakWord(word string, width int) []string {
	var pieces []string
	var cur strings.Builder
	curW := 0
	for _, g := range graphemes(word) {
		gw := Width(g)
		if gw > width {
			g, gw = Ellipsis, Width(Ellipsis)
		}
		if curW+gw > width && cur.Len() > 0 {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(g)
		curW += gw
	}
	if cur.Len() > 0 || len(pieces) == 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}
