package canvas

import "strings"

// ANSIRenderer draws the same canvas as TextRenderer with terminal colors.
// Stripping the escape sequences gives back the text canvas exactly.
type ANSIRenderer struct {
	Theme Theme
}

// Render implements Renderer.
func (r ANSIRenderer) Render(msgs []Message, cfg Config) string {
	cfg = cfg.withDefaults()
	rows := layoutRows(msgs, cfg)

	edgeLeft := r.Theme.Border.Render(glyphVRule + " ")
	edgeRight := r.Theme.Border.Render(" " + glyphVRule)

	lines := make([]string, len(rows))
	for i, rw := range rows {
		styled := r.Theme.style(rw.kind).Render(rw.text)
		if rw.framed {
			styled = edgeLeft + styled + edgeRight
		}
		lines[i] = styled
	}
	return strings.Join(lines, "\n")
}
