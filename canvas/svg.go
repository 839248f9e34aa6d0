package canvas

import (
	"fmt"
	"strings"
)

// SVG metrics for a 14px monospace font.
const (
	svgFontSize   = 14
	svgCellWidth  = 8.4
	svgLineHeight = 18
	svgPadding    = 12
)

// SVGRenderer wraps the text canvas in a minimal SVG document for
// destinations that cannot show preformatted text.
type SVGRenderer struct{}

// Render implements Renderer.
func (SVGRenderer) Render(msgs []Message, cfg Config) string {
	cfg = cfg.withDefaults()
	return WrapSVG(Compose(msgs, cfg), cfg.Width)
}

// WrapSVG places each line of canvas in its own <tspan>, sized for a
// canvas width columns wide.
func WrapSVG(canvas string, width int) string {
	lines := strings.Split(canvas, "\n")
	w := float64(width)*svgCellWidth + 2*svgPadding
	h := len(lines)*svgLineHeight + 2*svgPadding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%d" viewBox="0 0 %.0f %d">`+"\n", w, h, w, h)
	b.WriteString(`<rect width="100%" height="100%" rx="6" fill="#0d1117"/>` + "\n")
	fmt.Fprintf(&b, `<text font-family="ui-monospace, SFMono-Regular, Menlo, monospace" font-size="%d" fill="#c9d1d9" xml:space="preserve">`+"\n", svgFontSize)
	for i, line := range lines {
		y := svgPadding + (i+1)*svgLineHeight - 4
		fmt.Fprintf(&b, `<tspan x="%d" y="%d">%s</tspan>`+"\n", svgPadding, y, esc(line))
	}
	b.WriteString("</text>\n</svg>")
	return b.String()
}
