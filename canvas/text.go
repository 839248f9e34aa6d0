package canvas

import "strings"

// layoutRows builds every row of the canvas: header, messages separated by
// spacer rows (or the empty state), a closing spacer and the footer.
func layoutRows(msgs []Message, cfg Config) []row {
	f := newFrame(cfg)
	msgs = recent(msgs, cfg.MaxMessages)

	rows := f.header(participants(msgs), cfg.Now(), cfg.Location)
	if len(msgs) == 0 {
		rows = append(rows, f.emptyState()...)
	} else {
		for i, msg := range msgs {
			if i > 0 {
				rows = append(rows, f.spacer())
			}
			rows = append(rows, bubbleRows(msg, cfg)...)
		}
		rows = append(rows, f.spacer())
	}
	return append(rows, f.footer()...)
}

// TextRenderer draws the thread as a plain fixed-width canvas.
type TextRenderer struct{}

// Render implements Renderer.
func (TextRenderer) Render(msgs []Message, cfg Config) string {
	return Compose(msgs, cfg)
}

// Compose renders msgs as a framed text canvas. Lines are joined with "\n"
// and every line is exactly cfg.Width columns wide.
func Compose(msgs []Message, cfg Config) string {
	cfg = cfg.withDefaults()
	f := newFrame(cfg)
	rows := layoutRows(msgs, cfg)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = f.line(r)
	}
	return strings.Join(lines, "\n")
}
