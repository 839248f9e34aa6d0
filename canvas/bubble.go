package canvas

import (
	"github.com/kylesnowschwartz/thread-canvas/layout"
)

// Bubble geometry. A bubble is "│ " + content + " │" inside its border, so
// it is always 4 columns wider than its content.
const (
	bubbleChrome   = 4
	minBubbleWidth = 12
)

// bubbleMaxWidth caps a bubble at four fifths of the slot so owner and
// guest bubbles never line up on both edges.
func bubbleMaxWidth(slot int) int {
	w := slot * 4 / 5
	if w < minBubbleWidth {
		w = min(slot, minBubbleWidth)
	}
	return w
}

// contentBudget is the widest body line a bubble in slot can hold.
func contentBudget(slot int) int {
	return max(bubbleMaxWidth(slot)-bubbleChrome, 1)
}

// bubbleWidth sizes a bubble to its widest body line. Lines wider than the
// budget (only the "see more" row can be) count as the budget.
func bubbleWidth(lines []string, slot int) int {
	budget := contentBudget(slot)
	widest := 0
	for _, l := range lines {
		widest = max(widest, min(layout.Width(l), budget))
	}
	w := widest + bubbleChrome
	w = max(w, min(minBubbleWidth, bubbleMaxWidth(slot)))
	return min(w, bubbleMaxWidth(slot))
}

// bodyLines wraps and truncates a message body for a bubble in slot. The
// flag reports whether the last line is the "see more" indicator.
func bodyLines(msg Message, cfg Config, slot int) ([]string, bool) {
	lines := layout.Wrap(cleanBody(msg.Body), contentBudget(slot))
	truncated := len(lines) > cfg.MaxLinesPerMessage
	return layout.Truncate(lines, cfg.MaxLinesPerMessage, cfg.moreIndicator()), truncated
}

// identity is the line above a bubble: who wrote it and when.
func identity(msg Message, cfg Config) string {
	author := singleLine(msg.Author)
	clock := formatClock(msg.Timestamp, cfg.Location)
	if msg.IsOwner {
		return clock + " " + glyphLeader + " " + author + " " + iconOwner
	}
	return iconGuest + " " + author + " " + glyphLeader + " " + clock
}

// bubbleRows renders one message: an identity row and a bordered bubble.
// Owner messages sit against the right edge of the slot, everyone else
// against the left; the other side is filled with spaces.
func bubbleRows(msg Message, cfg Config) []row {
	slot := cfg.Width - 4
	lines, _ := bodyLines(msg, cfg, slot)
	bw := bubbleWidth(lines, slot)
	filler := layout.Spaces(slot - bw)

	idKind, bubbleKind := rowGuestIdentity, rowGuestBubble
	place := func(piece string) string { return piece + filler }
	id := layout.Fit(identity(msg, cfg), slot)
	if msg.IsOwner {
		idKind, bubbleKind = rowOwnerIdentity, rowOwnerBubble
		place = func(piece string) string { return filler + piece }
		id = layout.PadLeft(identity(msg, cfg), slot)
	}

	rows := make([]row, 0, len(lines)+3)
	rows = append(rows, row{kind: idKind, text: id, framed: true})
	rows = append(rows, row{kind: bubbleKind, framed: true,
		text: place(glyphTopLeft + layout.Repeat(glyphHRule, bw-2) + glyphTopRight)})
	for _, l := range lines {
		rows = append(rows, row{kind: bubbleKind, framed: true,
			text: place(glyphVRule + " " + layout.Fit(l, bw-bubbleChrome) + " " + glyphVRule)})
	}
	rows = append(rows, row{kind: bubbleKind, framed: true,
		text: place(glyphBottomLeft + layout.Repeat(glyphHRule, bw-2) + glyphBottomRight)})
	return rows
}

// RenderMessage renders a single message as complete canvas lines, each
// exactly cfg.Width columns wide.
func RenderMessage(msg Message, cfg Config) []string {
	cfg = cfg.withDefaults()
	f := newFrame(cfg)
	rows := bubbleRows(msg, cfg)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = f.line(r)
	}
	return out
}
