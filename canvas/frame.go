package canvas

import (
	"time"

	"github.com/kylesnowschwartz/thread-canvas/layout"
)

// -- Glyphs -------------------------------------------------------------------

const (
	glyphTopLeft     = "╭"
	glyphTopRight    = "╮"
	glyphBottomLeft  = "╰"
	glyphBottomRight = "╯"
	glyphTeeLeft     = "├"
	glyphTeeRight    = "┤"
	glyphHRule       = "─"
	glyphVRule       = "│"
	glyphLeader      = "·"

	iconChat  = "💬"
	iconLive  = "🟢"
	iconQuiet = "⚪"
	iconJoin  = "💭"
	iconWave  = "👋"
	iconOwner = "🔵"
	iconGuest = "⚪"
)

// -- Rows ---------------------------------------------------------------------

// rowKind tells the styled backend how to paint a row.
type rowKind int

const (
	rowBorder rowKind = iota
	rowTitle
	rowStatus
	rowSpacer
	rowEmpty
	rowOwnerIdentity
	rowGuestIdentity
	rowOwnerBubble
	rowGuestBubble
	rowFooter
)

// row is one canvas line. Framed rows hold only the inner slot and are
// wrapped in "│ " and " │" when rendered; unframed rows are complete.
type row struct {
	kind   rowKind
	text   string
	framed bool
}

// frame builds the window chrome for a canvas of a given width.
type frame struct {
	width    int
	title    string
	threadID string
}

func newFrame(cfg Config) frame {
	return frame{width: cfg.Width, title: cfg.Title, threadID: cfg.ThreadID}
}

// slot is the number of columns between "│ " and " │".
func (f frame) slot() int {
	return f.width - 4
}

func (f frame) border(left, right string) row {
	return row{kind: rowBorder, text: left + layout.Repeat(glyphHRule, f.width-2) + right}
}

func (f frame) inner(kind rowKind, content string) row {
	return row{kind: kind, text: layout.Fit(content, f.slot()), framed: true}
}

func (f frame) spacer() row {
	return f.inner(rowSpacer, "")
}

// header is the top border, the title bar, the status line and the
// separator above the message area.
func (f frame) header(participantCount int, now time.Time, loc *time.Location) []row {
	status := iconLive + " live"
	if participantCount == 0 {
		status = iconQuiet + " quiet"
	}
	title := layout.Leader(iconChat+" "+f.title, status, glyphLeader, f.slot())
	info := participantPhrase(participantCount) + " " + glyphLeader + " updated " + formatStamp(now, loc)
	return []row{
		f.border(glyphTopLeft, glyphTopRight),
		f.inner(rowTitle, title),
		f.inner(rowStatus, info),
		f.border(glyphTeeLeft, glyphTeeRight),
	}
}

// footer is the call to action and the bottom border.
func (f frame) footer() []row {
	return []row{
		f.border(glyphTeeLeft, glyphTeeRight),
		f.inner(rowFooter, iconJoin+" Join the conversation at Issue #"+f.threadID),
		f.border(glyphBottomLeft, glyphBottomRight),
	}
}

// emptyStateLines is the fixed height of emptyState.
const emptyStateLines = 5

// emptyState fills the message area when the thread has no comments.
func (f frame) emptyState() []row {
	center := func(s string) row {
		return f.inner(rowEmpty, layout.Center(s, f.slot()))
	}
	return []row{
		f.spacer(),
		center(iconWave + " Welcome to the community chat!"),
		center("No messages yet."),
		center("Comment on Issue #" + f.threadID + " to join in."),
		f.spacer(),
	}
}

// line renders r as plain text.
func (f frame) line(r row) string {
	if !r.framed {
		return r.text
	}
	return glyphVRule + " " + r.text + " " + glyphVRule
}
