// Package canvas renders a discussion thread as a fixed-width chat window.
//
// The text backend guarantees that every output line is exactly
// Config.Width display columns wide. The ansi, html and svg backends share
// its wrapping, truncation and frame copy so all formats agree on what a
// message looks like.
package canvas

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Message is one comment in the thread. Callers validate and filter
// comments before they reach the renderer.
type Message struct {
	Author    string
	Body      string
	Timestamp string // RFC 3339 or one of timeLayouts; anything else renders as UnknownTime
	IsOwner   bool
	Reactions map[string]int // reaction kind -> count; html backend only
}

// Placeholder copy.
const (
	EmptyBody   = "(empty message)"
	UnknownTime = "unknown time"
)

// Layout limits.
const (
	MinWidth = 20

	DefaultWidth        = 50
	DefaultTitle        = "#builders-chat"
	DefaultThreadID     = "1"
	DefaultMaxLines     = 4
	DefaultMaxMessages  = 10
	DefaultMoreTemplate = "[... see full comment in Issue #{thread}]"
)

// Config controls a render. The zero value of every field selects its
// default; see DefaultConfig.
type Config struct {
	Width              int    // total columns of the text canvas, at least MinWidth
	Title              string // shown in the header
	ThreadID           string // issue number used in links and copy
	MaxLinesPerMessage int    // body rows per bubble, including the "see more" row
	MaxMessages        int    // only the most recent messages are rendered
	RepoPath           string // "owner/name", used by the html backend for links

	// MoreTemplate is the last row of a truncated body. "{thread}" is
	// replaced with ThreadID.
	MoreTemplate string

	// Location is the zone timestamps are shown in. Defaults to UTC.
	Location *time.Location

	// Now stamps the header. Inject a fixed clock for reproducible output.
	Now func() time.Time
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

// withDefaults fills unset fields and clamps out-of-range ones.
func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Width < MinWidth {
		c.Width = MinWidth
	}
	c.Title = singleLine(c.Title)
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	c.ThreadID = singleLine(c.ThreadID)
	if c.ThreadID == "" {
		c.ThreadID = DefaultThreadID
	}
	if c.MaxLinesPerMessage < 1 {
		c.MaxLinesPerMessage = DefaultMaxLines
	}
	if c.MaxMessages < 1 {
		c.MaxMessages = DefaultMaxMessages
	}
	if c.MoreTemplate == "" {
		c.MoreTemplate = DefaultMoreTemplate
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// moreIndicator is the row that replaces overflowing body lines.
func (c Config) moreIndicator() string {
	return strings.ReplaceAll(c.MoreTemplate, "{thread}", c.ThreadID)
}

// recent returns the last n messages.
func recent(msgs []Message, n int) []Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

// participants counts distinct authors.
func participants(msgs []Message) int {
	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		seen[m.Author] = struct{}{}
	}
	return len(seen)
}

// participantPhrase is the header status copy for n participants.
func participantPhrase(n int) string {
	switch n {
	case 0:
		return "no participants yet"
	case 1:
		return "1 participant"
	default:
		return strconv.Itoa(n) + " participants"
	}
}

// cleanBody removes control characters that would break column accounting
// and substitutes EmptyBody for blank bodies.
func cleanBody(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	if strings.TrimSpace(s) == "" {
		return EmptyBody
	}
	return s
}

// singleLine flattens s for use in one-line slots such as author names.
func singleLine(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
