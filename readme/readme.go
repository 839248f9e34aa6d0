// Package readme splices a rendered chat canvas into a Markdown document.
package readme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

const (
	StartMarker = "<!-- CHAT_START -->"
	EndMarker   = "<!-- CHAT_END -->"

	// DefaultAnchor is the heading a new chat section is inserted above.
	DefaultAnchor = "### 🧠 Latest Learnings"
)

// ErrMarkersMissing is returned when the document has no chat markers and
// the caller asked not to add them.
var ErrMarkersMissing = errors.New("readme: chat markers not found")

// Options controls Splice.
type Options struct {
	// RequireMarkers refuses to add a section when the markers are absent.
	RequireMarkers bool
	// Anchor overrides DefaultAnchor.
	Anchor string
	// IssueNumber and IssueURL fill the intro line of a new section.
	IssueNumber string
	IssueURL    string
}

// Block wraps rendered output for embedding between the markers. Plain text
// is fenced so Markdown keeps its alignment, HTML is embedded as is, and SVG
// is referenced as an image at svgPath.
func Block(output string, f canvas.Format, svgPath string) (string, error) {
	switch f {
	case canvas.FormatText:
		return "```\n" + strings.TrimRight(output, "\n") + "\n```", nil
	case canvas.FormatHTML:
		return strings.TrimRight(output, "\n"), nil
	case canvas.FormatSVG:
		if svgPath == "" {
			return "", errors.New("readme: svg output needs an image path")
		}
		return fmt.Sprintf("![chat](%s)", svgPath), nil
	default:
		return "", fmt.Errorf("readme: format %q cannot be embedded in markdown", f)
	}
}

// Splice replaces whatever sits between StartMarker and EndMarker with
// block. Without markers a "Community Chat" section is inserted before the
// anchor heading, or appended when the anchor is absent.
func Splice(doc, block string, opts Options) (string, error) {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		if opts.RequireMarkers {
			return "", ErrMarkersMissing
		}
		return insertSection(doc, block, opts), nil
	}

	bodyStart := start + len(StartMarker)
	end := strings.Index(doc[bodyStart:], EndMarker)
	if end < 0 {
		return "", fmt.Errorf("%w: %s has no matching %s", ErrMarkersMissing, StartMarker, EndMarker)
	}
	end += bodyStart

	var b strings.Builder
	b.WriteString(doc[:bodyStart])
	b.WriteString("\n")
	b.WriteString(block)
	b.WriteString("\n")
	b.WriteString(doc[end:])
	return b.String(), nil
}

// Section extracts the text between the markers, trimmed of surrounding
// newlines.
func Section(doc string) (string, bool) {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		return "", false
	}
	rest := doc[start+len(StartMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return "", false
	}
	return strings.Trim(rest[:end], "\n"), true
}

func insertSection(doc, block string, opts Options) string {
	section := newSection(block, opts)
	anchor := opts.Anchor
	if anchor == "" {
		anchor = DefaultAnchor
	}
	if i := strings.Index(doc, anchor); i >= 0 {
		return doc[:i] + section + "\n" + doc[i:]
	}
	if doc != "" && !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	return doc + section
}

func newSection(block string, opts Options) string {
	var b strings.Builder
	b.WriteString("\n### 💬 Community Chat\n")
	switch {
	case opts.IssueNumber != "" && opts.IssueURL != "":
		fmt.Fprintf(&b, "Join the conversation! Comment on [Issue #%s](%s) to see your message appear here.\n",
			opts.IssueNumber, opts.IssueURL)
	case opts.IssueNumber != "":
		fmt.Fprintf(&b, "Join the conversation! Comment on Issue #%s to see your message appear here.\n", opts.IssueNumber)
	}
	b.WriteString("\n")
	b.WriteString(StartMarker + "\n")
	b.WriteString(block + "\n")
	b.WriteString(EndMarker + "\n")
	return b.String()
}
