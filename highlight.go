package main

import (
	"bytes"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/colorprofile"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

// markupHL syntax-highlights html and svg output written to a terminal.
// Constructed once with hasDarkBg; chroma objects are safe for reuse.
type markupHL struct {
	formatter chroma.Formatter
	style     *chroma.Style
}

// newMarkupHL picks a style for the background and a formatter for the
// color profile of w.
func newMarkupHL(hasDarkBg bool, profile colorprofile.Profile) *markupHL {
	styleName := "github"
	if hasDarkBg {
		styleName = "dracula"
	}
	return &markupHL{
		formatter: formatters.Get(chromaFormatter(profile)),
		style:     styles.Get(styleName),
	}
}

// detectProfile reports the color profile of stdout.
func detectProfile() colorprofile.Profile {
	return colorprofile.Detect(os.Stdout, os.Environ())
}

// highlight returns s colored for the terminal. Returns (s, false) for
// formats that have no markup or when tokenising fails.
func (h *markupHL) highlight(s string, f canvas.Format) (string, bool) {
	var lexer chroma.Lexer
	switch f {
	case canvas.FormatHTML:
		lexer = lexers.Get("html")
	case canvas.FormatSVG:
		lexer = lexers.Get("xml")
	default:
		return s, false
	}
	if lexer == nil {
		return s, false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, s)
	if err != nil {
		return s, false
	}
	var out bytes.Buffer
	if err := h.formatter.Format(&out, h.style, iterator); err != nil {
		return s, false
	}
	return out.String(), true
}

// chromaFormatter maps colorprofile profiles to chroma terminal formatter names.
func chromaFormatter(profile colorprofile.Profile) string {
	switch profile {
	case colorprofile.TrueColor:
		return "terminal16m"
	case colorprofile.ANSI256:
		return "terminal256"
	case colorprofile.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}
