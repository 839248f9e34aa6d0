package canvas

import "fmt"

// Renderer turns a thread into one output string.
type Renderer interface {
	Render(msgs []Message, cfg Config) string
}

// Format names an output backend.
type Format string

const (
	FormatText Format = "text"
	FormatANSI Format = "ansi"
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatANSI, FormatHTML, FormatSVG}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// NewRenderer returns the backend for f. theme is only used by FormatANSI.
func NewRenderer(f Format, theme Theme) (Renderer, error) {
	switch f {
	case FormatText:
		return TextRenderer{}, nil
	case FormatANSI:
		return ANSIRenderer{Theme: theme}, nil
	case FormatHTML:
		return HTMLRenderer{}, nil
	case FormatSVG:
		return SVGRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}
