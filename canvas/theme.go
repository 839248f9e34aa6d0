package canvas

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// -- Colors ---------------------------------------------------------------
// Light values: ANSI 0-15 for accents (palette-adaptive), 256-color for grays
// (predictable). Dark values: ANSI 256-color codes tuned for dark backgrounds.
//
// | Name          | Light | Dark  | Light desc    | Dark desc      |
// |---------------|-------|-------|---------------|----------------|
// | TextPrimary   |   "0" | "252" | black         | light gray     |
// | TextSecondary |   "8" | "245" | ANSI dk gray  | gray           |
// | TextDim       | "242" | "243" | medium gray   | gray           |
// | Accent        |   "4" |  "75" | blue          | blue           |
// | Owner         |   "5" | "141" | magenta       | lavender       |
// | Live          |   "2" |  "76" | green         | green          |
// | Border        | "250" |  "60" | subtle gray   | muted blue     |

// palette resolves the adaptive colors for one background.
type palette struct {
	textPrimary   color.Color
	textSecondary color.Color
	textDim       color.Color
	accent        color.Color
	owner         color.Color
	live          color.Color
	border        color.Color
}

func newPalette(hasDarkBg bool) palette {
	ld := lipgloss.LightDark(hasDarkBg)
	c := lipgloss.Color
	return palette{
		textPrimary:   ld(c("0"), c("252")),
		textSecondary: ld(c("8"), c("245")),
		textDim:       ld(c("242"), c("243")),
		accent:        ld(c("4"), c("75")),
		owner:         ld(c("5"), c("141")),
		live:          ld(c("2"), c("76")),
		border:        ld(c("250"), c("60")),
	}
}

// Theme holds one style per kind of canvas row. Styles only add color, so
// they never change a row's width.
type Theme struct {
	Border        lipgloss.Style
	Title         lipgloss.Style
	Status        lipgloss.Style
	Empty         lipgloss.Style
	OwnerIdentity lipgloss.Style
	GuestIdentity lipgloss.Style
	OwnerBubble   lipgloss.Style
	GuestBubble   lipgloss.Style
	Footer        lipgloss.Style
}

// NewTheme returns the default theme for a dark or light terminal.
func NewTheme(hasDarkBg bool) Theme {
	p := newPalette(hasDarkBg)
	return Theme{
		Border:        lipgloss.NewStyle().Foreground(p.border),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(p.textPrimary),
		Status:        lipgloss.NewStyle().Foreground(p.live),
		Empty:         lipgloss.NewStyle().Foreground(p.textSecondary),
		OwnerIdentity: lipgloss.NewStyle().Bold(true).Foreground(p.owner),
		GuestIdentity: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		OwnerBubble:   lipgloss.NewStyle().Foreground(p.owner),
		GuestBubble:   lipgloss.NewStyle().Foreground(p.textPrimary),
		Footer:        lipgloss.NewStyle().Foreground(p.textDim),
	}
}

// style picks the style for a row kind.
func (t Theme) style(k rowKind) lipgloss.Style {
	switch k {
	case rowTitle:
		return t.Title
	case rowStatus:
		return t.Status
	case rowEmpty:
		return t.Empty
	case rowOwnerIdentity:
		return t.OwnerIdentity
	case rowGuestIdentity:
		return t.GuestIdentity
	case rowOwnerBubble:
		return t.OwnerBubble
	case rowGuestBubble:
		return t.GuestBubble
	case rowFooter:
		return t.Footer
	default:
		return t.Border
	}
}
