package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kylesnowschwartz/thread-canvas/readme"
)

// previewWidth is the word-wrap width when stdout is not a terminal.
const previewWidth = 80

func (a *app) previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the README chat section as rendered markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd)
			if err != nil {
				return err
			}
			doc, err := os.ReadFile(cfg.Readme)
			if err != nil {
				return fmt.Errorf("read readme: %w", err)
			}
			section, ok := readme.Section(string(doc))
			if !ok {
				return fmt.Errorf("%s: %w", cfg.Readme, readme.ErrMarkersMissing)
			}
			out, err := renderMarkdown(section, a.terminalWidth(), isTerminal(a.stdout))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, out)
			return err
		},
	}
	cmd.Flags().StringVar(&a.flags.Readme, "readme", defaultReadme, "README to read (README_FILE)")
	return cmd
}

// autoStyle returns the glamour style for the output, with Document.Margin
// zeroed out.
func autoStyle(tty bool) ansi.StyleConfig {
	var style ansi.StyleConfig
	if !tty {
		style = styles.NoTTYStyleConfig
	} else if termenv.HasDarkBackground() {
		style = styles.DarkStyleConfig
	} else {
		style = styles.LightStyleConfig
	}
	style.Document.Margin = uintPtr(0)
	return style
}

func uintPtr(v uint) *uint { return &v }

// renderMarkdown renders markdown content for terminal display.
func renderMarkdown(content string, width int, tty bool) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(autoStyle(tty)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth is the width of stdout, or previewWidth when unknown.
func (a *app) terminalWidth() int {
	if f, ok := a.stdout.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return previewWidth
}

// darkBackground guesses the terminal background; non-terminals get the
// dark palette.
func (a *app) darkBackground() bool {
	if !isTerminal(a.stdout) {
		return true
	}
	return termenv.HasDarkBackground()
}
