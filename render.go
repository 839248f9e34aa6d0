package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the thread to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return a.runWatched(cmd.Context(), func(ctx context.Context) error {
				out, f, err := a.produce(ctx, cfg)
				if err != nil {
					return err
				}
				return a.emit(out, f)
			})
		},
	}
	cmd.Flags().StringVarP(&a.out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

// produce loads, converts, and renders the thread in the configured format.
func (a *app) produce(ctx context.Context, cfg config) (string, canvas.Format, error) {
	f, err := canvas.ParseFormat(cfg.Format)
	if err != nil {
		return "", "", err
	}
	comments, err := loadComments(ctx, cfg, a.input, a.log())
	if err != nil {
		return "", "", err
	}
	msgs := toMessages(comments, cfg)

	r, err := canvas.NewRenderer(f, canvas.NewTheme(a.darkBackground()))
	if err != nil {
		return "", "", err
	}
	out := r.Render(msgs, cfg.canvasConfig())
	a.log().Info("rendered thread",
		"messages", len(msgs), "dropped", len(comments)-len(msgs),
		"format", f, "size", formatSize(len(out)))
	return out, f, nil
}

// emit writes output to --out, or to stdout with terminal niceties: ANSI is
// downsampled to the terminal's profile and markup is highlighted.
func (a *app) emit(out string, f canvas.Format) error {
	if a.out != "" {
		if err := os.WriteFile(a.out, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		a.log().Info("wrote output", "path", a.out, "size", formatSize(len(out)+1))
		return nil
	}

	w := a.stdout
	if isTerminal(a.stdout) {
		profile := detectProfile()
		switch f {
		case canvas.FormatANSI:
			w = &colorprofile.Writer{Forward: a.stdout, Profile: profile}
		case canvas.FormatHTML, canvas.FormatSVG:
			out, _ = newMarkupHL(a.darkBackground(), profile).highlight(out, f)
		}
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}

// runWatched runs fn once, then again after every change to --input when
// --watch is set. Failures while watching are logged, not fatal.
func (a *app) runWatched(ctx context.Context, fn func(context.Context) error) error {
	if a.watch && a.input == "" {
		return errors.New("--watch needs --input")
	}
	if err := fn(ctx); err != nil {
		return err
	}
	if !a.watch {
		return nil
	}

	w := newInputWatcher(a.input, a.log())
	err := w.run(ctx, func() {
		if err := fn(ctx); err != nil {
			a.log().Error("re-render failed", "err", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
