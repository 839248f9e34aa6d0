package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
	"github.com/kylesnowschwartz/thread-canvas/readme"
)

const defaultSVGPath = "thread-canvas.svg"

func (a *app) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Splice the rendered thread into a README",
		Long: `update renders the thread and replaces the text between the chat markers
in the README. Without markers, a Community Chat section is added before the
"Latest Learnings" heading, or at the end of the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfig(cmd)
			if err != nil {
				return err
			}
			return a.runWatched(cmd.Context(), func(ctx context.Context) error {
				return a.update(ctx, cfg)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&a.flags.Readme, "readme", defaultReadme, "README to update (README_FILE)")
	f.BoolVar(&a.dryRun, "dry-run", false, "Print a diff instead of writing")
	f.BoolVar(&a.force, "force", false, "Overwrite even when the README has uncommitted changes")
	f.BoolVar(&a.requireMarkers, "require-markers", false, "Fail instead of adding a section when markers are missing")
	f.StringVar(&a.svgPath, "svg-path", defaultSVGPath, "Image path, relative to the README, for --format svg")
	return cmd
}

func (a *app) update(ctx context.Context, cfg config) error {
	out, f, err := a.produce(ctx, cfg)
	if err != nil {
		return err
	}

	var imagePath string
	if f == canvas.FormatSVG {
		imagePath = filepath.ToSlash(a.svgPath)
	}
	block, err := readme.Block(out, f, imagePath)
	if err != nil {
		return err
	}

	old, err := os.ReadFile(cfg.Readme)
	if err != nil {
		return fmt.Errorf("read readme: %w", err)
	}
	updated, err := readme.Splice(string(old), block, readme.Options{
		RequireMarkers: a.requireMarkers,
		IssueNumber:    cfg.Issue,
		IssueURL:       cfg.issueURL(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Readme, err)
	}

	if a.dryRun {
		fmt.Fprint(a.stdout, readme.Diff(string(old), updated))
		fmt.Fprintf(a.stderr, "%s dry run, %s not written\n", IconDryRun, cfg.Readme)
		return nil
	}

	readmeChanged := updated != string(old)
	var svgFile string
	if f == canvas.FormatSVG {
		svgFile = filepath.Join(filepath.Dir(cfg.Readme), filepath.FromSlash(imagePath))
		if current, err := os.ReadFile(svgFile); err == nil && string(current) == out+"\n" {
			svgFile = ""
		}
	}

	if !readmeChanged && svgFile == "" {
		fmt.Fprintf(a.stderr, "%s %s already up to date\n", IconUnchanged, cfg.Readme)
		return nil
	}
	if readmeChanged && !a.force && checkGitDirty(cfg.Readme) {
		return fmt.Errorf("%s has uncommitted changes; commit them or pass --force", cfg.Readme)
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		a.log().Info("wrote image", "path", svgFile, "size", formatSize(len(out)+1))
	}
	if !readmeChanged {
		fmt.Fprintf(a.stderr, "%s %s updated\n", IconUpdated, svgFile)
		return nil
	}

	info, err := os.Stat(cfg.Readme)
	if err != nil {
		return fmt.Errorf("stat readme: %w", err)
	}
	if err := os.WriteFile(cfg.Readme, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write readme: %w", err)
	}
	fmt.Fprintf(a.stderr, "%s %s updated with %s of chat\n",
		IconUpdated, cfg.Readme, countLabel(strings.Count(out, "\n")+1, "line"))
	return nil
}
