// Command thread-canvas renders a GitHub issue thread as a fixed-width chat
// canvas and keeps a README section up to date with it.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

// app holds flag values and output streams for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	configPath string
	envPath    string
	verbose    bool

	flags config // values bound to flags; only Changed ones are applied

	input  string
	watch  bool
	out    string
	dryRun bool
	force  bool

	requireMarkers bool
	svgPath        string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "thread-canvas",
		Short: "Render an issue thread as a chat canvas",
		Long: `thread-canvas turns the comments of a GitHub issue into a fixed-width
chat window (text, ANSI, HTML, or SVG) and splices it into a README between
<!-- CHAT_START --> and <!-- CHAT_END --> markers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = a.newLogger()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (default: "+defaultConfigFile+" when present)")
	pf.StringVar(&a.envPath, "env-file", "", "dotenv file (default: "+defaultEnvFile+" when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	pf.StringVar(&a.flags.Owner, "owner", "", "Repository owner (REPO_OWNER)")
	pf.StringVar(&a.flags.Repo, "repo", "", "Repository name (REPO_NAME)")
	pf.StringVar(&a.flags.Issue, "issue", "", "Issue number holding the thread (ISSUE_NUMBER)")
	pf.IntVar(&a.flags.Width, "width", 0, "Canvas width in columns (CHAT_WIDTH)")
	pf.StringVar(&a.flags.Title, "title", "", "Channel title (CHAT_TITLE)")
	pf.IntVar(&a.flags.MaxMessages, "max-messages", 0, "Most recent messages to show (MAX_MESSAGES)")
	pf.IntVar(&a.flags.MaxLines, "max-lines", 0, "Body lines per message (MAX_LINES_PER_MESSAGE)")
	pf.StringVar(&a.flags.Timezone, "timezone", "", "IANA zone for timestamps (CHAT_TIMEZONE)")
	pf.BoolVar(&a.flags.FilterBots, "filter-bots", true, "Drop comments from bot accounts (FILTER_BOTS)")
	pf.BoolVar(&a.flags.Reactions, "reactions", true, "Show reaction counts in html output (ENABLE_REACTIONS)")
	pf.StringVarP(&a.flags.Format, "format", "f", "", "Output format: text, ansi, html, svg (CHAT_FORMAT)")
	pf.StringVar(&a.input, "input", "", "Read comments from a JSON file instead of the API")
	pf.BoolVar(&a.watch, "watch", false, "Re-run whenever the --input file changes")

	root.AddCommand(a.renderCmd(), a.updateCmd(), a.previewCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to stderr; --verbose enables debug.
func (a *app) newLogger() *slog.Logger {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers files and environment under the flags the user set.
func (a *app) resolveConfig(cmd *cobra.Command) (config, error) {
	cfg, err := loadConfig(a.configPath, a.envPath)
	if err != nil {
		return cfg, err
	}
	a.applyFlags(cmd, &cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	a.log().Debug("resolved config",
		"owner", cfg.Owner, "repo", cfg.Repo, "issue", cfg.Issue,
		"width", cfg.Width, "format", cfg.Format, "max_messages", cfg.MaxMessages,
		"token", cfg.Token != "")
	return cfg, nil
}

func (a *app) applyFlags(cmd *cobra.Command, cfg *config) {
	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("owner", func() { cfg.Owner = a.flags.Owner })
	set("repo", func() { cfg.Repo = a.flags.Repo })
	set("issue", func() { cfg.Issue = a.flags.Issue })
	set("width", func() { cfg.Width = a.flags.Width })
	set("title", func() { cfg.Title = a.flags.Title })
	set("max-messages", func() { cfg.MaxMessages = a.flags.MaxMessages })
	set("max-lines", func() { cfg.MaxLines = a.flags.MaxLines })
	set("timezone", func() { cfg.Timezone = a.flags.Timezone })
	set("filter-bots", func() { cfg.FilterBots = a.flags.FilterBots })
	set("reactions", func() { cfg.Reactions = a.flags.Reactions })
	set("format", func() { cfg.Format = a.flags.Format })
	set("readme", func() { cfg.Readme = a.flags.Readme })
}

// log returns the command logger, or a discarding one before PersistentPreRun.
func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.logger
}
