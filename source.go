package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
	"github.com/kylesnowschwartz/thread-canvas/github"
)

// sampleOwner stands in for the repository owner in the sample thread.
const sampleOwner = "you"

// loadComments reads the thread from --input when given, from the API when
// a token and repository are configured, and from the sample thread
// otherwise.
func loadComments(ctx context.Context, cfg config, input string, logger *slog.Logger) ([]github.Comment, error) {
	switch {
	case input != "":
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		comments, err := github.LoadComments(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		logger.Debug("loaded comments", "file", input, "count", len(comments))
		return comments, nil

	case cfg.Token != "" && cfg.Owner != "" && cfg.Repo != "":
		client := github.NewClient(github.Options{
			Owner:      cfg.Owner,
			Repo:       cfg.Repo,
			Issue:      cfg.Issue,
			Token:      cfg.Token,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
			Logger:     logger,
		})
		return client.FetchComments(ctx)

	default:
		owner := cfg.Owner
		if owner == "" {
			owner = sampleOwner
		}
		logger.Warn("no GITHUB_TOKEN or repository configured, using sample comments")
		return github.SampleComments(owner), nil
	}
}

// toMessages converts comments for rendering under cfg. Without a
// configured owner only the OWNER association marks owner messages.
func toMessages(comments []github.Comment, cfg config) []canvas.Message {
	msgs := github.ToMessages(comments, github.ConvertOptions{
		RepoOwner:   cfg.Owner,
		FilterBots:  cfg.FilterBots,
		MaxMessages: cfg.MaxMessages,
	})
	if !cfg.Reactions {
		for i := range msgs {
			msgs[i].Reactions = nil
		}
	}
	return msgs
}
