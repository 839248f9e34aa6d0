package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// perPage is the largest page size the comments endpoint accepts.
const perPage = 100

// ErrRateLimited is returned when GitHub answers 403, which it uses for
// both exhausted rate limits and insufficient permissions.
var ErrRateLimited = errors.New("github: rate limited or forbidden")

// Options configures a Client.
type Options struct {
	Owner string
	Repo  string
	Issue string
	Token string

	BaseURL    string        // defaults to DefaultBaseURL
	MaxRetries int           // attempts per page; defaults to 3
	RetryDelay time.Duration // first backoff; doubles per attempt; defaults to 1s

	HTTPClient *http.Client
	Limiter    *rate.Limiter // paces page requests; defaults to 4/s
	Logger     *slog.Logger
}

// Client fetches issue comments.
type Client struct {
	opts   Options
	http   *http.Client
	limit  *rate.Limiter
	logger *slog.Logger
}

// NewClient fills in defaults and returns a Client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	c := &Client{
		opts:   opts,
		http:   opts.HTTPClient,
		limit:  opts.Limiter,
		logger: opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.limit == nil {
		c.limit = rate.NewLimiter(rate.Every(250*time.Millisecond), 1)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// FetchComments returns every comment on the issue, oldest first.
func (c *Client) FetchComments(ctx context.Context) ([]Comment, error) {
	var all []Comment
	for page := 1; ; page++ {
		comments, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, comments...)
		if len(comments) < perPage {
			break
		}
	}
	c.logger.Info("fetched comments", "issue", c.opts.Issue, "count", len(all))
	return all, nil
}

// fetchPage gets one page, retrying transport errors and 5xx responses
// with exponential backoff.
func (c *Client) fetchPage(ctx context.Context, page int) ([]Comment, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%s/comments?per_page=%d&page=%d",
		c.opts.BaseURL, c.opts.Owner, c.opts.Repo, c.opts.Issue, perPage, page)

	var lastErr error
	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.opts.RetryDelay * time.Duration(1<<(attempt-1))
			c.logger.Warn("retrying comment fetch", "page", page, "attempt", attempt+1, "delay", delay, "err", lastErr)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
		if err := c.limit.Wait(ctx); err != nil {
			return nil, err
		}

		c.logger.Debug("fetching comments", "url", url, "attempt", attempt+1)
		comments, retry, err := c.get(ctx, url)
		if err == nil {
			return comments, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch comments page %d: %d attempts failed: %w", page, c.opts.MaxRetries, lastErr)
}

// get performs one request. retry reports whether the failure is worth
// another attempt.
func (c *Client) get(ctx context.Context, url string) (comments []Comment, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.opts.Owner+"/"+c.opts.Repo+"-chat-bot")
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "token "+c.opts.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
			if sec, perr := strconv.ParseInt(reset, 10, 64); perr == nil {
				c.logger.Warn("rate limit reached", "resets_at", time.Unix(sec, 0).UTC())
			}
		}
		return nil, false, ErrRateLimited
	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, true, fmt.Errorf("github: %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("github: %s", resp.Status)
	}

	comments, err = LoadComments(resp.Body)
	if err != nil {
		return nil, false, err
	}
	return comments, false, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
