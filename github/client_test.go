package github

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(srv *httptest.Server, mutate ...func(*Options)) *Client {
	opts := Options{
		Owner:      "octo",
		Repo:       "profile",
		Issue:      "2",
		Token:      "secret",
		BaseURL:    srv.URL,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
		HTTPClient: srv.Client(),
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Logger:     quietLogger(),
	}
	for _, m := range mutate {
		m(&opts)
	}
	return NewClient(opts)
}

func commentsJSON(t *testing.T, start, n int) []byte {
	t.Helper()
	comments := make([]Comment, n)
	for i := range comments {
		comments[i] = Comment{
			ID:        int64(start + i),
			User:      &User{Login: "user" + strconv.Itoa(start+i), Type: "User"},
			Body:      "hello",
			CreatedAt: "2024-07-22T10:23:00Z",
		}
	}
	b, err := json.Marshal(comments)
	require.NoError(t, err)
	return b
}

func TestFetchCommentsPaginates(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/repos/octo/profile/issues/2/comments", r.URL.Path)
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "octo/profile-chat-bot", r.Header.Get("User-Agent"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		switch r.URL.Query().Get("page") {
		case "1":
			w.Write(commentsJSON(t, 0, perPage))
		case "2":
			w.Write(commentsJSON(t, perPage, 3))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	comments, err := testClient(srv).FetchComments(context.Background())
	require.NoError(t, err)
	assert.Len(t, comments, perPage+3)
	assert.Equal(t, "user102", comments[len(comments)-1].Login())
	assert.Equal(t, int32(2), requests.Load())
}

func TestFetchCommentsWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	comments, err := testClient(srv, func(o *Options) { o.Token = "" }).FetchComments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestFetchCommentsRetriesServerErrors(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write(commentsJSON(t, 0, 2))
	}))
	defer srv.Close()

	comments, err := testClient(srv).FetchComments(context.Background())
	require.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchCommentsGivesUp(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv, func(o *Options) { o.MaxRetries = 2 }).FetchComments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 attempts failed")
	assert.Equal(t, int32(2), requests.Load())
}

func TestFetchCommentsForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Reset", "1721649600")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchComments(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestFetchCommentsNotFoundIsNotRetried(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchComments(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchCommentsCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testClient(srv, func(o *Options) { o.RetryDelay = time.Hour }).FetchComments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Options{Owner: "o", Repo: "r", Issue: "1"})
	assert.Equal(t, DefaultBaseURL, c.opts.BaseURL)
	assert.Equal(t, 3, c.opts.MaxRetries)
	assert.Equal(t, time.Second, c.opts.RetryDelay)
	assert.NotNil(t, c.http)
	assert.NotNil(t, c.limit)
	assert.NotNil(t, c.logger)
}
