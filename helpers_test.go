package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// threadJSON is a small comment export in the GitHub REST shape.
const threadJSON = `[
  {"id": 1, "user": {"login": "alice", "type": "User"}, "body": "Hello from the first comment",
   "created_at": "2024-07-22T10:23:00Z", "author_association": "NONE"},
  {"id": 2, "user": {"login": "octo", "type": "User"}, "body": "Thanks for stopping by!",
   "created_at": "2024-07-22T11:47:00Z", "author_association": "OWNER",
   "reactions": {"total_count": 1, "heart": 1}},
  {"id": 3, "user": {"login": "renovate[bot]", "type": "Bot"}, "body": "Update dependency",
   "created_at": "2024-07-22T12:00:00Z", "author_association": "NONE"}
]`

// chatEnv lists every variable applyEnv reads.
var chatEnv = []string{
	"GITHUB_TOKEN", "REPO_OWNER", "REPO_NAME", "ISSUE_NUMBER", "CHAT_WIDTH",
	"CHAT_TITLE", "MAX_MESSAGES", "MAX_LINES_PER_MESSAGE", "FILTER_BOTS",
	"ENABLE_REACTIONS", "MAX_RETRIES", "RETRY_DELAY", "CHAT_FORMAT",
	"CHAT_TIMEZONE", "README_FILE",
}

// clearChatEnv blanks the chat variables so the host environment cannot
// leak into a test. Empty values are ignored by applyEnv.
func clearChatEnv(t *testing.T) {
	t.Helper()
	for _, k := range chatEnv {
		t.Setenv(k, "")
	}
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
