package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, "#builders-chat", cfg.Title)
	assert.Equal(t, "1", cfg.Issue)
	assert.Equal(t, 10, cfg.MaxMessages)
	assert.Equal(t, 4, cfg.MaxLines)
	assert.True(t, cfg.FilterBots)
	assert.Equal(t, "text", cfg.Format)
	assert.NoError(t, cfg.validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := defaultConfig()
	err := applyEnv(&cfg, envMap(map[string]string{
		"GITHUB_TOKEN":          "tok",
		"REPO_OWNER":            "octo",
		"REPO_NAME":             "profile",
		"ISSUE_NUMBER":          "2",
		"CHAT_WIDTH":            " 60 ",
		"MAX_MESSAGES":          "5",
		"MAX_LINES_PER_MESSAGE": "3",
		"FILTER_BOTS":           "False",
		"ENABLE_REACTIONS":      "true",
		"RETRY_DELAY":           "1.5",
		"CHAT_FORMAT":           "html",
	}))
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "octo", cfg.Owner)
	assert.Equal(t, "profile", cfg.Repo)
	assert.Equal(t, "2", cfg.Issue)
	assert.Equal(t, 60, cfg.Width)
	assert.Equal(t, 5, cfg.MaxMessages)
	assert.Equal(t, 3, cfg.MaxLines)
	assert.False(t, cfg.FilterBots)
	assert.True(t, cfg.Reactions)
	assert.Equal(t, 1500*time.Millisecond, cfg.RetryDelay)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "#builders-chat", cfg.Title, "unset variables keep their defaults")
}

func TestApplyEnvInvalidInteger(t *testing.T) {
	cfg := defaultConfig()
	err := applyEnv(&cfg, envMap(map[string]string{"CHAT_WIDTH": "wide"}))
	assert.ErrorContains(t, err, "CHAT_WIDTH")
}

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"2", 2 * time.Second, false},
		{"0.25", 250 * time.Millisecond, false},
		{"750ms", 750 * time.Millisecond, false},
		{"-1", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDelay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfigLayers(t *testing.T) {
	clearChatEnv(t)
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "chat.yaml", "owner: from-yaml\nrepo: profile\nwidth: 40\nretry_delay: 2s\n")
	envPath := writeFile(t, dir, "chat.env", "CHAT_WIDTH=44\nCHAT_TITLE=#dotenv\n")
	t.Cleanup(func() {
		os.Unsetenv("CHAT_WIDTH")
		os.Unsetenv("CHAT_TITLE")
	})
	// godotenv does not override variables that are already set.
	os.Unsetenv("CHAT_WIDTH")
	os.Unsetenv("CHAT_TITLE")

	cfg, err := loadConfig(yamlPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.Owner)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
	assert.Equal(t, 44, cfg.Width, "environment beats the yaml file")
	assert.Equal(t, "#dotenv", cfg.Title)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.ErrorContains(t, err, "read config")

	_, err = loadConfig("", filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorContains(t, err, "load env file")
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "width: [unclosed\n")
	_, err := loadConfig(path, "")
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "pdf"
	assert.Error(t, cfg.validate())

	cfg = defaultConfig()
	cfg.Timezone = "Mars/Olympus"
	assert.ErrorContains(t, cfg.validate(), "timezone")

	cfg = defaultConfig()
	cfg.MaxRetries = 0
	assert.ErrorContains(t, cfg.validate(), "max retries")
}

func TestCanvasConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Owner, cfg.Repo, cfg.Issue = "octo", "profile", "9"
	cfg.Width = 64
	cfg.Timezone = "America/New_York"

	cc := cfg.canvasConfig()
	assert.Equal(t, 64, cc.Width)
	assert.Equal(t, "9", cc.ThreadID)
	assert.Equal(t, "octo/profile", cc.RepoPath)
	assert.Equal(t, "America/New_York", cc.Location.String())
	assert.Equal(t, canvas.DefaultMoreTemplate, cc.MoreTemplate)
	assert.Equal(t, "https://github.com/octo/profile/issues/9", cfg.issueURL())

	assert.Empty(t, defaultConfig().issueURL())
}
