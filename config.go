package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

const (
	defaultConfigFile = ".thread-canvas.yaml"
	defaultEnvFile    = ".env"
	defaultReadme     = "README.md"
)

// config is the fully resolved run configuration. Layers apply in order:
// defaults, YAML file, dotenv file, environment, flags.
type config struct {
	Token string `yaml:"-"`
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Issue string `yaml:"issue"`

	Width       int    `yaml:"width"`
	Title       string `yaml:"title"`
	MaxMessages int    `yaml:"max_messages"`
	MaxLines    int    `yaml:"max_lines_per_message"`
	Timezone    string `yaml:"timezone"`

	FilterBots bool `yaml:"filter_bots"`
	Reactions  bool `yaml:"reactions"`

	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`

	Format string `yaml:"format"`
	Readme string `yaml:"readme"`
}

func defaultConfig() config {
	return config{
		Issue:       canvas.DefaultThreadID,
		Width:       canvas.DefaultWidth,
		Title:       canvas.DefaultTitle,
		MaxMessages: canvas.DefaultMaxMessages,
		MaxLines:    canvas.DefaultMaxLines,
		Timezone:    "UTC",
		FilterBots:  true,
		Reactions:   true,
		MaxRetries:  3,
		RetryDelay:  time.Second,
		Format:      string(canvas.FormatText),
		Readme:      defaultReadme,
	}
}

// loadConfig applies the file and environment layers on top of the
// defaults. An explicitly named file must exist; the default names are
// optional.
func loadConfig(configPath, envPath string) (config, error) {
	cfg := defaultConfig()

	if err := loadYAML(&cfg, configPath); err != nil {
		return cfg, err
	}
	if err := loadDotenv(envPath); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(cfg *config, path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// loadDotenv loads variables into the process environment without
// overriding ones already set.
func loadDotenv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// applyEnv overlays the environment variables the chat workflow sets.
func applyEnv(cfg *config, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	str("GITHUB_TOKEN", &cfg.Token)
	str("REPO_OWNER", &cfg.Owner)
	str("REPO_NAME", &cfg.Repo)
	str("ISSUE_NUMBER", &cfg.Issue)
	str("CHAT_TITLE", &cfg.Title)
	str("CHAT_FORMAT", &cfg.Format)
	str("CHAT_TIMEZONE", &cfg.Timezone)
	str("README_FILE", &cfg.Readme)

	ints := []struct {
		key string
		dst *int
	}{
		{"CHAT_WIDTH", &cfg.Width},
		{"MAX_MESSAGES", &cfg.MaxMessages},
		{"MAX_LINES_PER_MESSAGE", &cfg.MaxLines},
		{"MAX_RETRIES", &cfg.MaxRetries},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer", e.key, v)
		}
		*e.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"FILTER_BOTS", &cfg.FilterBots},
		{"ENABLE_REACTIONS", &cfg.Reactions},
	}
	for _, e := range bools {
		if v := getenv(e.key); v != "" {
			*e.dst = strings.EqualFold(strings.TrimSpace(v), "true")
		}
	}

	if v := getenv("RETRY_DELAY"); v != "" {
		d, err := parseDelay(v)
		if err != nil {
			return fmt.Errorf("config: RETRY_DELAY=%q: %w", v, err)
		}
		cfg.RetryDelay = d
	}
	return nil
}

// parseDelay accepts a Go duration ("1500ms") or plain seconds ("1.5").
func parseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs < 0 {
		return 0, errors.New("want a duration or a number of seconds")
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// validate checks values the flags and environment cannot type-check.
func (c config) validate() error {
	if _, err := canvas.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("config: max retries must be at least 1, got %d", c.MaxRetries)
	}
	return nil
}

// canvasConfig maps the run configuration onto the renderer's.
func (c config) canvasConfig() canvas.Config {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		loc = time.UTC
	}
	cc := canvas.DefaultConfig()
	cc.Width = c.Width
	cc.Title = c.Title
	cc.ThreadID = c.Issue
	cc.MaxMessages = c.MaxMessages
	cc.MaxLinesPerMessage = c.MaxLines
	cc.Location = loc
	if c.Owner != "" && c.Repo != "" {
		cc.RepoPath = c.Owner + "/" + c.Repo
	}
	return cc
}

func (c config) issueURL() string {
	if c.Owner == "" || c.Repo == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s/issues/%s", c.Owner, c.Repo, c.Issue)
}
