package github

import (
	"strings"
	"unicode/utf8"

	"github.com/kylesnowschwartz/thread-canvas/canvas"
)

// maxBodyRunes caps comment bodies before layout; longer bodies are cut and
// end in "...".
const maxBodyRunes = 500

// botIndicators are login fragments that mark automation accounts.
var botIndicators = []string{"bot", "github-actions", "dependabot", "renovate"}

// IsBot reports whether a comment was written by an automation account.
func IsBot(c Comment) bool {
	if c.User != nil && strings.EqualFold(c.User.Type, "bot") {
		return true
	}
	login := strings.ToLower(c.Login())
	for _, ind := range botIndicators {
		if strings.Contains(login, ind) {
			return true
		}
	}
	return false
}

// IsOwner reports whether a comment comes from the repository owner.
func IsOwner(c Comment, repoOwner string) bool {
	if c.AuthorAssociation == "OWNER" {
		return true
	}
	return repoOwner != "" && strings.EqualFold(c.Login(), repoOwner)
}

// ConvertOptions controls ToMessages.
type ConvertOptions struct {
	RepoOwner   string
	FilterBots  bool
	MaxMessages int // 0 keeps every comment
}

// ToMessages validates comments and converts them into canvas messages.
// Comments without an author are dropped, bots are dropped when
// FilterBots is set, and only the most recent MaxMessages are kept.
func ToMessages(comments []Comment, opts ConvertOptions) []canvas.Message {
	var msgs []canvas.Message
	for _, c := range comments {
		if c.Login() == "" {
			continue
		}
		if opts.FilterBots && IsBot(c) {
			continue
		}
		msgs = append(msgs, canvas.Message{
			Author:    c.Login(),
			Body:      sanitizeBody(c.Body),
			Timestamp: c.CreatedAt,
			IsOwner:   IsOwner(c, opts.RepoOwner),
			Reactions: c.Reactions.Counts(),
		})
	}
	if opts.MaxMessages > 0 && len(msgs) > opts.MaxMessages {
		msgs = msgs[len(msgs)-opts.MaxMessages:]
	}
	return msgs
}

// sanitizeBody trims a body and cuts it at maxBodyRunes.
func sanitizeBody(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxBodyRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxBodyRunes-3]) + "..."
}
