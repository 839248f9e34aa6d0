package canvas

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// reactionOrder is GitHub's display order for reaction kinds.
var reactionOrder = []string{"+1", "-1", "laugh", "hooray", "confused", "heart", "rocket", "eyes"}

var reactionEmoji = map[string]string{
	"+1":       "👍",
	"-1":       "👎",
	"laugh":    "😄",
	"hooray":   "🎉",
	"confused": "😕",
	"heart":    "❤️",
	"rocket":   "🚀",
	"eyes":     "👀",
}

// HTMLRenderer renders the thread as a styled HTML chat window for
// markdown hosts that accept inline HTML. Bodies are wrapped and truncated
// exactly as in the text canvas, one <br> per wrapped line.
type HTMLRenderer struct {
	// NoStyles omits the embedded <style> block.
	NoStyles bool
}

// Render implements Renderer.
func (r HTMLRenderer) Render(msgs []Message, cfg Config) string {
	cfg = cfg.withDefaults()
	msgs = recent(msgs, cfg.MaxMessages)

	var parts []string
	if !r.NoStyles {
		parts = append(parts, chatStyles)
	}
	parts = append(parts, `<div class="chat-container">`)

	status := participantPhrase(participants(msgs)) + " • " + formatStamp(cfg.Now(), cfg.Location)
	parts = append(parts,
		`<div class="chat-header">`,
		`<div class="window-controls">`,
		`<span class="window-control control-close"></span>`,
		`<span class="window-control control-minimize"></span>`,
		`<span class="window-control control-maximize"></span>`,
		`</div>`,
		`<div class="header-title">`+esc(cfg.Title)+`</div>`,
		`<div class="header-meta">`+esc(status)+`</div>`,
		`</div>`,
	)

	parts = append(parts, `<div class="chat-messages">`)
	if len(msgs) == 0 {
		parts = append(parts,
			`<div class="empty-state">`,
			`<h3>`+iconWave+` Welcome to the community chat!</h3>`,
			`<p>No messages yet.</p>`,
			`<p><em>Comment on Issue #`+esc(cfg.ThreadID)+` to join in.</em></p>`,
			`</div>`,
		)
	}
	for _, msg := range msgs {
		parts = append(parts, messageHTML(msg, cfg)...)
	}
	parts = append(parts, `</div>`)

	parts = append(parts,
		`<div class="chat-footer">`,
		iconJoin+` <a href="`+esc(issueURL(cfg))+`" class="join-link" target="_blank">`,
		`Join the conversation in Issue #`+esc(cfg.ThreadID)+`</a>`,
		`</div>`,
		`</div>`,
	)
	return strings.Join(parts, "\n")
}

func messageHTML(msg Message, cfg Config) []string {
	owner := ""
	if msg.IsOwner {
		owner = " owner"
	}
	author := singleLine(msg.Author)

	lines, truncated := bodyLines(msg, cfg, cfg.Width-4)
	body := make([]string, len(lines))
	for i, l := range lines {
		if truncated && i == len(lines)-1 {
			body[i] = `<em><a href="` + esc(issueURL(cfg)) + `" target="_blank">` + esc(l) + `</a></em>`
			continue
		}
		body[i] = esc(l)
	}

	out := []string{
		`<div class="message` + owner + `">`,
		`<div class="message-header">`,
		`<a href="https://github.com/` + esc(author) + `" class="username` + owner + `" target="_blank">@` + esc(author) + `</a>`,
		`<span class="timestamp">` + esc(formatClock(msg.Timestamp, cfg.Location)) + `</span>`,
		`</div>`,
		`<div class="message-content">` + strings.Join(body, "<br>") + `</div>`,
	}
	if rx := reactionsHTML(msg.Reactions); rx != "" {
		out = append(out, rx)
	}
	return append(out, `</div>`)
}

// reactionsHTML renders non-zero reaction counts in GitHub's order, with
// unknown kinds after the known ones in name order.
func reactionsHTML(reactions map[string]int) string {
	var kinds []string
	known := make(map[string]bool, len(reactionOrder))
	for _, k := range reactionOrder {
		known[k] = true
		if reactions[k] > 0 {
			kinds = append(kinds, k)
		}
	}
	var extra []string
	for k, n := range reactions {
		if !known[k] && n > 0 {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	kinds = append(kinds, extra...)
	if len(kinds) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="reactions">`)
	for _, k := range kinds {
		label := reactionEmoji[k]
		if label == "" {
			label = ":" + k + ":"
		}
		b.WriteString(`<span class="reaction">` + esc(label) + " " + strconv.Itoa(reactions[k]) + `</span>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func issueURL(cfg Config) string {
	if cfg.RepoPath == "" {
		return "#"
	}
	return "https://github.com/" + cfg.RepoPath + "/issues/" + cfg.ThreadID
}

func esc(s string) string {
	return html.EscapeString(s)
}
