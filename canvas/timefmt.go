package canvas

import (
	"strings"
	"time"
)

// timeLayouts are tried in order when parsing a message timestamp.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseTimestamp parses s with the first matching layout.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatClock renders a message timestamp as "15:04" in loc, or UnknownTime.
func formatClock(s string, loc *time.Location) string {
	t, ok := parseTimestamp(s)
	if !ok {
		return UnknownTime
	}
	return t.In(loc).Format("15:04")
}

// formatStamp renders the header's render time.
func formatStamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04 MST")
}
