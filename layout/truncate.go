package layout

// Truncate caps lines at maxLines. When lines overflow, the first
// maxLines-1 are kept and indicator becomes the last line. The indicator is
// not wrapped; callers fit it to their slot. A maxLines below 1 is treated
// as 1. The input slice is never modified.
func Truncate(lines []string, maxLines int, indicator string) []string {
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := make([]string, 0, maxLines)
	out = append(out, lines[:maxLines-1]...)
	return append(out, indicator)
}
