package utils

// Truncate shortens s to at most max characters, appending "..." when
// anything was cut. Multi-byte text is cut on a rune boundary.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
