package main

import (
	"fmt"
	"strings"
)

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// Preview flattens text to one line and shortens it to at most maxLen
// runes, keeping the start.
func Preview(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	flat := []rune(strings.Join(strings.Fields(text), " "))
	if len(flat) <= maxLen {
		return string(flat)
	}
	if maxLen < 4 {
		return string(flat[:maxLen])
	}
	return string(flat[:maxLen-3]) + "..."
}

// optionLabel returns the letter shown for a quiz option index.
func optionLabel(i int) string {
	return string(rune('A' + i))
}
