package domain

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateLines truncates each line of s to at most maxWidth cells.
// Uses ANSI-aware truncation so escape codes don't corrupt the layout.
func TruncateLines(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, maxWidth, "")
	}
	return strings.Join(lines, "\n")
}

// Mask replaces every rune of s with an asterisk.
func Mask(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}
