package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens s to width terminal cells, appending an ellipsis when it
// had to cut. ANSI sequences are width-zero.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	ell := glyphEllipsis()
	ellW := ansi.StringWidth(ell)
	if width <= ellW {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width-ellW, "") + ell
}

// firstLine returns everything up to the first newline, trimmed.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
