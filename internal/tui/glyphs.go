package tui

import (
	"os"
	"strings"
	"sync"

	"portfolio-cli/internal/store"
)

// Terminal apps can't change the user's font, but we can pick between
// Unicode and ASCII glyphs for affordances that some fonts render badly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference resolves env first, then the saved config.
func applyGlyphPreference(cfg *store.GlobalConfig) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PORTFOLIO_TUI_GLYPHS")))
	if v == "" && cfg != nil && cfg.TUI != nil {
		v = strings.ToLower(strings.TrimSpace(cfg.TUI.Glyphs))
	}
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

// glyphDone marks milestones before the active one.
func glyphDone() string {
	if glyphs() == glyphSetASCII {
		return "[x]"
	}
	return "✓"
}

// glyphActive marks the milestone the project is currently on.
func glyphActive() string {
	if glyphs() == glyphSetASCII {
		return "[>]"
	}
	return "◉"
}

// glyphPending marks milestones after the active one.
func glyphPending() string {
	if glyphs() == glyphSetASCII {
		return "[ ]"
	}
	return "○"
}

func glyphArrowRight() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}
