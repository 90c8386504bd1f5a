package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/store"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds, so
// every color is a lipgloss.AdaptiveColor and "faint" styling is only applied
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg     lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg     lipgloss.TerminalColor = ac("235", "255")
	colorSelectedBorder lipgloss.TerminalColor = ac("232", "255")
	colorCardBorder     lipgloss.TerminalColor = ac("250", "243")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorAccent    lipgloss.TerminalColor = ac("27", "62")

	colorError lipgloss.TerminalColor = ac("160", "203")
)

// statusPalette maps the semantic color tokens from the model to terminal
// colors.
var statusPalette = map[string]lipgloss.AdaptiveColor{
	"green":  ac("28", "40"),
	"yellow": ac("136", "178"),
	"orange": ac("166", "208"),
	"blue":   ac("27", "75"),
	"gray":   ac("245", "243"),
}

func statusStyle(s model.Status) lipgloss.Style {
	c, ok := statusPalette[model.StatusColor(s)]
	if !ok {
		c = statusPalette["gray"]
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

func ntiStatusStyle(s model.NTIStatus) lipgloss.Style {
	c, ok := statusPalette[model.NTIStatusColor(s)]
	if !ok {
		c = statusPalette["gray"]
	}
	return lipgloss.NewStyle().Foreground(c)
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored here; CLICOLOR semantics are for non-interactive
// output and can accidentally strip a TUI of color.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) PORTFOLIO_TUI_THEME=light|dark|auto
// 2) saved config theme
// 3) PORTFOLIO_TUI_DARKBG=true|false
// 4) COLORFGBG heuristic ("fg;bg"; bg 0-6 or 8 means dark)
func applyThemePreference(cfg *store.GlobalConfig) {
	setTheme := func(v string) bool {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return true
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return true
		}
		return false
	}

	if setTheme(os.Getenv("PORTFOLIO_TUI_THEME")) {
		return
	}
	if cfg != nil && cfg.TUI != nil && setTheme(cfg.TUI.Theme) {
		return
	}

	if v := strings.TrimSpace(os.Getenv("PORTFOLIO_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bg := strings.TrimSpace(parts[len(parts)-1])
		if n, err := strconv.Atoi(bg); err == nil {
			lipgloss.SetHasDarkBackground(n <= 6 || n == 8)
		}
	}
}
