package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-cli/internal/form"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/store"
)

const cardsPerRow = 2

func (m *appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.coll.PageItems()

	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit

	case "up", "k":
		m.selected = clamp(m.selected-cardsPerRow, 0, max0(len(items)-1))
	case "down", "j":
		m.selected = clamp(m.selected+cardsPerRow, 0, max0(len(items)-1))
	case "left", "h":
		m.selected = clamp(m.selected-1, 0, max0(len(items)-1))
	case "right", "l":
		m.selected = clamp(m.selected+1, 0, max0(len(items)-1))

	case "n", "]":
		m.coll.NextPage()
		m.selected = 0
	case "p", "[":
		m.coll.PrevPage()
		m.selected = 0

	case "enter":
		if m.selected < len(items) {
			m.detailID = items[m.selected].ID
			m.detailTab = 0
			m.view = viewDetail
		}

	case "c":
		m.draft = form.New()
		m.formCursor = 0
		m.tlCursor = 0
		m.returnView = viewDashboard
		m.view = viewForm

	case "e":
		if m.selected < len(items) {
			m.draft = form.Open(items[m.selected])
			m.formCursor = 0
			m.tlCursor = 0
			m.returnView = viewDashboard
			m.view = viewForm
		}

	case "t":
		options := append([]string{pickNone}, m.coll.AvailableTags()...)
		m.openPick("filter:tag", options, m.coll.Tag())
	case "s":
		options := []string{pickNone}
		for _, s := range model.Statuses() {
			options = append(options, string(s))
		}
		m.openPick("filter:status", options, string(m.coll.Status()))
	case "f":
		options := []string{pickNone}
		for _, f := range model.BusinessFunctions() {
			options = append(options, string(f))
		}
		m.openPick("filter:function", options, string(m.coll.Function()))
	case "x":
		m.coll.ClearFilters()
		m.selected = 0

	case "a":
		m.view = viewAnalytics
		m.loading = true
		return m, m.loadAnalytics()

	case "r":
		m.loading = true
		return m, m.loadProjects()

	case "T":
		m.toggleTheme()
	}
	return m, nil
}

// toggleTheme flips light/dark and persists the choice.
func (m *appModel) toggleTheme() {
	dark := !lipgloss.HasDarkBackground()
	lipgloss.SetHasDarkBackground(dark)
	cfg, err := store.LoadConfig()
	if err != nil {
		return
	}
	if cfg.TUI == nil {
		cfg.TUI = &store.TUIConfig{}
	}
	if dark {
		cfg.TUI.Theme = "dark"
	} else {
		cfg.TUI.Theme = "light"
	}
	_ = store.SaveConfig(cfg)
}

func (m *appModel) viewDashboard() string {
	if m.modal != modalNone {
		return m.viewModal()
	}

	var b strings.Builder
	b.WriteString(styleAccent().Render("Project Portfolio"))
	b.WriteString("  ")
	b.WriteString(styleMuted().Render(m.client.BaseURL()))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(styleMuted().Render("Loading projects" + glyphEllipsis()))
		return b.String()
	}

	items := m.coll.PageItems()
	if len(items) == 0 {
		if m.coll.HasFilters() {
			b.WriteString(styleMuted().Render("No projects match the current filters. Press x to clear them."))
		} else {
			b.WriteString(styleMuted().Render("No projects yet. Press c to create one."))
		}
	} else {
		cardW := clamp((m.width-4)/cardsPerRow, 28, 60)
		var rows []string
		for i := 0; i < len(items); i += cardsPerRow {
			var cards []string
			for j := i; j < i+cardsPerRow && j < len(items); j++ {
				cards = append(cards, m.renderCard(items[j], cardW, j == m.selected))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		}
		b.WriteString(strings.Join(rows, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("enter open · c new · e edit · t/s/f filter · x clear · [/] page · a analytics · T theme · r reload · q quit"))
	return b.String()
}

func (m *appModel) renderCard(p model.Project, width int, selected bool) string {
	inner := width - 4

	title := truncate(p.Title, inner)
	status := statusStyle(p.Status).Render(string(p.Status))

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(title))
	lines = append(lines, status)
	if desc := firstLine(p.Description); desc != "" {
		lines = append(lines, styleMuted().Render(truncate(desc, inner)))
	}
	if len(p.Tags) > 0 {
		lines = append(lines, styleMuted().Render(truncate(strings.Join(p.Tags, " "+glyphBullet()+" "), inner)))
	}
	if prog := model.ProgressOf(p); prog.Total > 0 {
		lines = append(lines, styleMuted().Render(fmt.Sprintf("%d/%d milestones", prog.Completed, prog.Total)))
	}

	border := colorCardBorder
	if selected {
		border = colorSelectedBorder
	}
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m *appModel) filterLine() string {
	var parts []string
	if t := m.coll.Tag(); t != "" {
		parts = append(parts, "tag: "+t)
	}
	if s := m.coll.Status(); s != "" {
		parts = append(parts, "status: "+string(s))
	}
	if f := m.coll.Function(); f != "" {
		parts = append(parts, "function: "+string(f))
	}
	if len(parts) == 0 {
		return styleMuted().Render("All projects")
	}
	return styleMuted().Render("Filters " + glyphArrowRight() + " " + strings.Join(parts, "  "))
}

func (m *appModel) statusLine() string {
	var parts []string
	total := m.coll.TotalPages()
	if total > 0 {
		parts = append(parts, fmt.Sprintf("page %d/%d", m.coll.Page(), total))
	}
	parts = append(parts, fmt.Sprintf("%d projects", len(m.coll.Filtered())))
	line := styleMuted().Render(strings.Join(parts, " "+glyphBullet()+" "))
	if m.errMsg != "" {
		line += "  " + styleError().Render(m.errMsg)
	} else if m.notice != "" {
		line += "  " + styleAccent().Render(m.notice)
	}
	return line
}
