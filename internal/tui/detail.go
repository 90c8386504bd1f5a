package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-cli/internal/form"
	"portfolio-cli/internal/model"
)

func (m *appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewDashboard
		m.detailID = ""
	case "tab", "right", "l":
		m.detailTab = (m.detailTab + 1) % 2
	case "shift+tab", "left", "h":
		m.detailTab = (m.detailTab - 1 + 2) % 2
	case "e":
		if p, ok := m.coll.FindByID(m.detailID); ok {
			m.draft = form.Open(p)
			m.formCursor = 0
			m.tlCursor = 0
			m.returnView = viewDetail
			m.view = viewForm
		}
	case "r":
		m.loading = true
		return m, m.loadProjects()
	}
	return m, nil
}

func (m *appModel) viewDetail() string {
	if m.modal != modalNone {
		return m.viewModal()
	}

	p, ok := m.coll.FindByID(m.detailID)
	if !ok {
		return styleMuted().Render("Project no longer exists. Press esc.")
	}

	var b strings.Builder
	b.WriteString(styleAccent().Render(p.Title))
	b.WriteString("  ")
	b.WriteString(statusStyle(p.Status).Render(string(p.Status)))
	b.WriteString("\n")

	tabs := []string{"Overview", "Timeline"}
	var rendered []string
	for i, t := range tabs {
		if i == m.detailTab {
			rendered = append(rendered, lipgloss.NewStyle().Bold(true).Underline(true).Render(t))
		} else {
			rendered = append(rendered, styleMuted().Render(t))
		}
	}
	b.WriteString(strings.Join(rendered, "   "))
	b.WriteString("\n\n")

	width := clamp(m.width-4, 30, 100)
	if m.detailTab == 0 {
		b.WriteString(m.renderOverview(p, width))
	} else {
		b.WriteString(renderTimeline(p.Timeline, width))
	}

	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(styleError().Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("tab switch · e edit · esc back · q quit"))
	return b.String()
}

func (m *appModel) renderOverview(p model.Project, width int) string {
	var b strings.Builder

	if p.Description != "" {
		b.WriteString(renderMarkdown(p.Description, width))
		b.WriteString("\n\n")
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styleMuted().Render(label + ": "))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Tags", strings.Join(p.Tags, ", "))
	row("Function", string(p.PrimaryBusinessFunction))
	row("Individuals", strings.Join(p.IndividualsInvolved, ", "))
	if p.NTIStatus != "" {
		b.WriteString(styleMuted().Render("NTI: "))
		b.WriteString(ntiStatusStyle(p.NTIStatus).Render(string(p.NTIStatus)))
		if p.NTILink != "" && !ntiLinkSuppressed(p.NTIStatus) {
			b.WriteString("  " + styleMuted().Render(p.NTILink))
		}
		b.WriteString("\n")
	}
	row("Benefits", string(p.PrimaryBenefitsCategory))
	row("AI benefit", string(p.PrimaryAIBenefitCategory))
	row("Investment", p.InvestmentRequired)
	row("Near-term", p.ExpectedNearTermBenefits)
	row("Long-term", p.ExpectedLongTermBenefits)
	if roi, ok := model.ROI(p); ok {
		row("ROI", fmt.Sprintf("%.0f%%", roi))
	}

	if p.WhyWeBuiltThis != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("Why we built this") + "\n")
		b.WriteString(renderMarkdown(p.WhyWeBuiltThis, width))
		b.WriteString("\n")
	}
	if p.WhatWeveBuilt != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("What we've built") + "\n")
		b.WriteString(renderMarkdown(p.WhatWeveBuilt, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTimeline draws the milestone list: done before the active item,
// active highlighted, pending after it.
func renderTimeline(items []model.TimelineItem, width int) string {
	if len(items) == 0 {
		return styleMuted().Render("No timeline yet.")
	}
	active := model.ActiveTimelineIndex(items)

	var b strings.Builder
	for i, it := range items {
		var glyph string
		var style lipgloss.Style
		switch {
		case i < active:
			glyph = glyphDone()
			style = lipgloss.NewStyle().Foreground(statusPalette["green"])
		case i == active:
			glyph = glyphActive()
			style = styleAccent()
		default:
			glyph = glyphPending()
			style = styleMuted()
		}
		line := glyph + " " + it.Title
		if it.Date != "" {
			line += "  " + it.Date
		}
		b.WriteString(style.Render(truncate(line, width)))
		b.WriteString("\n")
		if it.Description != "" {
			b.WriteString(styleMuted().Render("   " + truncate(firstLine(it.Description), width-3)))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) updateAnalytics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveState()
		return m, tea.Quit
	case "esc", "backspace":
		m.view = viewDashboard
	case "r":
		m.loading = true
		return m, m.loadAnalytics()
	}
	return m, nil
}

func (m *appModel) viewAnalytics() string {
	var b strings.Builder
	b.WriteString(styleAccent().Render("Portfolio Analytics"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(styleMuted().Render("Loading" + glyphEllipsis()))
		return b.String()
	}
	if m.errMsg != "" {
		b.WriteString(styleError().Render(m.errMsg))
		b.WriteString("\n\n" + styleMuted().Render("esc back"))
		return b.String()
	}
	if m.overview == nil {
		b.WriteString(styleMuted().Render("No data."))
		return b.String()
	}

	o := m.overview
	b.WriteString(fmt.Sprintf("%d projects %s %d active milestones\n\n", o.TotalProjects, glyphBullet(), o.ActiveMilestones))

	section := func(title string) {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
		b.WriteString("\n")
	}

	if len(o.ProjectsByStatus) > 0 {
		section("By status")
		for _, sc := range o.ProjectsByStatus {
			b.WriteString(fmt.Sprintf("  %s %s %d\n", statusStyle(model.Status(sc.Status)).Render(sc.Status), glyphArrowRight(), sc.Count))
		}
		b.WriteString("\n")
	}
	if len(o.ProjectsByFunction) > 0 {
		section("By function")
		for _, fc := range o.ProjectsByFunction {
			b.WriteString(fmt.Sprintf("  %s %s %d\n", fc.Function, glyphArrowRight(), fc.Count))
		}
		b.WriteString("\n")
	}
	if len(o.TopTags) > 0 {
		section("Top tags")
		for _, tc := range o.TopTags {
			b.WriteString(fmt.Sprintf("  %s %s %d\n", tc.Tag, glyphArrowRight(), tc.Count))
		}
		b.WriteString("\n")
	}
	if m.timelineStats != nil && len(m.timelineStats.ProjectProgress) > 0 {
		section("Progress")
		for _, pp := range m.timelineStats.ProjectProgress {
			b.WriteString(fmt.Sprintf("  %s: %d/%d (%.0f%%)\n", truncate(pp.ProjectTitle, 40), pp.CompletedMilestones, pp.TotalMilestones, pp.ProgressPercentage))
		}
	}

	b.WriteString("\n" + styleMuted().Render("r reload · esc back · q quit"))
	return b.String()
}
