package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-cli/internal/currency"
	"portfolio-cli/internal/model"
)

// Modal editing. A modal edits exactly one value; the target string says
// which one ("form:title", "tl:date", "filter:status", ...). Esc cancels,
// enter commits.

func (m *appModel) openInput(target, label, value string) {
	m.modal = modalInput
	m.inputTarget = target
	m.input.Placeholder = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *appModel) openText(target, value string) {
	m.modal = modalText
	m.inputTarget = target
	m.area.SetValue(value)
	m.area.SetWidth(clamp(m.width-8, 20, 76))
	m.area.SetHeight(6)
	m.area.Focus()
}

func (m *appModel) openPick(target string, options []string, current string) {
	m.modal = modalPick
	m.pickTarget = target
	m.pickOptions = options
	m.pickCursor = 0
	for i, opt := range options {
		if opt == current {
			m.pickCursor = i
			break
		}
	}
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.inputTarget = ""
	m.pickTarget = ""
	m.input.Blur()
	m.area.Blur()
}

func (m *appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalInput:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "enter":
			target := m.inputTarget
			value := m.input.Value()
			m.closeModal()
			m.commitInput(target, value)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case modalText:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "ctrl+d", "ctrl+s":
			target := m.inputTarget
			value := m.area.Value()
			m.closeModal()
			m.commitInput(target, value)
			return m, nil
		}
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		return m, cmd

	case modalPick:
		switch msg.String() {
		case "esc":
			m.closeModal()
			return m, nil
		case "up", "k":
			m.pickCursor = clamp(m.pickCursor-1, 0, len(m.pickOptions)-1)
			return m, nil
		case "down", "j":
			m.pickCursor = clamp(m.pickCursor+1, 0, len(m.pickOptions)-1)
			return m, nil
		case "enter":
			target := m.pickTarget
			var choice string
			if m.pickCursor < len(m.pickOptions) {
				choice = m.pickOptions[m.pickCursor]
			}
			m.closeModal()
			m.commitPick(target, choice)
			return m, nil
		}
		return m, nil

	case modalConfirmDiscard:
		switch msg.String() {
		case "y", "enter":
			m.closeModal()
			m.draft = nil
			m.view = m.returnView
		case "n", "esc":
			m.closeModal()
		}
		return m, nil
	}
	return m, nil
}

func (m *appModel) commitInput(target, value string) {
	if m.draft == nil && (strings.HasPrefix(target, "form:") || strings.HasPrefix(target, "tl:")) {
		return
	}
	switch target {
	case "form:title":
		m.draft.Title = value
	case "form:description":
		m.draft.Description = value
	case "form:why":
		m.draft.WhyWeBuiltThis = value
	case "form:what":
		m.draft.WhatWeveBuilt = value
	case "form:tag":
		m.draft.AddTag(value)
	case "form:individual":
		m.draft.AddIndividual(value)
	case "form:nti-link":
		m.draft.NTILink = value
	case "form:investment":
		m.draft.InvestmentRequired = parseMoneyInput(value)
	case "form:near-term":
		m.draft.ExpectedNearTermBenefits = parseMoneyInput(value)
	case "form:long-term":
		m.draft.ExpectedLongTermBenefits = parseMoneyInput(value)
	case "tl:title":
		m.draft.Timeline.SetTitle(m.tlCursor, value)
	case "tl:description":
		m.draft.Timeline.SetDescription(m.tlCursor, value)
	case "tl:date":
		m.draft.Timeline.SetDate(m.tlCursor, value)
	}
}

func (m *appModel) commitPick(target, choice string) {
	if m.draft == nil && strings.HasPrefix(target, "form:") {
		return
	}
	switch target {
	case "filter:tag":
		if choice == pickNone {
			choice = ""
		}
		m.coll.SetTag(choice)
		m.selected = 0
	case "filter:status":
		if choice == pickNone {
			choice = ""
		}
		m.coll.SetStatus(model.Status(choice))
		m.selected = 0
	case "filter:function":
		if choice == pickNone {
			choice = ""
		}
		m.coll.SetFunction(model.BusinessFunction(choice))
		m.selected = 0
	case "form:status":
		m.draft.Status = model.Status(choice)
	case "form:nti-status":
		m.draft.NTIStatus = model.NTIStatus(choice)
	case "form:benefits":
		m.draft.BenefitsCategory = model.BenefitsCategory(choice)
	case "form:ai-benefits":
		m.draft.AIBenefitCategory = model.AIBenefitCategory(choice)
	case "form:function":
		m.draft.PrimaryBusinessFunction = model.BusinessFunction(choice)
	case "form:remove-tag":
		m.draft.RemoveTag(choice)
	case "form:remove-individual":
		m.draft.RemoveIndividual(choice)
	}
}

// pickNone is the "clear this filter" option.
const pickNone = "(any)"

func parseMoneyInput(s string) *float64 {
	v, ok := currency.Parse(s)
	if !ok {
		return nil
	}
	return &v
}

func (m *appModel) viewModal() string {
	var body string
	switch m.modal {
	case modalInput:
		body = m.input.Placeholder + "\n\n" + m.input.View() + "\n\n" + styleMuted().Render("enter save · esc cancel")
	case modalText:
		body = m.area.View() + "\n\n" + styleMuted().Render("ctrl+d save · esc cancel")
	case modalPick:
		var b strings.Builder
		for i, opt := range m.pickOptions {
			if i == m.pickCursor {
				b.WriteString(lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(" " + opt + " "))
			} else {
				b.WriteString(" " + opt)
			}
			b.WriteByte('\n')
		}
		b.WriteString("\n" + styleMuted().Render("enter select · esc cancel"))
		body = b.String()
	case modalConfirmDiscard:
		body = "Discard unsaved changes?\n\n" + styleMuted().Render("y discard · n keep editing")
	default:
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Padding(1, 2).
		Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
