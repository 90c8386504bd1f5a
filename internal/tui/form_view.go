package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio-cli/internal/currency"
	"portfolio-cli/internal/form"
	"portfolio-cli/internal/model"
)

// The editor mirrors the three page layout of the original dashboard:
// basics, NTI + financials, timeline. Pages 1 and 2 are field lists where
// enter opens a modal for the highlighted field; page 3 edits the timeline
// in place.

type formField struct {
	key   string
	label string
}

var formPage1 = []formField{
	{"form:title", "Title"},
	{"form:description", "Description"},
	{"form:status", "Status"},
	{"form:tag", "Add tag"},
	{"form:remove-tag", "Remove tag"},
	{"form:why", "Why we built this"},
	{"form:what", "What we've built"},
	{"form:individual", "Add individual"},
	{"form:remove-individual", "Remove individual"},
}

var formPage2 = []formField{
	{"form:nti-status", "NTI status"},
	{"form:nti-link", "NTI link"},
	{"form:benefits", "Benefits category"},
	{"form:ai-benefits", "AI benefit category"},
	{"form:investment", "Investment required"},
	{"form:near-term", "Expected near-term benefits"},
	{"form:long-term", "Expected long-term benefits"},
	{"form:function", "Primary business function"},
}

func (m *appModel) currentFields() []formField {
	switch m.draft.Page {
	case 1:
		return formPage1
	case 2:
		return formPage2
	}
	return nil
}

// ntiLinkSuppressed reports whether the NTI link field is locked out.
// The link only means something once an NTI effort exists, so while the
// status sits on Not Applicable the field is read-only everywhere.
func ntiLinkSuppressed(status model.NTIStatus) bool {
	return status == model.NTINotApplicable
}

func (m *appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.draft
	if f == nil {
		m.view = m.returnView
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.modal = modalConfirmDiscard
		return m, nil

	case "ctrl+s":
		// Ignore repeated saves while a request is in flight.
		if m.saving {
			return m, nil
		}
		draft, err := f.Submit()
		if err != nil {
			// Validation errors render inline; nothing leaves the client.
			return m, nil
		}
		m.saving = true
		m.errMsg = ""
		return m, m.saveDraft(draft, f.Editing(), f.ProjectID())

	case "right", "pgdown":
		f.NextPage()
		m.formCursor = 0
		return m, nil
	case "left", "pgup":
		f.PrevPage()
		m.formCursor = 0
		return m, nil
	}

	if f.Page == 3 {
		return m.updateFormTimeline(msg)
	}

	fields := m.currentFields()
	switch msg.String() {
	case "up", "k":
		m.formCursor = clamp(m.formCursor-1, 0, max0(len(fields)-1))
	case "down", "j":
		m.formCursor = clamp(m.formCursor+1, 0, max0(len(fields)-1))
	case "enter":
		if m.formCursor < len(fields) {
			m.openFieldEditor(fields[m.formCursor])
		}
	}
	return m, nil
}

func (m *appModel) openFieldEditor(field formField) {
	f := m.draft
	switch field.key {
	case "form:title":
		m.openInput(field.key, field.label, f.Title)
	case "form:description":
		m.openText(field.key, f.Description)
	case "form:why":
		m.openText(field.key, f.WhyWeBuiltThis)
	case "form:what":
		m.openText(field.key, f.WhatWeveBuilt)
	case "form:tag":
		if len(f.Tags) >= form.MaxTags {
			m.notice = fmt.Sprintf("At most %d tags", form.MaxTags)
			return
		}
		m.openInput(field.key, field.label, "")
	case "form:remove-tag":
		if len(f.Tags) == 0 {
			return
		}
		m.openPick(field.key, f.Tags, "")
	case "form:individual":
		m.openInput(field.key, field.label, "")
	case "form:remove-individual":
		if len(f.IndividualsInvolved) == 0 {
			return
		}
		m.openPick(field.key, f.IndividualsInvolved, "")
	case "form:status":
		m.openPick(field.key, enumOptions(model.Statuses()), string(f.Status))
	case "form:nti-status":
		m.openPick(field.key, enumOptions(model.NTIStatuses()), string(f.NTIStatus))
	case "form:nti-link":
		if ntiLinkSuppressed(f.NTIStatus) {
			return
		}
		m.openInput(field.key, field.label, f.NTILink)
	case "form:benefits":
		m.openPick(field.key, enumOptions(model.BenefitsCategories()), string(f.BenefitsCategory))
	case "form:ai-benefits":
		m.openPick(field.key, enumOptions(model.AIBenefitCategories()), string(f.AIBenefitCategory))
	case "form:investment":
		m.openInput(field.key, field.label, moneyString(f.InvestmentRequired))
	case "form:near-term":
		m.openInput(field.key, field.label, moneyString(f.ExpectedNearTermBenefits))
	case "form:long-term":
		m.openInput(field.key, field.label, moneyString(f.ExpectedLongTermBenefits))
	case "form:function":
		m.openPick(field.key, enumOptions(model.BusinessFunctions()), string(f.PrimaryBusinessFunction))
	}
}

func (m *appModel) updateFormTimeline(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tl := &m.draft.Timeline
	last := max0(len(tl.Items) - 1)

	switch msg.String() {
	case "up", "k":
		m.tlCursor = clamp(m.tlCursor-1, 0, last)
	case "down", "j":
		m.tlCursor = clamp(m.tlCursor+1, 0, last)
	case "a":
		tl.Add()
		m.tlCursor = len(tl.Items) - 1
	case "d":
		tl.Remove(m.tlCursor)
		m.tlCursor = clamp(m.tlCursor, 0, max0(len(tl.Items)-1))
	case " ":
		tl.SetActive(m.tlCursor, true)
	case "K":
		tl.MoveUp(m.tlCursor)
		if m.tlCursor > 0 {
			m.tlCursor--
		}
	case "J":
		tl.MoveDown(m.tlCursor)
		if m.tlCursor < len(tl.Items)-1 {
			m.tlCursor++
		}
	case "enter", "e":
		if m.tlCursor < len(tl.Items) {
			m.openInput("tl:title", "Milestone title", tl.Items[m.tlCursor].Title)
		}
	case "i":
		if m.tlCursor < len(tl.Items) {
			m.openText("tl:description", tl.Items[m.tlCursor].Description)
		}
	case "t":
		if m.tlCursor < len(tl.Items) {
			m.openInput("tl:date", "Date (YYYY-MM-DD)", tl.Items[m.tlCursor].Date)
		}
	}
	return m, nil
}

func (m *appModel) viewForm() string {
	if m.modal != modalNone {
		return m.viewModal()
	}
	f := m.draft
	if f == nil {
		return ""
	}

	title := "New Project"
	if f.Editing() {
		title = "Edit Project"
	}

	var b strings.Builder
	b.WriteString(styleAccent().Render(title))
	b.WriteString("  ")
	b.WriteString(styleMuted().Render(fmt.Sprintf("page %d/%d", f.Page, form.Pages)))
	b.WriteString("\n\n")

	switch f.Page {
	case 3:
		b.WriteString(m.renderFormTimeline())
	default:
		b.WriteString(m.renderFieldList())
	}

	b.WriteString("\n\n")
	if len(f.Errors) > 0 {
		for _, field := range []string{"title", "description", "primaryBusinessFunction"} {
			if msg, ok := f.Errors[field]; ok {
				b.WriteString(styleError().Render(msg))
				b.WriteString("\n")
			}
		}
	}
	if m.errMsg != "" {
		b.WriteString(styleError().Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString(styleMuted().Render("Saving" + glyphEllipsis()))
		b.WriteString("\n")
	}

	hint := "enter edit · ←/→ page · ctrl+s save · esc discard"
	if f.Page == 3 {
		hint = "a add · d delete · space set active · K/J move · e/i/t edit · ←/→ page · ctrl+s save · esc discard"
	}
	b.WriteString(styleMuted().Render(hint))
	return b.String()
}

func (m *appModel) renderFieldList() string {
	f := m.draft
	fields := m.currentFields()

	value := func(key string) string {
		switch key {
		case "form:title":
			return f.Title
		case "form:description":
			return firstLine(f.Description)
		case "form:status":
			return string(f.Status)
		case "form:tag", "form:remove-tag":
			return strings.Join(f.Tags, ", ")
		case "form:why":
			return firstLine(f.WhyWeBuiltThis)
		case "form:what":
			return firstLine(f.WhatWeveBuilt)
		case "form:individual", "form:remove-individual":
			return strings.Join(f.IndividualsInvolved, ", ")
		case "form:nti-status":
			return string(f.NTIStatus)
		case "form:nti-link":
			if ntiLinkSuppressed(f.NTIStatus) {
				return "(not applicable)"
			}
			return f.NTILink
		case "form:benefits":
			return string(f.BenefitsCategory)
		case "form:ai-benefits":
			return string(f.AIBenefitCategory)
		case "form:investment":
			return moneyString(f.InvestmentRequired)
		case "form:near-term":
			return moneyString(f.ExpectedNearTermBenefits)
		case "form:long-term":
			return moneyString(f.ExpectedLongTermBenefits)
		case "form:function":
			return string(f.PrimaryBusinessFunction)
		}
		return ""
	}

	labelW := 0
	for _, fd := range fields {
		if len(fd.label) > labelW {
			labelW = len(fd.label)
		}
	}

	var b strings.Builder
	for i, fd := range fields {
		line := fmt.Sprintf("%-*s  %s", labelW, fd.label, truncate(value(fd.key), max0(m.width-labelW-8)))
		if i == m.formCursor {
			b.WriteString(lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(" " + line + " "))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) renderFormTimeline() string {
	tl := m.draft.Timeline
	if len(tl.Items) == 0 {
		return styleMuted().Render("No milestones. Press a to add one.")
	}
	active := tl.ActiveIndex()

	var b strings.Builder
	for i, it := range tl.Items {
		glyph := glyphPending()
		if i < active {
			glyph = glyphDone()
		} else if i == active {
			glyph = glyphActive()
		}
		title := it.Title
		if title == "" {
			title = styleMuted().Render("(untitled)")
		}
		line := glyph + " " + title
		if it.Date != "" {
			line += "  " + it.Date
		}
		if i == m.tlCursor {
			b.WriteString(lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Render(" " + line + " "))
		} else {
			b.WriteString(" " + line)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func enumOptions[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func moneyString(v *float64) string {
	if v == nil {
		return ""
	}
	return currency.Format(*v)
}
