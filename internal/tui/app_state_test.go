package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-cli/internal/api"
	"portfolio-cli/internal/model"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T, projects []model.Project) *appModel {
	t.Helper()
	t.Setenv("PORTFOLIO_CONFIG_DIR", t.TempDir())
	m := newAppModel(api.NewClient("http://unused.invalid"))
	m.width = 100
	m.height = 40
	m.Update(projectsLoadedMsg{projects: projects})
	return m
}

func sampleProjects() []model.Project {
	return []model.Project{
		{ID: "1", Title: "Alpha", Status: model.StatusProduction, Tags: []string{"ai"}},
		{ID: "2", Title: "Beta", Status: model.StatusPilot},
	}
}

func TestLoadErrorKeepsCollection(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.Update(projectsLoadedMsg{err: errTest("backend down")})
	if m.errMsg == "" {
		t.Errorf("load failure not surfaced")
	}
	if len(m.coll.Projects()) != 2 {
		t.Errorf("failed reload dropped loaded projects")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestOpenDetailAndBack(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.Update(key("enter"))
	if m.view != viewDetail || m.detailID != "1" {
		t.Fatalf("view = %v, detailID = %q", m.view, m.detailID)
	}
	m.Update(key("esc"))
	if m.view != viewDashboard {
		t.Errorf("esc did not return to dashboard")
	}
}

func TestStaleDetailIDCleared(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.Update(key("enter"))
	// A reload that no longer contains the open project drops the reference.
	m.Update(projectsLoadedMsg{projects: []model.Project{{ID: "2", Title: "Beta"}}})
	if m.detailID != "" {
		t.Errorf("stale detail id kept: %q", m.detailID)
	}
	if m.view != viewDashboard {
		t.Errorf("view = %v, want dashboard", m.view)
	}
}

func TestCreateFlow(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	if m.view != viewForm || m.draft == nil {
		t.Fatalf("c did not open a create draft")
	}
	if m.draft.Status != model.DefaultStatus {
		t.Errorf("draft status = %q", m.draft.Status)
	}

	// Edit the title through the field modal.
	m.Update(key("enter"))
	if m.modal != modalInput {
		t.Fatalf("enter on Title did not open the input modal")
	}
	m.input.SetValue("Gamma")
	m.Update(key("enter"))
	if m.modal != modalNone {
		t.Fatalf("modal still open")
	}
	if m.draft.Title != "Gamma" {
		t.Errorf("title = %q", m.draft.Title)
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Errorf("invalid draft produced a save command")
	}
	if len(m.draft.Errors) == 0 {
		t.Errorf("validation errors not recorded")
	}
}

func TestDoubleSubmitGuard(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	m.draft.Title = "Gamma"
	m.draft.Description = "d"

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("valid draft did not produce a save command")
	}
	if !m.saving {
		t.Fatalf("saving flag not set")
	}
	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Errorf("second ctrl+s issued another request while saving")
	}
}

func TestSaveDoneAppliesCreate(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	m.saving = true
	m.Update(saveDoneMsg{kind: "create", project: model.Project{ID: "srv-1", Title: "Gamma"}})
	if m.saving {
		t.Errorf("saving flag not cleared")
	}
	if m.view != viewDashboard || m.draft != nil {
		t.Errorf("form not closed after save")
	}
	if _, ok := m.coll.FindByID("srv-1"); !ok {
		t.Errorf("created project not in collection")
	}
}

func TestSaveErrorKeepsDraft(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	m.draft.Title = "Gamma"
	m.saving = true
	m.Update(saveDoneMsg{kind: "create", err: errTest("503 Service Unavailable")})
	if m.draft == nil || m.view != viewForm {
		t.Errorf("failed save discarded the draft")
	}
	if m.errMsg == "" {
		t.Errorf("save failure not surfaced")
	}
}

func TestTimelinePageActiveToggle(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	m.Update(key("right"))
	m.Update(key("right")) // page 3, the timeline
	if m.draft.Page != 3 {
		t.Fatalf("page = %d", m.draft.Page)
	}
	m.Update(key("down"))
	m.Update(key(" "))
	if got := m.draft.Timeline.ActiveIndex(); got != 1 {
		t.Errorf("ActiveIndex = %d, want 1", got)
	}
	if m.draft.Timeline.Items[0].IsStepActive {
		t.Errorf("first milestone still active")
	}
}

func TestNTILinkLockedWhileNotApplicable(t *testing.T) {
	m := testModel(t, nil)
	m.Update(key("c"))
	m.Update(key("right")) // page 2, NTI and financials
	if m.draft.Page != 2 {
		t.Fatalf("page = %d", m.draft.Page)
	}
	if m.draft.NTIStatus != model.NTINotApplicable {
		t.Fatalf("fresh draft NTI status = %q", m.draft.NTIStatus)
	}
	m.Update(key("down")) // NTI link row
	m.Update(key("enter"))
	if m.modal != modalNone {
		t.Fatalf("link editor opened while NTI status is Not Applicable")
	}

	m.draft.NTIStatus = model.NTIInProgress
	m.Update(key("enter"))
	if m.modal != modalInput {
		t.Errorf("link editor did not open once NTI status changed")
	}
}

func TestDetailHidesLinkWhileNotApplicable(t *testing.T) {
	m := testModel(t, nil)
	p := model.Project{NTIStatus: model.NTINotApplicable, NTILink: "https://nti.example/42"}
	if out := m.renderOverview(p, 80); strings.Contains(out, "nti.example") {
		t.Errorf("overview shows the NTI link while status is Not Applicable")
	}
	p.NTIStatus = model.NTIInProgress
	if out := m.renderOverview(p, 80); !strings.Contains(out, "nti.example") {
		t.Errorf("overview hides the NTI link for an in-progress status")
	}
}

func TestDetailTabCycle(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.Update(key("enter"))
	m.Update(key("tab"))
	if m.detailTab != 1 {
		t.Fatalf("tab: detailTab = %d, want 1", m.detailTab)
	}
	m.Update(key("shift+tab"))
	if m.detailTab != 0 {
		t.Errorf("shift+tab: detailTab = %d, want 0", m.detailTab)
	}
}

func TestFilterPickResetsSelection(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.selected = 1
	m.Update(key("s"))
	if m.modal != modalPick {
		t.Fatalf("s did not open the status picker")
	}
	// Pick PRODUCTION (options: (any), PRODUCTION, ...).
	m.pickCursor = 1
	m.Update(key("enter"))
	if m.coll.Status() != model.StatusProduction {
		t.Errorf("status filter = %q", m.coll.Status())
	}
	if m.selected != 0 {
		t.Errorf("selection not reset")
	}
	if m.coll.Page() != 1 {
		t.Errorf("page not reset")
	}
}

func TestDiscardConfirm(t *testing.T) {
	m := testModel(t, sampleProjects())
	m.Update(key("e"))
	if m.view != viewForm {
		t.Fatalf("e did not open the editor")
	}
	m.Update(key("esc"))
	if m.modal != modalConfirmDiscard {
		t.Fatalf("esc did not ask for confirmation")
	}
	m.Update(key("n"))
	if m.view != viewForm || m.draft == nil {
		t.Errorf("n discarded the draft")
	}
	m.Update(key("esc"))
	m.Update(key("y"))
	if m.view != viewDashboard || m.draft != nil {
		t.Errorf("y did not discard the draft")
	}
}
