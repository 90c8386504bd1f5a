// Package tui is the interactive dashboard: a card grid over the project
// collection, a per-project detail view, and a three page editor, all backed
// by the same HTTP client as the scriptable commands.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio-cli/internal/api"
	"portfolio-cli/internal/collection"
	"portfolio-cli/internal/form"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/store"
)

// Run starts the TUI against the given backend client.
func Run(client *api.Client) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		cfg = &store.GlobalConfig{}
	}
	applyColorProfilePreference()
	applyThemePreference(cfg)
	applyGlyphPreference(cfg)

	m := newAppModel(client)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type view int

const (
	viewDashboard view = iota
	viewDetail
	viewForm
	viewAnalytics
)

type modal int

const (
	modalNone  modal = iota
	modalInput       // single-line text edit
	modalText        // multi-line text edit
	modalPick        // pick one option from a list
	modalConfirmDiscard
)

type appModel struct {
	client *api.Client

	view  view
	modal modal

	width  int
	height int

	coll     *collection.View
	selected int // index into the current page's cards

	detailID  string
	detailTab int // 0 overview, 1 timeline

	draft      *form.Form
	formCursor int
	tlCursor   int
	saving     bool
	returnView view // where Esc from the form goes back to

	// Modal editing state. inputTarget names the field being edited;
	// pickOptions/pickCursor drive the option list.
	input       textinput.Model
	area        textarea.Model
	inputTarget string
	pickOptions []string
	pickCursor  int
	pickTarget  string

	overview      *api.AnalyticsOverview
	timelineStats *api.TimelineAnalytics

	loading bool
	errMsg  string
	notice  string
}

func newAppModel(client *api.Client) *appModel {
	m := &appModel{
		client: client,
		coll:   collection.NewView(),
		view:   viewDashboard,
	}
	m.input = textinput.New()
	m.input.CharLimit = 256
	m.area = textarea.New()
	m.area.CharLimit = 4000
	m.restoreState()
	return m
}

// restoreState reapplies the last session's filters and screen. The detail
// id is only trusted once the projects have loaded (it may be stale).
func (m *appModel) restoreState() {
	st, err := store.LoadTUIState()
	if err != nil {
		return
	}
	m.coll.SetTag(st.FilterTag)
	m.coll.SetStatus(model.Status(st.FilterStatus))
	m.coll.SetFunction(model.BusinessFunction(st.FilterFunction))
	if st.Page > 1 {
		m.coll.SetPage(st.Page)
	}
	if st.View == "detail" && st.SelectedProjectID != "" {
		m.detailID = st.SelectedProjectID
		m.view = viewDetail
	}
}

func (m *appModel) saveState() {
	st := &store.TUIState{Version: 1, Page: m.coll.Page()}
	switch m.view {
	case viewDetail:
		st.View = "detail"
		st.SelectedProjectID = m.detailID
	case viewAnalytics:
		st.View = "analytics"
	default:
		st.View = "dashboard"
	}
	st.FilterTag = m.coll.Tag()
	st.FilterStatus = string(m.coll.Status())
	st.FilterFunction = string(m.coll.Function())
	_ = store.SaveTUIState(st)
}

type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

type saveDoneMsg struct {
	kind    string // "create" or "update"
	project model.Project
	err     error
}

type analyticsLoadedMsg struct {
	overview api.AnalyticsOverview
	stats    api.TimelineAnalytics
	err      error
}

func (m *appModel) loadProjects() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		projects, err := client.ListProjects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m *appModel) saveDraft(draft model.Project, editing bool, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if editing {
			updated, err := client.UpdateProject(context.Background(), id, draft)
			return saveDoneMsg{kind: "update", project: updated, err: err}
		}
		created, err := client.CreateProject(context.Background(), draft)
		return saveDoneMsg{kind: "create", project: created, err: err}
	}
}

func (m *appModel) loadAnalytics() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		overview, err := client.FetchAnalyticsOverview(context.Background())
		if err != nil {
			return analyticsLoadedMsg{err: err}
		}
		stats, err := client.FetchTimelineAnalytics(context.Background())
		return analyticsLoadedMsg{overview: overview, stats: stats, err: err}
	}
}

func (m *appModel) Init() tea.Cmd {
	m.loading = true
	return m.loadProjects()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.coll.SetProjects(msg.projects)
		// A restored detail id may reference a project that no longer
		// exists; clear it silently.
		if m.detailID != "" {
			if _, ok := m.coll.FindByID(m.detailID); !ok {
				m.detailID = ""
				if m.view == viewDetail {
					m.view = viewDashboard
				}
			}
		}
		m.selected = clamp(m.selected, 0, max0(len(m.coll.PageItems())-1))
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			// The draft stays open so the user can retry.
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		if msg.kind == "create" {
			m.coll.ApplyCreate(msg.project)
			m.notice = "Created " + msg.project.Title
		} else {
			m.coll.ApplyUpdate(msg.project)
			m.notice = "Saved " + msg.project.Title
		}
		appendOpBestEffort(msg.kind, msg.project)
		m.draft = nil
		m.view = m.returnView
		if m.view == viewDetail {
			m.detailID = msg.project.ID
		}
		return m, nil

	case analyticsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		overview := msg.overview
		stats := msg.stats
		m.overview = &overview
		m.timelineStats = &stats
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		m.saveState()
		return m, tea.Quit
	}

	switch m.view {
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewDetail:
		return m.updateDetail(msg)
	case viewForm:
		return m.updateForm(msg)
	case viewAnalytics:
		return m.updateAnalytics(msg)
	}
	return m, nil
}

func (m *appModel) View() string {
	if m.width == 0 {
		return ""
	}
	switch m.view {
	case viewDetail:
		return m.viewDetail()
	case viewForm:
		return m.viewForm()
	case viewAnalytics:
		return m.viewAnalytics()
	default:
		return m.viewDashboard()
	}
}

// appendOpBestEffort records the save in the local op log; the TUI never
// surfaces failures here.
func appendOpBestEffort(kind string, p model.Project) {
	ctx := context.Background()
	log, err := store.OpenOpLog(ctx)
	if err != nil {
		return
	}
	defer log.Close()
	_ = log.Append(ctx, kind, p)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
