package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-cli/internal/model"
)

func TestListProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/projects" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","title":"Alpha","status":"PRODUCTION","tags":["ai"]},
			{"id":"2","title":"Beta","status":"RETIRED","ntiStatus":"Bogus"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects", len(projects))
	}
	if projects[0].Status != model.StatusProduction {
		t.Errorf("known status changed to %q", projects[0].Status)
	}
	// Unknown enum values decode to defaults rather than failing.
	if projects[1].Status != model.DefaultStatus {
		t.Errorf("unknown status = %q, want default", projects[1].Status)
	}
	if projects[1].NTIStatus != model.DefaultNTIStatus {
		t.Errorf("unknown ntiStatus = %q, want default", projects[1].NTIStatus)
	}
	if projects[1].Tags == nil {
		t.Errorf("tags should decode to an empty slice")
	}
}

func TestCreateProjectPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/projects" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"srv-1","title":"Alpha","status":"IDEATION"}`))
	}))
	defer srv.Close()

	p := model.Project{
		ID:                  "tmp-1",
		Title:               "Alpha",
		Status:              model.StatusIdeation,
		Tags:                []string{"ai", "finance"},
		IndividualsInvolved: []string{"Dana"},
		Timeline: []model.TimelineItem{
			{ID: "t1", Title: "Kickoff", IsStepActive: true},
		},
	}
	created, err := NewClient(srv.URL).CreateProject(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "srv-1" {
		t.Errorf("created id = %q, want server-assigned", created.ID)
	}

	tags, _ := got["tags"].([]any)
	if len(tags) != 2 {
		t.Fatalf("tags = %v", got["tags"])
	}
	if first, _ := tags[0].(map[string]any); first["tag"] != "ai" {
		t.Errorf("tags[0] = %v", tags[0])
	}
	inds, _ := got["individuals"].([]any)
	if len(inds) != 1 {
		t.Fatalf("individuals = %v", got["individuals"])
	}
	tl, _ := got["timeline"].([]any)
	if len(tl) != 1 {
		t.Fatalf("timeline = %v", got["timeline"])
	}
	item, _ := tl[0].(map[string]any)
	if item["is_step_active"] != true {
		t.Errorf("timeline[0].is_step_active = %v", item["is_step_active"])
	}
	if _, hasID := item["id"]; hasID {
		t.Errorf("timeline items must not carry client ids on the wire")
	}
	// Blank optional fields are present as empty strings, not omitted.
	for _, key := range []string{"nti_status", "investment_required", "why_we_built_this"} {
		v, ok := got[key]
		if !ok {
			t.Errorf("payload missing %q", key)
			continue
		}
		if v != "" {
			t.Errorf("%s = %v, want empty string", key, v)
		}
	}
}

func TestUpdateProjectPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/projects/proj-7") {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"proj-7","title":"Alpha v2"}`))
	}))
	defer srv.Close()

	updated, err := NewClient(srv.URL).UpdateProject(context.Background(), "proj-7", model.Project{ID: "proj-7", Title: "Alpha v2"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "Alpha v2" {
		t.Errorf("updated title = %q", updated.Title)
	}
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListProjects(context.Background())
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if serr.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d", serr.Code)
	}
}

func TestFetchAnalyticsOverview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/overview" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalProjects": 4,
			"activeMilestones": 3,
			"projectsByStatus": [{"status":"PRODUCTION","count":2}],
			"projectsByFunction": [{"function":"Finance","count":4}],
			"projectsByBenefits": [],
			"projectsByAIBenefits": [],
			"topTags": [{"tag":"ai","count":3}]
		}`))
	}))
	defer srv.Close()

	overview, err := NewClient(srv.URL).FetchAnalyticsOverview(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if overview.TotalProjects != 4 || overview.ActiveMilestones != 3 {
		t.Errorf("overview = %+v", overview)
	}
	if len(overview.TopTags) != 1 || overview.TopTags[0].Tag != "ai" {
		t.Errorf("topTags = %v", overview.TopTags)
	}
}

func TestFetchTimelineAnalytics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analytics/timeline" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"projectProgress": [
				{"projectId":"1","projectTitle":"Alpha","status":"PILOT","totalMilestones":4,"activeMilestones":1,"completedMilestones":3,"progressPercentage":75}
			],
			"totalTimelineItems": 4
		}`))
	}))
	defer srv.Close()

	ta, err := NewClient(srv.URL).FetchTimelineAnalytics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ta.TotalTimelineItems != 4 || len(ta.ProjectProgress) != 1 {
		t.Fatalf("analytics = %+v", ta)
	}
	if ta.ProjectProgress[0].ProgressPercentage != 75 {
		t.Errorf("progress = %v", ta.ProjectProgress[0].ProgressPercentage)
	}
}
