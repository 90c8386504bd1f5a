package collection

import (
	"fmt"
	"reflect"
	"testing"

	"portfolio-cli/internal/model"
)

func sampleProjects() []model.Project {
	return []model.Project{
		{ID: "1", Title: "Invoice Copilot", Status: model.StatusProduction, PrimaryBusinessFunction: model.FunctionFinance, Tags: []string{"ai", "finance"}},
		{ID: "2", Title: "Churn Radar", Status: model.StatusPilot, PrimaryBusinessFunction: model.FunctionSales, Tags: []string{"ai"}},
		{ID: "3", Title: "Onboarding Bot", Status: model.StatusPOC, PrimaryBusinessFunction: model.FunctionHR, Tags: []string{"chatbot"}},
		{ID: "4", Title: "Spend Forecaster", Status: model.StatusProduction, PrimaryBusinessFunction: model.FunctionFinance, Tags: []string{"finance"}},
		{ID: "5", Title: "Ticket Triage", Status: model.StatusIdeation, PrimaryBusinessFunction: model.FunctionIT, Tags: nil},
	}
}

func ids(ps []model.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFilteredAND(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		status   model.Status
		function model.BusinessFunction
		want     []string
	}{
		{name: "no filters", want: []string{"1", "2", "3", "4", "5"}},
		{name: "tag", tag: "ai", want: []string{"1", "2"}},
		{name: "status", status: model.StatusProduction, want: []string{"1", "4"}},
		{name: "function", function: model.FunctionFinance, want: []string{"1", "4"}},
		{name: "tag and status", tag: "finance", status: model.StatusProduction, want: []string{"1", "4"}},
		{name: "all three", tag: "ai", status: model.StatusProduction, function: model.FunctionFinance, want: []string{"1"}},
		{name: "no match", tag: "chatbot", status: model.StatusProduction, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			v.SetProjects(sampleProjects())
			v.SetTag(tt.tag)
			v.SetStatus(tt.status)
			v.SetFunction(tt.function)
			got := ids(v.Filtered())
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filtered() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Adding a filter can only shrink the result set.
func TestFilterMonotonicity(t *testing.T) {
	v := NewView()
	v.SetProjects(sampleProjects())
	all := len(v.Filtered())
	v.SetStatus(model.StatusProduction)
	withStatus := len(v.Filtered())
	v.SetTag("finance")
	withBoth := len(v.Filtered())
	if withStatus > all || withBoth > withStatus {
		t.Errorf("result grew: %d -> %d -> %d", all, withStatus, withBoth)
	}
}

func TestFilterChangeResetsPage(t *testing.T) {
	v := NewView()
	var many []model.Project
	for i := 0; i < 14; i++ {
		many = append(many, model.Project{ID: fmt.Sprintf("p%d", i), Status: model.StatusIdeation})
	}
	v.SetProjects(many)
	v.SetPage(3)
	if v.Page() != 3 {
		t.Fatalf("Page() = %d", v.Page())
	}
	v.SetStatus(model.StatusIdeation)
	if v.Page() != 1 {
		t.Errorf("filter change left page at %d", v.Page())
	}
	v.SetPage(2)
	v.ClearFilters()
	if v.Page() != 1 {
		t.Errorf("ClearFilters left page at %d", v.Page())
	}
}

func TestPaginationCoversFiltered(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 7, 12, 13} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			v := NewView()
			var ps []model.Project
			for i := 0; i < n; i++ {
				ps = append(ps, model.Project{ID: fmt.Sprintf("p%d", i)})
			}
			v.SetProjects(ps)

			wantPages := (n + PageSize - 1) / PageSize
			if got := v.TotalPages(); got != wantPages {
				t.Fatalf("TotalPages() = %d, want %d", got, wantPages)
			}

			var seen []string
			for page := 1; page <= v.TotalPages(); page++ {
				v.SetPage(page)
				items := v.PageItems()
				if len(items) == 0 {
					t.Fatalf("page %d empty", page)
				}
				if len(items) > PageSize {
					t.Fatalf("page %d has %d items", page, len(items))
				}
				seen = append(seen, ids(items)...)
			}
			if len(seen) != n {
				t.Errorf("pages covered %d items, want %d", len(seen), n)
			}
			for i, id := range seen {
				if id != fmt.Sprintf("p%d", i) {
					t.Errorf("item %d = %s, out of order", i, id)
				}
			}
		})
	}
}

func TestStatusFilterFromSecondPage(t *testing.T) {
	v := NewView()
	var ps []model.Project
	for i := 0; i < 10; i++ {
		status := model.StatusIdeation
		if i < 3 {
			status = model.StatusProduction
		}
		ps = append(ps, model.Project{ID: fmt.Sprintf("p%d", i), Status: status})
	}
	v.SetProjects(ps)
	v.SetPage(2)

	v.SetStatus(model.StatusProduction)
	if v.Page() != 1 {
		t.Errorf("Page() = %d, want 1", v.Page())
	}
	if v.TotalPages() != 1 {
		t.Errorf("TotalPages() = %d, want 1", v.TotalPages())
	}
	if got := len(v.PageItems()); got != 3 {
		t.Errorf("PageItems() has %d items, want 3", got)
	}
}

func TestPageItemsPastEnd(t *testing.T) {
	v := NewView()
	v.SetProjects(sampleProjects())
	v.SetPage(9)
	if items := v.PageItems(); items != nil {
		t.Errorf("page past end returned %v", ids(items))
	}
}

func TestAvailableTags(t *testing.T) {
	v := NewView()
	v.SetProjects(sampleProjects())
	want := []string{"ai", "chatbot", "finance"}
	if got := v.AvailableTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableTags() = %v, want %v", got, want)
	}
	// Tag options come from the full list even while filtered.
	v.SetStatus(model.StatusPOC)
	if got := v.AvailableTags(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableTags() under filter = %v, want %v", got, want)
	}
}

func TestApplyCreateAndUpdate(t *testing.T) {
	v := NewView()
	v.SetProjects(sampleProjects())
	v.SetTag("ai")
	v.SetPage(1)

	v.ApplyCreate(model.Project{ID: "6", Title: "New Thing", Tags: []string{"ai"}})
	if v.Tag() != "ai" || v.Page() != 1 {
		t.Errorf("ApplyCreate disturbed filters or page")
	}
	if got := ids(v.Filtered()); !reflect.DeepEqual(got, []string{"1", "2", "6"}) {
		t.Errorf("Filtered() after create = %v", got)
	}

	v.ApplyUpdate(model.Project{ID: "2", Title: "Churn Radar v2", Tags: []string{"ai"}})
	p, ok := v.FindByID("2")
	if !ok || p.Title != "Churn Radar v2" {
		t.Errorf("ApplyUpdate did not replace in place: %+v", p)
	}

	v.ApplyUpdate(model.Project{ID: "srv-9", Title: "From Server"})
	if _, ok := v.FindByID("srv-9"); !ok {
		t.Errorf("ApplyUpdate should append unknown ids")
	}
}
