// Package collection filters and paginates the in-memory project list shared
// by the dashboard and the list command. Filters combine with AND and any
// filter change snaps the view back to the first page.
package collection

import (
	"sort"

	"portfolio-cli/internal/model"
)

// PageSize is the number of cards shown per dashboard page.
const PageSize = 6

// View is the filtered, paginated window over the project list.
type View struct {
	projects []model.Project

	tag      string
	status   model.Status
	function model.BusinessFunction

	page int
}

func NewView() *View {
	return &View{page: 1}
}

// SetProjects replaces the backing list and resets to the first page.
// Filters survive a reload; the page position does not.
func (v *View) SetProjects(projects []model.Project) {
	v.projects = projects
	v.page = 1
}

func (v *View) Projects() []model.Project { return v.projects }

// SetTag filters to projects carrying the tag; empty clears the filter.
func (v *View) SetTag(tag string) {
	v.tag = tag
	v.page = 1
}

func (v *View) Tag() string { return v.tag }

// SetStatus filters to one lifecycle status; empty clears the filter.
func (v *View) SetStatus(status model.Status) {
	v.status = status
	v.page = 1
}

func (v *View) Status() model.Status { return v.status }

// SetFunction filters to one business function; empty clears the filter.
func (v *View) SetFunction(fn model.BusinessFunction) {
	v.function = fn
	v.page = 1
}

func (v *View) Function() model.BusinessFunction { return v.function }

// ClearFilters drops all three filters and returns to the first page.
func (v *View) ClearFilters() {
	v.tag = ""
	v.status = ""
	v.function = ""
	v.page = 1
}

func (v *View) HasFilters() bool {
	return v.tag != "" || v.status != "" || v.function != ""
}

func (v *View) matches(p model.Project) bool {
	if v.status != "" && p.Status != v.status {
		return false
	}
	if v.function != "" && p.PrimaryBusinessFunction != v.function {
		return false
	}
	if v.tag != "" {
		found := false
		for _, t := range p.Tags {
			if t == v.tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filtered returns the projects passing every active filter, in backing-list
// order.
func (v *View) Filtered() []model.Project {
	out := make([]model.Project, 0, len(v.projects))
	for _, p := range v.projects {
		if v.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// TotalPages returns ceil(len(Filtered)/PageSize); an empty result has zero
// pages.
func (v *View) TotalPages() int {
	n := len(v.Filtered())
	return (n + PageSize - 1) / PageSize
}

func (v *View) Page() int { return v.page }

// SetPage moves to the given page. The value is stored as-is; PageItems
// handles pages past the end by returning nothing.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *View) NextPage() {
	if v.page < v.TotalPages() {
		v.page++
	}
}

func (v *View) PrevPage() {
	if v.page > 1 {
		v.page--
	}
}

// PageItems returns the slice of Filtered shown on the current page.
func (v *View) PageItems() []model.Project {
	filtered := v.Filtered()
	start := (v.page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// AvailableTags returns the distinct tags across the unfiltered list, sorted.
func (v *View) AvailableTags() []string {
	seen := map[string]bool{}
	for _, p := range v.projects {
		for _, t := range p.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// FindByID returns the project with the id, if present.
func (v *View) FindByID(id string) (model.Project, bool) {
	for _, p := range v.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// ApplyCreate appends a newly created project without disturbing filters or
// the page position.
func (v *View) ApplyCreate(p model.Project) {
	v.projects = append(v.projects, p)
}

// ApplyUpdate replaces the project with the matching id in place. Unknown ids
// are appended, which covers a create whose placeholder id was replaced by
// the server.
func (v *View) ApplyUpdate(p model.Project) {
	for i := range v.projects {
		if v.projects[i].ID == p.ID {
			v.projects[i] = p
			return
		}
	}
	v.projects = append(v.projects, p)
}
