// Package form holds the draft state behind the project editor: a three page
// form whose fields mirror the project entity, plus the timeline editor.
// Nothing here talks to the network; Submit produces a finished project and
// the caller decides what to do with it.
package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portfolio-cli/internal/currency"
	"portfolio-cli/internal/model"
)

const (
	// MaxTags caps how many tags a single project may carry.
	MaxTags = 3
	// Pages is the number of editor pages.
	Pages = 3
)

// Fields is the editable draft. Monetary amounts are held as parsed numbers
// (nil when the user left the field blank) and only rendered back to display
// strings on submit.
type Fields struct {
	Title               string
	Description         string
	Status              model.Status
	Tags                []string
	WhyWeBuiltThis      string
	WhatWeveBuilt       string
	IndividualsInvolved []string

	NTIStatus model.NTIStatus
	NTILink   string

	BenefitsCategory  model.BenefitsCategory
	AIBenefitCategory model.AIBenefitCategory

	InvestmentRequired       *float64
	ExpectedNearTermBenefits *float64
	ExpectedLongTermBenefits *float64

	PrimaryBusinessFunction model.BusinessFunction
}

// ValidationError reports the fields that blocked a submit, keyed by field
// name with a human message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Form is the draft controller for creating or editing one project.
type Form struct {
	Fields
	Timeline TimelineEditor

	Page   int
	Errors map[string]string

	projectID string
	editing   bool
}

// New returns a create draft seeded the way a fresh project starts out:
// default enums, preset money amounts, and two blank milestones ready to
// fill in.
func New() *Form {
	f := &Form{Page: 1}
	f.Status = model.DefaultStatus
	f.NTIStatus = model.DefaultNTIStatus
	f.BenefitsCategory = model.DefaultBenefitsCategory
	f.AIBenefitCategory = model.DefaultAIBenefitCategory
	f.PrimaryBusinessFunction = model.DefaultBusinessFunction
	inv, near, long := 100000.0, 30000.0, 150000.0
	f.InvestmentRequired = &inv
	f.ExpectedNearTermBenefits = &near
	f.ExpectedLongTermBenefits = &long
	f.Timeline.Items = []model.TimelineItem{
		{ID: uuid.NewString()},
		{ID: uuid.NewString()},
	}
	return f
}

// Open returns an edit draft populated from an existing project. Optional
// enums the server left empty come back as their defaults so the selectors
// always sit on a real option, and timeline items that arrived without ids
// get fresh ones so the editor can address them.
func Open(p model.Project) *Form {
	f := &Form{Page: 1, projectID: p.ID, editing: true}
	f.Title = p.Title
	f.Description = p.Description
	f.Status = coerce(p.Status, model.DefaultStatus)
	f.Tags = append([]string(nil), p.Tags...)
	f.WhyWeBuiltThis = p.WhyWeBuiltThis
	f.WhatWeveBuilt = p.WhatWeveBuilt
	f.IndividualsInvolved = append([]string(nil), p.IndividualsInvolved...)
	f.NTIStatus = coerce(p.NTIStatus, model.DefaultNTIStatus)
	f.NTILink = p.NTILink
	f.BenefitsCategory = coerce(p.PrimaryBenefitsCategory, model.DefaultBenefitsCategory)
	f.AIBenefitCategory = coerce(p.PrimaryAIBenefitCategory, model.DefaultAIBenefitCategory)
	f.InvestmentRequired = parseMoney(p.InvestmentRequired)
	f.ExpectedNearTermBenefits = parseMoney(p.ExpectedNearTermBenefits)
	f.ExpectedLongTermBenefits = parseMoney(p.ExpectedLongTermBenefits)
	f.PrimaryBusinessFunction = coerce(p.PrimaryBusinessFunction, model.DefaultBusinessFunction)

	items := make([]model.TimelineItem, len(p.Timeline))
	copy(items, p.Timeline)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	f.Timeline.Items = items
	return f
}

type enumValue interface {
	~string
	Valid() bool
}

func coerce[T enumValue](v, def T) T {
	if v == "" || !v.Valid() {
		return def
	}
	return v
}

func parseMoney(s string) *float64 {
	v, ok := currency.Parse(s)
	if !ok {
		return nil
	}
	return &v
}

// Editing reports whether the draft updates an existing project.
func (f *Form) Editing() bool { return f.editing }

// ProjectID returns the id of the project being edited, empty for creates.
func (f *Form) ProjectID() string { return f.projectID }

func (f *Form) NextPage() {
	if f.Page < Pages {
		f.Page++
	}
}

func (f *Form) PrevPage() {
	if f.Page > 1 {
		f.Page--
	}
}

// AddTag appends a tag unless it is blank, already present, or the cap is
// reached. It reports whether the tag was added.
func (f *Form) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || len(f.Tags) >= MaxTags {
		return false
	}
	for _, t := range f.Tags {
		if t == tag {
			return false
		}
	}
	f.Tags = append(f.Tags, tag)
	return true
}

func (f *Form) RemoveTag(tag string) {
	for i, t := range f.Tags {
		if t == tag {
			f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
			return
		}
	}
}

// AddIndividual appends a non-blank, not-yet-listed name.
func (f *Form) AddIndividual(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, n := range f.IndividualsInvolved {
		if n == name {
			return false
		}
	}
	f.IndividualsInvolved = append(f.IndividualsInvolved, name)
	return true
}

func (f *Form) RemoveIndividual(name string) {
	for i, n := range f.IndividualsInvolved {
		if n == name {
			f.IndividualsInvolved = append(f.IndividualsInvolved[:i], f.IndividualsInvolved[i+1:]...)
			return
		}
	}
}

// Validate checks the required fields and records the failures in Errors.
// It reports whether the draft may be submitted.
func (f *Form) Validate() bool {
	errs := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "description is required"
	}
	if f.PrimaryBusinessFunction == "" {
		errs["primaryBusinessFunction"] = "primary business function is required"
	}
	f.Errors = errs
	return len(errs) == 0
}

// Submit validates the draft and, on success, materializes it as a project.
// Creates get a client-generated placeholder id; the server assigns the real
// one and the caller replaces the record with the server's response.
func (f *Form) Submit() (model.Project, error) {
	if !f.Validate() {
		return model.Project{}, &ValidationError{Fields: f.Errors}
	}

	id := f.projectID
	if id == "" {
		id = uuid.NewString()
	}
	p := model.Project{
		ID:                       id,
		Title:                    strings.TrimSpace(f.Title),
		Description:              f.Description,
		Status:                   f.Status,
		Tags:                     append([]string(nil), f.Tags...),
		WhyWeBuiltThis:           f.WhyWeBuiltThis,
		WhatWeveBuilt:            f.WhatWeveBuilt,
		IndividualsInvolved:      append([]string(nil), f.IndividualsInvolved...),
		NTIStatus:                f.NTIStatus,
		NTILink:                  f.NTILink,
		PrimaryBenefitsCategory:  f.BenefitsCategory,
		PrimaryAIBenefitCategory: f.AIBenefitCategory,
		InvestmentRequired:       formatMoney(f.InvestmentRequired),
		ExpectedNearTermBenefits: formatMoney(f.ExpectedNearTermBenefits),
		ExpectedLongTermBenefits: formatMoney(f.ExpectedLongTermBenefits),
		PrimaryBusinessFunction:  f.PrimaryBusinessFunction,
		Timeline:                 append([]model.TimelineItem(nil), f.Timeline.Items...),
	}
	return p, nil
}

func formatMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return currency.Format(*v)
}
