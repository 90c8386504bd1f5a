package api

import (
	"portfolio-cli/internal/model"
)

// The backend accepts snake_case payloads on create/update but returns
// camelCase project objects on every read path, so only the outbound
// direction needs a mapping layer.

// TagRef wraps a tag string for the wire payload.
type TagRef struct {
	Tag string `json:"tag"`
}

// IndividualRef wraps a participant name for the wire payload.
type IndividualRef struct {
	Name string `json:"name"`
}

// TimelinePayload is one milestone in the wire payload. Client-side ids are
// not sent; the backend keys milestones by position.
type TimelinePayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	IsStepActive bool   `json:"is_step_active"`
}

// ProjectPayload is the create/update request body. Every field is always
// present in the encoded JSON; the backend expects empty strings rather than
// omitted keys for blank optional fields.
type ProjectPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`

	Tags        []TagRef          `json:"tags"`
	Individuals []IndividualRef   `json:"individuals"`
	Timeline    []TimelinePayload `json:"timeline"`

	WhyWeBuiltThis string `json:"why_we_built_this"`
	WhatWeveBuilt  string `json:"what_weve_built"`

	NTIStatus string `json:"nti_status"`
	NTILink   string `json:"nti_link"`

	PrimaryBenefitsCategory  string `json:"primary_benefits_category"`
	PrimaryAIBenefitCategory string `json:"primary_ai_benefit_category"`

	InvestmentRequired       string `json:"investment_required"`
	ExpectedNearTermBenefits string `json:"expected_near_term_benefits"`
	ExpectedLongTermBenefits string `json:"expected_long_term_benefits"`

	PrimaryBusinessFunction string `json:"primary_business_function"`
}

// ToWire converts a project to the request payload. Slices encode as [] when
// empty, never null.
func ToWire(p model.Project) ProjectPayload {
	tags := make([]TagRef, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, TagRef{Tag: t})
	}
	individuals := make([]IndividualRef, 0, len(p.IndividualsInvolved))
	for _, n := range p.IndividualsInvolved {
		individuals = append(individuals, IndividualRef{Name: n})
	}
	timeline := make([]TimelinePayload, 0, len(p.Timeline))
	for _, it := range p.Timeline {
		timeline = append(timeline, TimelinePayload{
			Title:        it.Title,
			Description:  it.Description,
			Date:         it.Date,
			IsStepActive: it.IsStepActive,
		})
	}
	return ProjectPayload{
		ID:                       p.ID,
		Title:                    p.Title,
		Description:              p.Description,
		Status:                   string(p.Status),
		Tags:                     tags,
		Individuals:              individuals,
		Timeline:                 timeline,
		WhyWeBuiltThis:           p.WhyWeBuiltThis,
		WhatWeveBuilt:            p.WhatWeveBuilt,
		NTIStatus:                string(p.NTIStatus),
		NTILink:                  p.NTILink,
		PrimaryBenefitsCategory:  string(p.PrimaryBenefitsCategory),
		PrimaryAIBenefitCategory: string(p.PrimaryAIBenefitCategory),
		InvestmentRequired:       p.InvestmentRequired,
		ExpectedNearTermBenefits: p.ExpectedNearTermBenefits,
		ExpectedLongTermBenefits: p.ExpectedLongTermBenefits,
		PrimaryBusinessFunction:  string(p.PrimaryBusinessFunction),
	}
}

// Normalize cleans up a decoded project in place: unknown non-empty enum
// values fall back to the documented default so a schema drift on the server
// never crashes a view, while genuinely empty fields stay empty (an empty
// status is "unset", not "unknown").
func Normalize(p *model.Project) {
	p.Status = normalizeEnum(p.Status, model.DefaultStatus)
	p.NTIStatus = normalizeEnum(p.NTIStatus, model.DefaultNTIStatus)
	p.PrimaryBenefitsCategory = normalizeEnum(p.PrimaryBenefitsCategory, model.DefaultBenefitsCategory)
	p.PrimaryAIBenefitCategory = normalizeEnum(p.PrimaryAIBenefitCategory, model.DefaultAIBenefitCategory)
	p.PrimaryBusinessFunction = normalizeEnum(p.PrimaryBusinessFunction, model.DefaultBusinessFunction)
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

type enumValue interface {
	~string
	Valid() bool
}

func normalizeEnum[T enumValue](v, def T) T {
	if v != "" && !v.Valid() {
		return def
	}
	return v
}
