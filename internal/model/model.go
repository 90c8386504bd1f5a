package model

// Status is the lifecycle stage of a project.
type Status string

const (
	StatusProduction Status = "PRODUCTION"
	StatusPilot      Status = "PILOT"
	StatusPOC        Status = "POC"
	StatusIdeation   Status = "IDEATION"
)

// DefaultStatus is the earliest lifecycle stage; new drafts start here.
const DefaultStatus = StatusIdeation

func Statuses() []Status {
	return []Status{StatusProduction, StatusPilot, StatusPOC, StatusIdeation}
}

func (s Status) Valid() bool {
	switch s {
	case StatusProduction, StatusPilot, StatusPOC, StatusIdeation:
		return true
	}
	return false
}

// NTIStatus tracks the project's New Technology Introduction review.
type NTIStatus string

const (
	NTINotApplicable NTIStatus = "Not Applicable"
	NTIInProgress    NTIStatus = "In-Progress"
	NTICompleted     NTIStatus = "Completed"
)

const DefaultNTIStatus = NTINotApplicable

func NTIStatuses() []NTIStatus {
	return []NTIStatus{NTINotApplicable, NTIInProgress, NTICompleted}
}

func (s NTIStatus) Valid() bool {
	switch s {
	case NTINotApplicable, NTIInProgress, NTICompleted:
		return true
	}
	return false
}

type BenefitsCategory string

const (
	BenefitsEmployeeProductivity BenefitsCategory = "Employee Productivity"
	BenefitsCostAvoidance        BenefitsCategory = "Cost Avoidance"
	BenefitsRevenueGeneration    BenefitsCategory = "Revenue Generation"
)

const DefaultBenefitsCategory = BenefitsEmployeeProductivity

func BenefitsCategories() []BenefitsCategory {
	return []BenefitsCategory{
		BenefitsEmployeeProductivity,
		BenefitsCostAvoidance,
		BenefitsRevenueGeneration,
	}
}

func (c BenefitsCategory) Valid() bool {
	switch c {
	case BenefitsEmployeeProductivity, BenefitsCostAvoidance, BenefitsRevenueGeneration:
		return true
	}
	return false
}

type AIBenefitCategory string

const (
	AIBenefitKnowledgeManagement AIBenefitCategory = "Knowledge Management"
	AIBenefitCodeDevelopment     AIBenefitCategory = "Code Development & Support"
	AIBenefitContentGeneration   AIBenefitCategory = "Content Generation"
	AIBenefitDataAnalysis        AIBenefitCategory = "Data Analysis & Summarisation"
	AIBenefitDocumentProcessing  AIBenefitCategory = "Document Processing"
	AIBenefitWorkflowAutomation  AIBenefitCategory = "Process or Workflow Automation"
)

const DefaultAIBenefitCategory = AIBenefitKnowledgeManagement

func AIBenefitCategories() []AIBenefitCategory {
	return []AIBenefitCategory{
		AIBenefitKnowledgeManagement,
		AIBenefitCodeDevelopment,
		AIBenefitContentGeneration,
		AIBenefitDataAnalysis,
		AIBenefitDocumentProcessing,
		AIBenefitWorkflowAutomation,
	}
}

func (c AIBenefitCategory) Valid() bool {
	switch c {
	case AIBenefitKnowledgeManagement, AIBenefitCodeDevelopment, AIBenefitContentGeneration,
		AIBenefitDataAnalysis, AIBenefitDocumentProcessing, AIBenefitWorkflowAutomation:
		return true
	}
	return false
}

type BusinessFunction string

const (
	FunctionFinance    BusinessFunction = "Finance"
	FunctionHR         BusinessFunction = "HR"
	FunctionIT         BusinessFunction = "IT"
	FunctionOperations BusinessFunction = "Operations"
	FunctionMarketing  BusinessFunction = "Marketing"
	FunctionSales      BusinessFunction = "Sales"
	FunctionOther      BusinessFunction = "Other"
)

const DefaultBusinessFunction = FunctionFinance

func BusinessFunctions() []BusinessFunction {
	return []BusinessFunction{
		FunctionFinance, FunctionHR, FunctionIT, FunctionOperations,
		FunctionMarketing, FunctionSales, FunctionOther,
	}
}

func (f BusinessFunction) Valid() bool {
	switch f {
	case FunctionFinance, FunctionHR, FunctionIT, FunctionOperations,
		FunctionMarketing, FunctionSales, FunctionOther:
		return true
	}
	return false
}

// TimelineItem is one milestone in a project's timeline. Order within the
// parent slice is significant and user-controlled.
type TimelineItem struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"` // YYYY-MM-DD (stored as text; best effort)
	IsStepActive bool   `json:"isStepActive"`
}

// Project is the internal representation of a portfolio entry. The JSON tags
// match the backend's list-endpoint shape, which is already camelCase; the
// snake_case create/update payload shape lives in internal/api.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`

	Tags []string `json:"tags"`

	WhyWeBuiltThis string `json:"whyWeBuiltThis,omitempty"`
	WhatWeveBuilt  string `json:"whatWeveBuilt,omitempty"`

	IndividualsInvolved []string       `json:"individualsInvolved,omitempty"`
	Timeline            []TimelineItem `json:"timeline,omitempty"`

	NTIStatus NTIStatus `json:"ntiStatus,omitempty"`
	NTILink   string    `json:"ntiLink,omitempty"`

	PrimaryBenefitsCategory  BenefitsCategory  `json:"primaryBenefitsCategory,omitempty"`
	PrimaryAIBenefitCategory AIBenefitCategory `json:"primaryAIBenefitCategory,omitempty"`

	// Monetary amounts are formatted currency strings at rest (e.g. "$100,000").
	// internal/currency converts them to numbers for editing.
	InvestmentRequired       string `json:"investmentRequired,omitempty"`
	ExpectedNearTermBenefits string `json:"expectedNearTermBenefits,omitempty"`
	ExpectedLongTermBenefits string `json:"expectedLongTermBenefits,omitempty"`

	PrimaryBusinessFunction BusinessFunction `json:"primaryBusinessFunction,omitempty"`
}

// ActiveTimelineIndex returns the index of the active milestone: the first
// item flagged IsStepActive, else the last item. Returns -1 for an empty
// timeline; callers render "no timeline" in that case.
func ActiveTimelineIndex(items []TimelineItem) int {
	for i, it := range items {
		if it.IsStepActive {
			return i
		}
	}
	return len(items) - 1
}
