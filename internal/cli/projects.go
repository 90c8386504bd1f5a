package cli

import (
	"context"

	"github.com/spf13/cobra"

	"portfolio-cli/internal/collection"
	"portfolio-cli/internal/form"
	"portfolio-cli/internal/model"
	"portfolio-cli/internal/store"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and edit portfolio projects",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsUpdateCmd(app))
	cmd.AddCommand(newProjectsTagsCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var (
		tag      string
		status   string
		function string
		page     int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects (filtered and paginated like the dashboard)",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.client().ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			v := collection.NewView()
			v.SetProjects(projects)
			v.SetTag(tag)
			v.SetStatus(model.Status(status))
			v.SetFunction(model.BusinessFunction(function))

			if all {
				return writeOut(cmd, app, map[string]any{"data": v.Filtered()})
			}

			v.SetPage(page)
			items := v.PageItems()
			if items == nil {
				items = []model.Project{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": items,
				"meta": map[string]any{
					"page":       v.Page(),
					"totalPages": v.TotalPages(),
					"total":      len(v.Filtered()),
				},
			})
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "Only projects carrying this tag")
	cmd.Flags().StringVar(&status, "status", "", "Only projects with this status (PRODUCTION|PILOT|POC|IDEATION)")
	cmd.Flags().StringVar(&function, "function", "", "Only projects with this primary business function")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (pages hold 6 projects)")
	cmd.Flags().BoolVar(&all, "all", false, "Print the whole filtered set, unpaginated")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.client().ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			v := collection.NewView()
			v.SetProjects(projects)
			p, ok := v.FindByID(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("project", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
	return cmd
}

func newProjectsTagsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.client().ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			v := collection.NewView()
			v.SetProjects(projects)
			return writeOut(cmd, app, map[string]any{"data": v.AvailableTags()})
		},
	}
	return cmd
}

// projectFlags binds the editable project fields as flags so create and
// update share one definition.
type projectFlags struct {
	title       string
	description string
	status      string
	tags        []string
	why         string
	what        string
	individuals []string

	ntiStatus string
	ntiLink   string

	benefitsCategory  string
	aiBenefitCategory string

	investment float64
	nearTerm   float64
	longTerm   float64

	function string
}

func (pf *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.title, "title", "", "Project title (required on create)")
	cmd.Flags().StringVar(&pf.description, "description", "", "Short description (required on create)")
	cmd.Flags().StringVar(&pf.status, "status", "", "Status (PRODUCTION|PILOT|POC|IDEATION)")
	cmd.Flags().StringArrayVar(&pf.tags, "tag", nil, "Tag (repeatable, max 3)")
	cmd.Flags().StringVar(&pf.why, "why", "", "Why we built this")
	cmd.Flags().StringVar(&pf.what, "what", "", "What we've built")
	cmd.Flags().StringArrayVar(&pf.individuals, "individual", nil, "Participant name (repeatable)")
	cmd.Flags().StringVar(&pf.ntiStatus, "nti-status", "", "NTI status (Not Applicable|In-Progress|Completed)")
	cmd.Flags().StringVar(&pf.ntiLink, "nti-link", "", "NTI link")
	cmd.Flags().StringVar(&pf.benefitsCategory, "benefits-category", "", "Primary benefits category")
	cmd.Flags().StringVar(&pf.aiBenefitCategory, "ai-benefit-category", "", "Primary AI benefit category")
	cmd.Flags().Float64Var(&pf.investment, "investment", 0, "Investment required (plain number, e.g. 150000)")
	cmd.Flags().Float64Var(&pf.nearTerm, "near-term", 0, "Expected near-term benefits")
	cmd.Flags().Float64Var(&pf.longTerm, "long-term", 0, "Expected long-term benefits")
	cmd.Flags().StringVar(&pf.function, "function", "", "Primary business function")
}

// apply copies every flag the user set onto the draft.
func (pf *projectFlags) apply(cmd *cobra.Command, f *form.Form) {
	set := cmd.Flags().Changed
	if set("title") {
		f.Title = pf.title
	}
	if set("description") {
		f.Description = pf.description
	}
	if set("status") {
		f.Status = model.Status(pf.status)
	}
	if set("tag") {
		f.Tags = nil
		for _, t := range pf.tags {
			f.AddTag(t)
		}
	}
	if set("why") {
		f.WhyWeBuiltThis = pf.why
	}
	if set("what") {
		f.WhatWeveBuilt = pf.what
	}
	if set("individual") {
		f.IndividualsInvolved = nil
		for _, n := range pf.individuals {
			f.AddIndividual(n)
		}
	}
	if set("nti-status") {
		f.NTIStatus = model.NTIStatus(pf.ntiStatus)
	}
	if set("nti-link") {
		f.NTILink = pf.ntiLink
	}
	if set("benefits-category") {
		f.BenefitsCategory = model.BenefitsCategory(pf.benefitsCategory)
	}
	if set("ai-benefit-category") {
		f.AIBenefitCategory = model.AIBenefitCategory(pf.aiBenefitCategory)
	}
	if set("investment") {
		v := pf.investment
		f.InvestmentRequired = &v
	}
	if set("near-term") {
		v := pf.nearTerm
		f.ExpectedNearTermBenefits = &v
	}
	if set("long-term") {
		v := pf.longTerm
		f.ExpectedLongTermBenefits = &v
	}
	if set("function") {
		f.PrimaryBusinessFunction = model.BusinessFunction(pf.function)
	}
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	pf := &projectFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New()
			pf.apply(cmd, f)
			draft, err := f.Submit()
			if err != nil {
				return writeErr(cmd, err)
			}
			created, err := app.client().CreateProject(cmd.Context(), draft)
			if err != nil {
				return writeErr(cmd, err)
			}
			logOp(cmd.Context(), "create", created)
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}
	pf.register(cmd)
	return cmd
}

func newProjectsUpdateCmd(app *App) *cobra.Command {
	pf := &projectFlags{}
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project (only the flags you pass change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := app.client()
			projects, err := client.ListProjects(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			v := collection.NewView()
			v.SetProjects(projects)
			existing, ok := v.FindByID(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("project", args[0]))
			}

			f := form.Open(existing)
			pf.apply(cmd, f)
			draft, err := f.Submit()
			if err != nil {
				return writeErr(cmd, err)
			}
			updated, err := client.UpdateProject(cmd.Context(), existing.ID, draft)
			if err != nil {
				return writeErr(cmd, err)
			}
			logOp(cmd.Context(), "update", updated)
			return writeOut(cmd, app, map[string]any{"data": updated})
		},
	}
	pf.register(cmd)
	return cmd
}

// logOp records the round-trip in the local op log. Failures are swallowed;
// the log is informational and must never fail a successful save.
func logOp(ctx context.Context, kind string, p model.Project) {
	log, err := store.OpenOpLog(ctx)
	if err != nil {
		return
	}
	defer log.Close()
	_ = log.Append(ctx, kind, p)
}
