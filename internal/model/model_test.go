package model

import "testing"

func TestStatusColorFallback(t *testing.T) {
	t.Parallel()

	if got := StatusColor(StatusProduction); got != "green" {
		t.Fatalf("StatusColor(PRODUCTION) = %q; want green", got)
	}
	if got := StatusColor(Status("RETIRED")); got != "gray" {
		t.Fatalf("StatusColor(unknown) = %q; want gray", got)
	}
	if got := NTIStatusColor(NTIStatus("")); got != "gray" {
		t.Fatalf("NTIStatusColor(empty) = %q; want gray", got)
	}
}

func TestActiveTimelineIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []TimelineItem
		want  int
	}{
		{name: "empty", items: nil, want: -1},
		{
			name: "explicit active wins",
			items: []TimelineItem{
				{ID: "a"}, {ID: "b", IsStepActive: true}, {ID: "c"},
			},
			want: 1,
		},
		{
			name: "first active wins when several are flagged",
			items: []TimelineItem{
				{ID: "a", IsStepActive: true}, {ID: "b", IsStepActive: true},
			},
			want: 0,
		},
		{
			name:  "falls back to last item",
			items: []TimelineItem{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			want:  2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ActiveTimelineIndex(tt.items); got != tt.want {
				t.Fatalf("ActiveTimelineIndex = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestROI(t *testing.T) {
	t.Parallel()

	p := Project{
		InvestmentRequired:       "$100,000",
		ExpectedNearTermBenefits: "$30,000",
		ExpectedLongTermBenefits: "$150,000",
	}
	roi, ok := ROI(p)
	if !ok {
		t.Fatalf("expected ROI to be computable")
	}
	if roi != 80 {
		t.Fatalf("ROI = %v; want 80", roi)
	}

	if _, ok := ROI(Project{}); ok {
		t.Fatalf("expected no ROI without investment")
	}
	if _, ok := ROI(Project{InvestmentRequired: "$0"}); ok {
		t.Fatalf("expected no ROI for zero investment")
	}
}

func TestProgressOf(t *testing.T) {
	t.Parallel()

	p := Project{Timeline: []TimelineItem{
		{ID: "a"}, {ID: "b"}, {ID: "c", IsStepActive: true}, {ID: "d"},
	}}
	got := ProgressOf(p)
	if got.Total != 4 || got.Completed != 2 {
		t.Fatalf("ProgressOf = %+v; want total 4 completed 2", got)
	}
	if got.Percent != 50 {
		t.Fatalf("Percent = %v; want 50", got.Percent)
	}

	if got := ProgressOf(Project{}); got.Total != 0 || got.Completed != 0 {
		t.Fatalf("ProgressOf(empty) = %+v; want zero value", got)
	}
}
