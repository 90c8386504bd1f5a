package model

import "portfolio-cli/internal/currency"

// ROI computes return on investment as a percentage:
// (near-term + long-term benefits - investment) / investment * 100.
// ok is false when the investment is absent, unparseable, or zero.
func ROI(p Project) (roi float64, ok bool) {
	investment, ok := currency.Parse(p.InvestmentRequired)
	if !ok || investment == 0 {
		return 0, false
	}
	nearTerm, _ := currency.Parse(p.ExpectedNearTermBenefits)
	longTerm, _ := currency.Parse(p.ExpectedLongTermBenefits)

	total := nearTerm + longTerm
	return (total - investment) / investment * 100, true
}

// TimelineProgress mirrors the backend's progress accounting: items before the
// active index count as completed.
type TimelineProgress struct {
	Total     int
	Completed int
	Percent   float64
}

func ProgressOf(p Project) TimelineProgress {
	total := len(p.Timeline)
	if total == 0 {
		return TimelineProgress{}
	}
	completed := ActiveTimelineIndex(p.Timeline)
	if completed < 0 {
		completed = 0
	}
	return TimelineProgress{
		Total:     total,
		Completed: completed,
		Percent:   float64(completed) / float64(total) * 100,
	}
}
