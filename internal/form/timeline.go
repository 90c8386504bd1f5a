package form

import (
	"github.com/google/uuid"

	"portfolio-cli/internal/model"
)

// NewTimelineItem returns an empty, inactive milestone with a fresh client id.
func NewTimelineItem() model.TimelineItem {
	return model.TimelineItem{ID: uuid.NewString()}
}

// TimelineEditor manages the draft's ordered milestone list. All index
// arguments outside [0, len) are ignored; the display layer drives these
// operations and an out-of-range index just means the row no longer exists.
type TimelineEditor struct {
	Items []model.TimelineItem
}

func (e *TimelineEditor) valid(i int) bool {
	return i >= 0 && i < len(e.Items)
}

func (e *TimelineEditor) Add() {
	e.Items = append(e.Items, NewTimelineItem())
}

func (e *TimelineEditor) Remove(i int) {
	if !e.valid(i) {
		return
	}
	e.Items = append(e.Items[:i], e.Items[i+1:]...)
}

func (e *TimelineEditor) SetTitle(i int, title string) {
	if !e.valid(i) {
		return
	}
	e.Items[i].Title = title
}

func (e *TimelineEditor) SetDescription(i int, description string) {
	if !e.valid(i) {
		return
	}
	e.Items[i].Description = description
}

func (e *TimelineEditor) SetDate(i int, date string) {
	if !e.valid(i) {
		return
	}
	e.Items[i].Date = date
}

// SetActive flags one milestone as the current step. At most one item may be
// active, so activating clears the flag on every sibling in the same step.
func (e *TimelineEditor) SetActive(i int, active bool) {
	if !e.valid(i) {
		return
	}
	if !active {
		e.Items[i].IsStepActive = false
		return
	}
	for j := range e.Items {
		e.Items[j].IsStepActive = j == i
	}
}

// MoveUp swaps the item with its predecessor; no-op at index 0.
func (e *TimelineEditor) MoveUp(i int) {
	if !e.valid(i) || i == 0 {
		return
	}
	e.Items[i-1], e.Items[i] = e.Items[i], e.Items[i-1]
}

// MoveDown swaps the item with its successor; no-op at the last index.
func (e *TimelineEditor) MoveDown(i int) {
	if !e.valid(i) || i == len(e.Items)-1 {
		return
	}
	e.Items[i], e.Items[i+1] = e.Items[i+1], e.Items[i]
}

func (e *TimelineEditor) ActiveIndex() int {
	return model.ActiveTimelineIndex(e.Items)
}
