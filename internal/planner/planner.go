// Package planner expands per-group exercise templates into concrete session plans.
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
)

// Cue is the coaching line attached to every template plan.
const Cue = "Aim RPE ~7 on your top set. If you hit the high rep target with solid form, go +2.5–5% next time."

const planned = "(planned)"

// Matcher decides whether a logged exercise name counts as a template exercise.
type Matcher interface {
	Matches(templateName, loggedName string) bool
}

// ContainsMatcher matches when the logged name contains the template name, ignoring case.
type ContainsMatcher struct{}

func (ContainsMatcher) Matches(templateName, loggedName string) bool {
	return strings.Contains(strings.ToLower(loggedName), strings.ToLower(templateName))
}

// ExactMatcher matches names that are equal after trimming, ignoring case.
type ExactMatcher struct{}

func (ExactMatcher) Matches(templateName, loggedName string) bool {
	return strings.EqualFold(strings.TrimSpace(templateName), strings.TrimSpace(loggedName))
}

// Builder builds template plans using a pluggable name matcher.
type Builder struct {
	matcher Matcher
}

// NewBuilder returns a Builder; a nil matcher means ContainsMatcher.
func NewBuilder(matcher Matcher) *Builder {
	if matcher == nil {
		matcher = ContainsMatcher{}
	}
	return &Builder{matcher: matcher}
}

// BuildPlanForGroup uses the default ContainsMatcher.
func BuildPlanForGroup(group string, history []domain.WorkoutEntry) domain.Plan {
	return NewBuilder(nil).Build(group, history)
}

// Build expands the group's template. Unknown groups yield an empty item list.
func (b *Builder) Build(group string, history []domain.WorkoutEntry) domain.Plan {
	blocks := library[group]
	items := make([]domain.PlanItem, 0, len(blocks))
	for _, block := range blocks {
		items = append(items, domain.PlanItem{
			Exercise:        block.Name,
			Sets:            block.Sets,
			Reps:            FormatRepRange(block.RepRange),
			TargetWeightLbs: b.lastWeightFor(block.Name, history),
			Notes:           block.Emphasis,
		})
	}
	return domain.Plan{Group: group, Items: items, Cue: Cue}
}

// lastWeightFor returns the weight of the most recent matching set. Among
// sets on the same date the first one in history order wins.
func (b *Builder) lastWeightFor(name string, history []domain.WorkoutEntry) *float64 {
	var hit *domain.WorkoutEntry
	for i := range history {
		e := &history[i]
		if !b.matcher.Matches(name, e.Exercise) {
			continue
		}
		if hit == nil || domain.CompareDates(e.Date, hit.Date) > 0 {
			hit = e
		}
	}
	if hit == nil {
		return nil
	}
	w := hit.WeightLbs
	return &w
}

// FormatRepRange renders a rep range as "min–max".
func FormatRepRange(r [2]int) string {
	return fmt.Sprintf("%d–%d", r[0], r[1])
}

// EntriesFromPlan expands a plan into one loggable entry per set. Reps use
// the low end of the range (8 if it cannot be read) and weight the target
// (0 if unset). IDs are left for the store to assign.
func EntriesFromPlan(plan domain.Plan, date string, markDone bool) []domain.WorkoutEntry {
	notes := planned
	if markDone {
		notes = domain.DoneMarker
	}
	var out []domain.WorkoutEntry
	for _, item := range plan.Items {
		weight := 0.0
		if item.TargetWeightLbs != nil {
			weight = *item.TargetWeightLbs
		}
		reps := lowReps(item.Reps)
		for s := 1; s <= item.Sets; s++ {
			e := domain.WorkoutEntry{
				Date:        date,
				Exercise:    item.Exercise,
				Set:         s,
				WeightLbs:   weight,
				Reps:        reps,
				MuscleGroup: plan.Group,
				Notes:       notes,
			}
			if markDone {
				done := true
				e.Done = &done
			}
			out = append(out, e)
		}
	}
	return out
}

func lowReps(r string) int {
	low, _, _ := strings.Cut(r, "–")
	low, _, _ = strings.Cut(low, "-")
	n, err := strconv.Atoi(strings.TrimSpace(low))
	if err != nil || n <= 0 {
		return 8
	}
	return n
}
