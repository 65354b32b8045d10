// Package script composes the spoken morning status line.
package script

import (
	"fmt"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
)

// SummarizeLastDay describes the latest training day. Completed sets take
// priority; when nothing is completed all entries are considered.
func SummarizeLastDay(history []domain.WorkoutEntry) domain.DaySummary {
	if len(history) == 0 {
		return domain.DaySummary{MuscleGroups: []string{}, Exercises: []string{}}
	}

	var completed []domain.WorkoutEntry
	for _, e := range history {
		if e.IsCompleted() {
			completed = append(completed, e)
		}
	}
	source := history
	if len(completed) > 0 {
		source = completed
	}

	latest := source[0].Date
	for _, e := range source[1:] {
		if domain.CompareDates(e.Date, latest) > 0 {
			latest = e.Date
		}
	}

	groups := []string{}
	exercises := []string{}
	seenGroup := map[string]bool{}
	seenExercise := map[string]bool{}
	for _, e := range source {
		if e.Date != latest {
			continue
		}
		if !seenGroup[e.MuscleGroup] {
			seenGroup[e.MuscleGroup] = true
			groups = append(groups, e.MuscleGroup)
		}
		if !seenExercise[e.Exercise] {
			seenExercise[e.Exercise] = true
			exercises = append(exercises, e.Exercise)
		}
	}

	return domain.DaySummary{Date: &latest, MuscleGroups: groups, Exercises: exercises}
}

// BuildMorningScript greets the user, recaps the last day (or notes there is
// none), recommends today's group when one is given and closes.
func BuildMorningScript(name string, lastDay domain.DaySummary, todaysGroup string) string {
	pieces := []string{fmt.Sprintf("Good morning, %s.", name)}

	if lastDay.Date != nil {
		pieces = append(pieces, fmt.Sprintf(
			"Yesterday, on %s, you trained %s with exercises like %s.",
			*lastDay.Date,
			strings.Join(lastDay.MuscleGroups, " and "),
			strings.Join(lastDay.Exercises, ", "),
		))
	} else {
		pieces = append(pieces, "We don't have any logged workouts yet.")
	}

	if todaysGroup != "" {
		pieces = append(pieces, fmt.Sprintf("Based on your recent training, I recommend focusing on %s today.", todaysGroup))
	}

	pieces = append(pieces, "Let's have a great workout.")
	return strings.Join(pieces, " ")
}

// BuildWhyLine explains the recommendation in one sentence.
func BuildWhyLine(lastDay domain.DaySummary, todaysGroup string) string {
	if lastDay.Date == nil {
		return "No workout history yet, let's start building it today."
	}
	groups := strings.Join(lastDay.MuscleGroups, " and ")
	if todaysGroup != "" {
		return fmt.Sprintf("Because you trained %s on %s, I'm steering you toward %s today to keep your recovery and volume balanced.",
			groups, *lastDay.Date, todaysGroup)
	}
	return fmt.Sprintf("Your last session on %s focused on %s.", *lastDay.Date, groups)
}
