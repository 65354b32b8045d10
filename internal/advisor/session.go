package advisor

import (
	"sort"

	"alcyxob/workout-tracker/internal/domain"
)

// DefaultHistoryCap bounds how many entries are sent to the remote coach.
const DefaultHistoryCap = 200

// CapHistory keeps the limit most recent entries (by date, stable).
func CapHistory(history []domain.WorkoutEntry, limit int) []domain.WorkoutEntry {
	if limit <= 0 {
		limit = DefaultHistoryCap
	}
	sorted := make([]domain.WorkoutEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return domain.CompareDates(sorted[i].Date, sorted[j].Date) > 0
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// SummarizeSessions groups entries by date, most recent date first. Within a
// session groups and exercises keep first-seen order.
func SummarizeSessions(history []domain.WorkoutEntry) []domain.SessionSummary {
	byDate := make(map[string][]domain.WorkoutEntry)
	var dates []string
	for _, e := range history {
		if _, ok := byDate[e.Date]; !ok {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return domain.CompareDates(dates[i], dates[j]) > 0
	})

	sessions := make([]domain.SessionSummary, 0, len(dates))
	for _, date := range dates {
		entries := byDate[date]
		s := domain.SessionSummary{
			Date:         date,
			MuscleGroups: []string{},
			Exercises:    []string{},
			TotalSets:    len(entries),
			Entries:      entries,
		}
		seenGroup := map[string]bool{}
		seenExercise := map[string]bool{}
		for _, e := range entries {
			if !seenGroup[e.MuscleGroup] {
				seenGroup[e.MuscleGroup] = true
				s.MuscleGroups = append(s.MuscleGroups, e.MuscleGroup)
			}
			if !seenExercise[e.Exercise] {
				seenExercise[e.Exercise] = true
				s.Exercises = append(s.Exercises, e.Exercise)
			}
			s.TotalReps += e.Reps
		}
		sessions = append(sessions, s)
	}
	return sessions
}
