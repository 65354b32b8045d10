package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alcyxob/workout-tracker/internal/domain"
)

func TestWorkoutEntry_IsCompleted(t *testing.T) {
	yes, no := true, false

	assert.True(t, domain.WorkoutEntry{Done: &yes}.IsCompleted())
	assert.False(t, domain.WorkoutEntry{Done: &no}.IsCompleted())
	assert.False(t, domain.WorkoutEntry{}.IsCompleted())
	assert.True(t, domain.WorkoutEntry{Notes: "heavy | ✓ Done"}.IsCompleted())
	assert.True(t, domain.WorkoutEntry{Done: &no, Notes: "✓ Done"}.IsCompleted())
}

func TestCompareDates(t *testing.T) {
	assert.Equal(t, -1, domain.CompareDates("2025-01-09", "2025-01-10"))
	assert.Equal(t, 1, domain.CompareDates("2025-02-01", "2025-01-31"))
	assert.Equal(t, 0, domain.CompareDates("2025-02-01", "2025-02-01"))
	// unparsable values fall back to string order
	assert.Equal(t, 1, domain.CompareDates("25-11-08", "2025-11-08"))
}

func TestCalendarDay(t *testing.T) {
	ts := time.Date(2025, 3, 4, 23, 59, 0, 0, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), domain.CalendarDay(ts))
}

func TestSortEntries(t *testing.T) {
	entries := []domain.WorkoutEntry{
		{ID: 1, Date: "2025-11-07", Exercise: "Squat"},
		{ID: 2, Date: "2025-11-09", Exercise: "Row"},
		{ID: 3, Date: "2025-11-09", Exercise: "Curl"},
		{ID: 4, Date: "2025-11-09", Exercise: "Curl"},
	}

	domain.SortEntries(entries, false)
	assert.Equal(t, []int{3, 4, 2, 1}, ids(entries))

	domain.SortEntries(entries, true)
	assert.Equal(t, []int{1, 3, 4, 2}, ids(entries))
}

func ids(entries []domain.WorkoutEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
