package domain

import (
	"sort"
	"strings"
	"time"
)

// DoneMarker is the substring that marks a set as completed inside its notes.
const DoneMarker = "✓ Done"

// DateLayout is the only date format entries are expected to carry.
const DateLayout = "2006-01-02"

// WorkoutEntry represents one logged set.
type WorkoutEntry struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`        // "YYYY-MM-DD"
	Exercise    string  `json:"exercise"`    // Free text, e.g. "Dumbbell Single Biceps Curl"
	Set         int     `json:"set"`         // Set number within that exercise/day
	WeightLbs   float64 `json:"weightLbs"`
	Reps        int     `json:"reps"`
	MuscleGroup string  `json:"muscleGroup"` // Open set: "Biceps", "Back", "Chest", ...
	Notes       string  `json:"notes"`
	Done        *bool   `json:"done,omitempty"`
	DoneAt      string  `json:"doneAt,omitempty"` // Advisory, RFC 3339
}

// IsCompleted reports whether the set was explicitly marked done or carries the marker in its notes.
func (e WorkoutEntry) IsCompleted() bool {
	if e.Done != nil && *e.Done {
		return true
	}
	return strings.Contains(e.Notes, DoneMarker)
}

// Volume is weight times reps for this set.
func (e WorkoutEntry) Volume() float64 {
	return e.WeightLbs * float64(e.Reps)
}

// ParseDate parses an entry date into a UTC calendar date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CalendarDay truncates t to its calendar date, expressed in UTC.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompareDates orders two entry dates chronologically when both parse,
// otherwise falls back to plain string comparison.
func CompareDates(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	if okA && okB {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

// SortEntries orders entries by date (newest first unless ascending) and then
// by exercise name. Ties keep their current order.
func SortEntries(entries []WorkoutEntry, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := CompareDates(entries[i].Date, entries[j].Date); c != 0 {
			if ascending {
				return c < 0
			}
			return c > 0
		}
		return entries[i].Exercise < entries[j].Exercise
	})
}
