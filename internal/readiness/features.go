// Package readiness derives per-muscle-group readiness features from the workout log.
package readiness

import (
	"math"
	"slices"
	"time"

	"alcyxob/workout-tracker/internal/domain"
)

// NoHistoryDays is reported as DaysSinceLast for a group with no logged sets.
const NoHistoryDays = 99

const (
	volumeWindowDays = 7
	defaultReps      = 10
	repsNormMin      = 5
	repsNormMax      = 15
	readyVolumeRatio = 1.25
)

var minRestDays = map[string]int{
	"Chest":      2,
	"Back":       2,
	"Shoulders":  2,
	"Legs":       3,
	"Biceps":     1,
	"Triceps":    1,
	"Quads":      3,
	"Hamstrings": 3,
	"Glutes":     2,
	"Abs":        1,
}

// MinimumRestDays returns the rest a group needs before it is considered ready again.
func MinimumRestDays(group string) int {
	if d, ok := minRestDays[group]; ok {
		return d
	}
	return 2
}

// Feature is one readiness row for a muscle group.
type Feature struct {
	Group          string     `json:"group"`
	DaysSinceLast  int        `json:"daysSinceLast"`
	SevenDayVolume float64    `json:"sevenDayVolume"`
	VolumeNorm     float64    `json:"volumeNorm"`
	AvgRepsNorm    float64    `json:"avgRepsNorm"`
	ReadyLabel     int        `json:"readyLabel"`
	X              [3]float64 `json:"x"` // [daysSinceLast, volumeNorm, avgRepsNorm]
	Y              int        `json:"y"`
}

// BuildTodayFeatures returns one feature row per group. When groups is empty
// the distinct groups seen in entries are used, in first-seen order. A zero
// ref means now.
func BuildTodayFeatures(entries []domain.WorkoutEntry, groups []string, ref time.Time) []Feature {
	if ref.IsZero() {
		ref = time.Now()
	}
	today := domain.CalendarDay(ref)

	if len(groups) == 0 {
		groups = distinctGroups(entries)
	}

	vol7 := make(map[string]float64, len(groups))
	volumes := make([]float64, 0, len(groups))
	for _, g := range groups {
		v := windowVolume(entries, g, today, volumeWindowDays)
		vol7[g] = v
		volumes = append(volumes, v)
	}

	basis := Median(volumes)
	if basis == 0 {
		basis = 1
	}

	features := make([]Feature, 0, len(groups))
	for _, g := range groups {
		last, ok := lastSession(entries, g)

		daysSince := NoHistoryDays
		reps := defaultReps
		if ok {
			d, _ := domain.ParseDate(last.Date)
			daysSince = max(0, int(math.Floor(today.Sub(d).Hours()/24)))
			reps = last.Reps
		}

		v7 := vol7[g]
		f := Feature{
			Group:          g,
			DaysSinceLast:  daysSince,
			SevenDayVolume: v7,
			VolumeNorm:     Normalize(v7, 0, basis*2),
			AvgRepsNorm:    Normalize(float64(reps), repsNormMin, repsNormMax),
		}
		if daysSince >= MinimumRestDays(g) && v7 <= basis*readyVolumeRatio {
			f.ReadyLabel = 1
		}
		f.X = [3]float64{float64(f.DaysSinceLast), f.VolumeNorm, f.AvgRepsNorm}
		f.Y = f.ReadyLabel
		features = append(features, f)
	}

	return features
}

// Normalize clamps v into [min, max] and scales it linearly into [0, 1].
func Normalize(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	c := math.Max(min, math.Min(max, v))
	return (c - min) / (max - min)
}

// Median of values; 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	s := slices.Clone(values)
	slices.Sort(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return (s[m-1] + s[m]) / 2
}

func distinctGroups(entries []domain.WorkoutEntry) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, e := range entries {
		if seen[e.MuscleGroup] {
			continue
		}
		seen[e.MuscleGroup] = true
		groups = append(groups, e.MuscleGroup)
	}
	return groups
}

// lastSession returns the latest dated entry for the group. Entries whose
// date does not parse are ignored.
func lastSession(entries []domain.WorkoutEntry, group string) (domain.WorkoutEntry, bool) {
	var (
		best     domain.WorkoutEntry
		bestDate time.Time
		found    bool
	)
	for _, e := range entries {
		if e.MuscleGroup != group {
			continue
		}
		d, ok := domain.ParseDate(e.Date)
		if !ok {
			continue
		}
		if !found || d.After(bestDate) {
			best, bestDate, found = e, d, true
		}
	}
	return best, found
}

func windowVolume(entries []domain.WorkoutEntry, group string, today time.Time, days int) float64 {
	start := today.AddDate(0, 0, -days)
	var total float64
	for _, e := range entries {
		if e.MuscleGroup != group {
			continue
		}
		d, ok := domain.ParseDate(e.Date)
		if !ok || d.Before(start) || d.After(today) {
			continue
		}
		total += e.Volume()
	}
	return total
}
