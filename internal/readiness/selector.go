package readiness

import (
	"math"
	"sort"

	"alcyxob/workout-tracker/internal/domain"
)

// Selector picks the group to train from a set of feature rows.
type Selector interface {
	Select(features []Feature) (Feature, bool)
}

// HeuristicSelector prefers ready groups with the least recent volume,
// breaking ties by the longest rest and then by name. If no group is ready
// it falls back to the most rested one.
type HeuristicSelector struct{}

var _ Selector = HeuristicSelector{}

func (HeuristicSelector) Select(features []Feature) (Feature, bool) {
	if len(features) == 0 {
		return Feature{}, false
	}
	ranked := make([]Feature, len(features))
	copy(ranked, features)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ReadyLabel != b.ReadyLabel {
			return a.ReadyLabel > b.ReadyLabel
		}
		if a.ReadyLabel == 1 && a.VolumeNorm != b.VolumeNorm {
			return a.VolumeNorm < b.VolumeNorm
		}
		if a.DaysSinceLast != b.DaysSinceLast {
			return a.DaysSinceLast > b.DaysSinceLast
		}
		return a.Group < b.Group
	})
	return ranked[0], true
}

// ReadyScore condenses a feature row into [0, 1]: how much of the required
// rest has elapsed, discounted by recent volume.
func ReadyScore(f Feature) float64 {
	rest := math.Min(1, float64(f.DaysSinceLast)/float64(MinimumRestDays(f.Group)))
	score := rest * (1 - f.VolumeNorm)
	return math.Round(score*100) / 100
}

// Recommendations maps feature rows onto scored recommendations, in row order.
func Recommendations(features []Feature) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(features))
	for _, f := range features {
		recs = append(recs, ToRecommendation(f))
	}
	return recs
}

func ToRecommendation(f Feature) domain.Recommendation {
	return domain.Recommendation{
		MuscleGroup: f.Group,
		ReadyScore:  ReadyScore(f),
		Ready:       f.ReadyLabel == 1,
	}
}
