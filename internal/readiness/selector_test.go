package readiness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-tracker/internal/readiness"
)

func TestHeuristicSelector_Select(t *testing.T) {
	sel := readiness.HeuristicSelector{}

	_, ok := sel.Select(nil)
	assert.False(t, ok)

	chosen, ok := sel.Select([]readiness.Feature{
		{Group: "Chest", DaysSinceLast: 5, VolumeNorm: 0.4, ReadyLabel: 1},
		{Group: "Back", DaysSinceLast: 9, VolumeNorm: 0.1, ReadyLabel: 0},
		{Group: "Legs", DaysSinceLast: 4, VolumeNorm: 0.2, ReadyLabel: 1},
		{Group: "Abs", DaysSinceLast: 6, VolumeNorm: 0.2, ReadyLabel: 1},
	})
	require.True(t, ok)
	assert.Equal(t, "Abs", chosen.Group)

	chosen, ok = sel.Select([]readiness.Feature{
		{Group: "Chest", DaysSinceLast: 1, VolumeNorm: 0.4},
		{Group: "Back", DaysSinceLast: 3, VolumeNorm: 0.9},
	})
	require.True(t, ok)
	assert.Equal(t, "Back", chosen.Group, "most rested when none ready")
}

func TestReadyScore(t *testing.T) {
	assert.Equal(t, 1.0, readiness.ReadyScore(readiness.Feature{Group: "Legs", DaysSinceLast: 99}))
	assert.Equal(t, 0.5, readiness.ReadyScore(readiness.Feature{Group: "Chest", DaysSinceLast: 1}))
	assert.Equal(t, 0.25, readiness.ReadyScore(readiness.Feature{Group: "Chest", DaysSinceLast: 4, VolumeNorm: 0.75}))
	assert.Equal(t, 0.0, readiness.ReadyScore(readiness.Feature{Group: "Biceps"}))
}

func TestRecommendations(t *testing.T) {
	recs := readiness.Recommendations([]readiness.Feature{
		{Group: "Legs", DaysSinceLast: 99, ReadyLabel: 1},
		{Group: "Chest", DaysSinceLast: 0},
	})
	require.Len(t, recs, 2)
	assert.Equal(t, "Legs", recs[0].MuscleGroup)
	assert.True(t, recs[0].Ready)
	assert.Equal(t, 1.0, recs[0].ReadyScore)
	assert.False(t, recs[1].Ready)
}
