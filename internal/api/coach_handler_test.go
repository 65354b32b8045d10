package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
)

func TestReadiness(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do(t, http.MethodGet, "/api/v1/readiness?groups=Biceps,%20Legs&date=2025-11-10", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[service.ReadinessReport](t, rec)

	require.Len(t, report.Features, 2)
	assert.Equal(t, "Biceps", report.Features[0].Group)
	assert.Equal(t, 2, report.Features[0].DaysSinceLast)
	assert.Equal(t, 500.0, report.Features[0].SevenDayVolume)
	assert.Equal(t, "Legs", report.Features[1].Group)
	assert.Equal(t, 99, report.Features[1].DaysSinceLast)
	require.Len(t, report.Recommendations, 2)
	require.NotNil(t, report.Chosen)

	rec = env.do(t, http.MethodGet, "/api/v1/readiness?date=11/10/2025", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlans(t *testing.T) {
	env := newTestEnv(t, true)

	groups := decode[[]string](t, env.do(t, http.MethodGet, "/api/v1/plans", nil))
	assert.Equal(t, []string{"Chest", "Back", "Shoulders", "Biceps", "Triceps", "Legs"}, groups)

	plan := decode[domain.Plan](t, env.do(t, http.MethodGet, "/api/v1/plans/Biceps", nil))
	assert.Equal(t, "Biceps", plan.Group)
	require.NotEmpty(t, plan.Items)
	assert.NotEmpty(t, plan.Cue)

	unknown := decode[domain.Plan](t, env.do(t, http.MethodGet, "/api/v1/plans/Forearms", nil))
	assert.Empty(t, unknown.Items)
}

func TestMorningScript(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do(t, http.MethodGet, "/api/v1/morning-script?name=Sam&group=Back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	b := decode[service.MorningBriefing](t, rec)
	require.NotNil(t, b.Summary.Date)
	assert.Equal(t, "2025-11-08", *b.Summary.Date)
	assert.Contains(t, b.Script, "Good morning, Sam.")
	assert.Contains(t, b.Script, "focusing on Back today")
	assert.NotEmpty(t, b.Why)

	b = decode[service.MorningBriefing](t, env.do(t, http.MethodGet, "/api/v1/morning-script", nil))
	assert.Contains(t, b.Script, "Good morning, Viradeth.")
	assert.Equal(t, "Biceps", b.Group)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t, true)

	stats := decode[service.WorkoutStats](t, env.do(t, http.MethodGet, "/api/v1/stats", nil))
	assert.Equal(t, 3, stats.TotalSets)
	assert.Equal(t, 3, stats.CompletedSets)
	assert.Equal(t, 1, stats.TrainingDays)
	assert.InDelta(t, 500.0, stats.TotalVolume, 1e-9)
}
