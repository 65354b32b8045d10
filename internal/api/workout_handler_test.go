package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/domain"
)

func TestPing(t *testing.T) {
	env := newTestEnv(t, false)
	rec := env.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(api.HeaderRequestID))
}

func TestWorkouts_CRUD(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/workouts", map[string]any{
		"date": "2025-11-09", "exercise": "Lat Pulldown", "set": 1, "weightLbs": 100, "reps": 10, "muscleGroup": "Back",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.WorkoutEntry](t, rec)
	assert.Equal(t, 4, created.ID)

	rec = env.do(t, http.MethodPut, "/api/v1/workouts/4", map[string]any{
		"date": "2025-11-09", "exercise": "Lat Pulldown", "set": 1, "weightLbs": 110, "reps": 8, "muscleGroup": "Back",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 110.0, decode[domain.WorkoutEntry](t, rec).WeightLbs)

	rec = env.do(t, http.MethodPost, "/api/v1/workouts/4/done", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[domain.WorkoutEntry](t, rec)
	assert.True(t, done.IsCompleted())
	assert.Equal(t, domain.DoneMarker, done.Notes)
	require.NotEmpty(t, done.DoneAt)

	rec = env.do(t, http.MethodPut, "/api/v1/workouts/4", map[string]any{
		"date": "2025-11-09", "exercise": "Lat Pulldown", "set": 1, "weightLbs": 115, "reps": 8, "muscleGroup": "Back",
		"notes": done.Notes, "done": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, done.DoneAt, decode[domain.WorkoutEntry](t, rec).DoneAt)

	rec = env.do(t, http.MethodDelete, "/api/v1/workouts/4", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/workouts/4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Workout entry not found", errorMessage(t, rec))

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CounterStoreMutations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CounterStoreMutations.WithLabelValues("delete")))
}

func TestWorkouts_ListSorted(t *testing.T) {
	env := newTestEnv(t, false)
	for _, body := range []map[string]any{
		{"date": "2025-11-07", "exercise": "Squat", "set": 1, "reps": 5, "muscleGroup": "Legs"},
		{"date": "2025-11-09", "exercise": "Row", "set": 1, "reps": 10, "muscleGroup": "Back"},
		{"date": "2025-11-09", "exercise": "Curl", "set": 1, "reps": 10, "muscleGroup": "Biceps"},
	} {
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/workouts", body).Code)
	}

	desc := decode[[]domain.WorkoutEntry](t, env.do(t, http.MethodGet, "/api/v1/workouts", nil))
	require.Len(t, desc, 3)
	assert.Equal(t, []string{"Curl", "Row", "Squat"}, []string{desc[0].Exercise, desc[1].Exercise, desc[2].Exercise})

	asc := decode[[]domain.WorkoutEntry](t, env.do(t, http.MethodGet, "/api/v1/workouts?sort=asc", nil))
	assert.Equal(t, []string{"Squat", "Curl", "Row"}, []string{asc[0].Exercise, asc[1].Exercise, asc[2].Exercise})
}

func TestWorkouts_BadRequests(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/workouts", map[string]any{"date": "2025-11-09", "exercise": "Row", "set": 0, "muscleGroup": "Back"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/workouts", map[string]any{"date": "2025-11-09", "exercise": "Row", "set": 1, "weightLbs": -5, "muscleGroup": "Back"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/workouts", map[string]any{"date": "25-11-08", "exercise": "Row", "set": 1, "muscleGroup": "Back"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/workouts/1", map[string]any{"date": "11/08/2025", "exercise": "Row", "set": 1, "muscleGroup": "Back"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/workouts", "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/workouts/abc", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid workout ID format", errorMessage(t, rec))

	rec = env.do(t, http.MethodPost, "/api/v1/workouts/99/done", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkouts_SaveFailureIs500(t *testing.T) {
	env := newTestEnv(t, true)
	env.repo.SaveErr = errors.New("disk full")

	rec := env.do(t, http.MethodPost, "/api/v1/workouts/1/done", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	env.repo.SaveErr = nil
	list := decode[[]domain.WorkoutEntry](t, env.do(t, http.MethodGet, "/api/v1/workouts", nil))
	assert.Len(t, list, 3)
}

func TestWorkouts_FromPlan(t *testing.T) {
	env := newTestEnv(t, false)

	plan := decode[domain.Plan](t, env.do(t, http.MethodGet, "/api/v1/plans/Back", nil))
	require.NotEmpty(t, plan.Items)

	rec := env.do(t, http.MethodPost, "/api/v1/workouts/from-plan", map[string]any{"plan": plan, "markDone": false})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[[]domain.WorkoutEntry](t, rec)

	sets := 0
	for _, item := range plan.Items {
		sets += item.Sets
	}
	assert.Len(t, created, sets)
	assert.Equal(t, "2025-11-09", created[0].Date)
	assert.False(t, created[0].IsCompleted())

	rec = env.do(t, http.MethodPost, "/api/v1/workouts/from-plan", map[string]any{"plan": map[string]any{"group": "Back"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, false)
	env.do(t, http.MethodGet, "/ping", nil)

	rec := env.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "workout_test_server_request")
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.CounterRequests.WithLabelValues("GET", "200")), "ping and metrics")
}
