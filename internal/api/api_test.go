package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alcyxob/workout-tracker/internal/api"
	advisormock "alcyxob/workout-tracker/internal/advisor/mock"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository/memory"
	"alcyxob/workout-tracker/internal/service"
	speechmock "alcyxob/workout-tracker/internal/speech/mock"
)

type testEnv struct {
	router  *gin.Engine
	repo    *memory.BlobRepository
	advisor *advisormock.MockAdvisor
	speaker *speechmock.MockSpeaker
	metrics *metrics.Manager
}

func newTestEnv(t *testing.T, seed bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	env := &testEnv{
		repo:    memory.NewBlobRepository(),
		advisor: advisormock.NewMockAdvisor(ctrl),
		speaker: speechmock.NewMockSpeaker(ctrl),
	}
	m, reg := metrics.NewTestManagerAndRegistry()
	env.metrics = m

	now := func() time.Time { return time.Date(2025, 11, 9, 8, 0, 0, 0, time.UTC) }
	workouts, err := service.NewWorkoutService(context.Background(), env.repo, service.WorkoutStoreOptions{Seed: seed, Metrics: m, Now: now})
	require.NoError(t, err)
	recs := service.NewRecommendationService(env.advisor, service.RecommendationOptions{Metrics: m, Now: now})
	coach := service.NewCoachService(workouts, recs, env.speaker, "Viradeth", m)

	env.router = gin.New()
	api.SetupRoutes(env.router, api.Services{
		Workouts:        workouts,
		Recommendations: recs,
		Coach:           coach,
	}, m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, r)
	require.NoError(t, err)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}
