package advisor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/workout-tracker/internal/advisor"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/llm"
)

func chatServer(t *testing.T, status int, content string, gotPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model          string `json:"model"`
			ResponseFormat struct {
				Type string `json:"type"`
			} `json:"response_format"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		if gotPrompt != nil && len(req.Messages) > 0 {
			*gotPrompt = req.Messages[len(req.Messages)-1].Content
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			return
		}
		resp := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testConfig(baseURL string) config.OpenAIConfig {
	return config.OpenAIConfig{APIKey: "sk-test", BaseURL: baseURL + "/v1", ChatModel: "gpt-4o-mini"}
}

func TestOpenAIAdvisor_Recommend(t *testing.T) {
	var prompt string
	srv := chatServer(t, http.StatusOK, `{"plan":{"group":"Back","items":[{"exercise":"Row","sets":3,"reps":"8–10"}],"cue":"Breathe."}}`, &prompt)
	defer srv.Close()

	sessions := advisor.SummarizeSessions([]domain.WorkoutEntry{
		{ID: 1, Date: "2025-11-08", Exercise: "Dumbbell Single Biceps Curl", MuscleGroup: "Biceps", Set: 1, Reps: 10},
	})
	adv := advisor.NewOpenAIAdvisor(testConfig(srv.URL), "Viradeth")
	plan, err := adv.Recommend(context.Background(), sessions)
	require.NoError(t, err)

	assert.Equal(t, "Back", plan.Group)
	require.Len(t, plan.Items, 1)
	assert.Nil(t, plan.Items[0].TargetWeightLbs)
	assert.Contains(t, prompt, "Viradeth")
	assert.Contains(t, prompt, "Dumbbell Single Biceps Curl")
}

func TestOpenAIAdvisor_EmptyReply(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "  ", nil)
	defer srv.Close()

	_, err := advisor.NewOpenAIAdvisor(testConfig(srv.URL), "").Recommend(context.Background(), nil)
	assert.ErrorIs(t, err, advisor.ErrEmptyReply)
}

func TestOpenAIAdvisor_APIError(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, "", nil)
	defer srv.Close()

	_, err := advisor.NewOpenAIAdvisor(testConfig(srv.URL), "").Recommend(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "quota exceeded", llm.ErrorMessage(err, "Recommendation failed"))
}

func TestOpenAIAdvisor_MissingKey(t *testing.T) {
	cfg := config.OpenAIConfig{ChatModel: "gpt-4o-mini"}
	_, err := advisor.NewOpenAIAdvisor(cfg, "").Recommend(context.Background(), nil)
	assert.ErrorIs(t, err, llm.ErrMissingCredential)
}

func TestOpenAIAdvisor_NoHistoryPrompt(t *testing.T) {
	var prompt string
	srv := chatServer(t, http.StatusOK, `{"plan":{"group":"Chest","items":[]}}`, &prompt)
	defer srv.Close()

	plan, err := advisor.NewOpenAIAdvisor(testConfig(srv.URL), "").Recommend(context.Background(), []domain.SessionSummary{})
	require.NoError(t, err)
	assert.Empty(t, plan.Items)
	assert.True(t, strings.Contains(prompt, "[]"))
}
