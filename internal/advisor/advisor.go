// Package advisor asks a remote reasoning service for today's workout plan.
package advisor

//go:generate mockgen -source=$GOFILE -destination=mock/advisor_mock.go -package=advisormock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/llm"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyReply     = errors.New("empty completion from coach")
	ErrMalformedReply = errors.New("coach reply is not a plan")
)

// Advisor recommends a plan from per-day session summaries.
type Advisor interface {
	Recommend(ctx context.Context, sessions []domain.SessionSummary) (*domain.Plan, error)
}

// OpenAIAdvisor calls the chat completions API in JSON mode.
type OpenAIAdvisor struct {
	cfg     config.OpenAIConfig
	athlete string
}

var _ Advisor = (*OpenAIAdvisor)(nil)

func NewOpenAIAdvisor(cfg config.OpenAIConfig, athlete string) *OpenAIAdvisor {
	return &OpenAIAdvisor{cfg: cfg, athlete: athlete}
}

const systemPrompt = "You are a concise, positive lifting coach who writes short, practical instructions."

func (a *OpenAIAdvisor) Recommend(ctx context.Context, sessions []domain.SessionSummary) (*domain.Plan, error) {
	client, err := llm.NewClient(a.cfg)
	if err != nil {
		return nil, err
	}

	prompt, err := buildPrompt(a.athlete, sessions)
	if err != nil {
		return nil, err
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.ChatModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyReply
	}

	logrus.Debugf("coach reply: %d bytes, %d sessions sent", len(resp.Choices[0].Message.Content), len(sessions))
	return ParsePlan(resp.Choices[0].Message.Content)
}

func buildPrompt(athlete string, sessions []domain.SessionSummary) (string, error) {
	history, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode sessions: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an upbeat, evidence-based strength coach")
	if athlete != "" {
		fmt.Fprintf(&b, " planning today's workout for a lifter named %s", athlete)
	}
	b.WriteString(".\n\nRecent sessions, most recent first (each entries array holds the individual sets):\n\n")
	b.Write(history)
	b.WriteString(`

Rules:
- Weigh recency and muscle group balance across days.
- Do not repeat yesterday's primary muscle group unless that session was clearly low volume.
- Pick ONE primary muscle group for today and design 3 gym-realistic exercises with practical rep ranges.
- With no history, start with a beginner-friendly upper-body day.
- Keep wording short; it is read aloud.

Reply with JSON only, shaped exactly like:
{"plan":{"group":"Chest","items":[{"exercise":"Dumbbell Bench Press","sets":3,"reps":"8–12","targetWeightLbs":null,"notes":"Controlled tempo."}],"cue":"Aim for RPE 7–8 on your hardest set."}}
targetWeightLbs may be null.`)
	return b.String(), nil
}
