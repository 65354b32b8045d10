package speech

import (
	"context"
	"fmt"
	"strings"

	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/llm"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISpeaker uses the OpenAI speech endpoint, streaming mp3.
type OpenAISpeaker struct {
	cfg config.OpenAIConfig
}

var _ Speaker = (*OpenAISpeaker)(nil)

func NewOpenAISpeaker(cfg config.OpenAIConfig) *OpenAISpeaker {
	return &OpenAISpeaker{cfg: cfg}
}

func (s *OpenAISpeaker) ListVoices(_ context.Context) ([]Voice, error) {
	out := make([]Voice, len(Voices))
	copy(out, Voices)
	return out, nil
}

func (s *OpenAISpeaker) Speak(ctx context.Context, text string, opts Options) (*Playback, error) {
	client, err := llm.NewClient(s.cfg)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	voice := opts.Voice
	if voice == "" {
		voice = voiceOrDefault(s.cfg.DefaultVoice)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	resp, err := client.CreateSpeech(streamCtx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.cfg.SpeechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          opts.Speed,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create speech: %w", err)
	}

	return NewPlayback(resp, resp.Header().Get("Content-Type"), cancel), nil
}
