// Package speech turns coaching text into audio.
package speech

//go:generate mockgen -source=$GOFILE -destination=mock/speaker_mock.go -package=speechmock

import (
	"context"
	"errors"
	"io"
	"sync"
)

const (
	DefaultVoice       = "alloy"
	DefaultContentType = "audio/mpeg"
)

var ErrEmptyText = errors.New("missing text")

type Voice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Voices lists the voice ids offered to clients.
var Voices = []Voice{
	{ID: "alloy", Label: "Alloy (balanced)"},
	{ID: "nova", Label: "Nova (energetic)"},
	{ID: "echo", Label: "Echo (calm)"},
	{ID: "fable", Label: "Fable (storyteller)"},
	{ID: "onyx", Label: "Onyx (deep)"},
	{ID: "shimmer", Label: "Shimmer (light)"},
}

// Options tune a single synthesis. Zero values use provider defaults.
type Options struct {
	Voice string
	Speed float64
}

// Speaker synthesizes speech.
type Speaker interface {
	ListVoices(ctx context.Context) ([]Voice, error)
	Speak(ctx context.Context, text string, opts Options) (*Playback, error)
}

// Playback is a synthesized audio stream. Callers must Close or Cancel it.
type Playback struct {
	Audio       io.ReadCloser
	ContentType string
	Cached      bool

	cancel   context.CancelFunc
	once     sync.Once
	closeErr error
}

// NewPlayback wraps audio. cancel, if set, aborts the producer of audio.
func NewPlayback(audio io.ReadCloser, contentType string, cancel context.CancelFunc) *Playback {
	if contentType == "" {
		contentType = DefaultContentType
	}
	return &Playback{Audio: audio, ContentType: contentType, cancel: cancel}
}

// Cancel aborts an in-flight stream and releases it. Safe to call repeatedly.
func (p *Playback) Cancel() {
	p.once.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		if p.Audio != nil {
			p.closeErr = p.Audio.Close()
		}
	})
}

func (p *Playback) Close() error {
	p.Cancel()
	return p.closeErr
}

func voiceOrDefault(v string) string {
	if v == "" {
		return DefaultVoice
	}
	return v
}
