package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/speech"
)

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestVoice_Speak(t *testing.T) {
	env := newTestEnv(t, false)

	body := &trackingBody{Reader: bytes.NewReader([]byte("ID3-audio"))}
	env.speaker.EXPECT().
		Speak(gomock.Any(), "Good morning", speech.Options{Voice: "alloy"}).
		Return(speech.NewPlayback(body, "audio/mpeg", nil), nil)

	rec := env.do(t, http.MethodPost, "/api/voice", map[string]any{"text": "Good morning"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ID3-audio", rec.Body.String())
	assert.True(t, body.closed)
}

func TestVoice_ChosenVoice(t *testing.T) {
	env := newTestEnv(t, false)
	env.speaker.EXPECT().
		Speak(gomock.Any(), "hi", speech.Options{Voice: "onyx"}).
		Return(speech.NewPlayback(io.NopCloser(bytes.NewReader([]byte("x"))), "", nil), nil)

	rec := env.do(t, http.MethodPost, "/api/voice", map[string]any{"text": "hi", "voice": "onyx"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, speech.DefaultContentType, rec.Header().Get("Content-Type"))
}

func TestVoice_Errors(t *testing.T) {
	env := newTestEnv(t, false)

	env.speaker.EXPECT().Speak(gomock.Any(), "", gomock.Any()).Return(nil, speech.ErrEmptyText)
	rec := env.do(t, http.MethodPost, "/api/voice", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing text", errorMessage(t, rec))

	env.speaker.EXPECT().Speak(gomock.Any(), "hi", gomock.Any()).Return(nil, service.ErrMissingCredential)
	rec = env.do(t, http.MethodPost, "/api/voice", map[string]any{"text": "hi"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server is missing OPENAI_API_KEY env var", errorMessage(t, rec))

	env.speaker.EXPECT().Speak(gomock.Any(), "hi", gomock.Any()).Return(nil, errors.New("voice unsupported"))
	rec = env.do(t, http.MethodPost, "/api/voice", map[string]any{"text": "hi"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "voice unsupported", errorMessage(t, rec))

	rec = env.do(t, http.MethodPost, "/api/voice", "{oops")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoice_ListVoices(t *testing.T) {
	env := newTestEnv(t, false)
	env.speaker.EXPECT().ListVoices(gomock.Any()).Return(speech.Voices, nil)

	rec := env.do(t, http.MethodGet, "/api/voice/voices", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	voices := decode[[]speech.Voice](t, rec)
	assert.Equal(t, speech.Voices, voices)
}
