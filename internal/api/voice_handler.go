package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/llm"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/speech"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// VoiceHandler serves text-to-speech.
type VoiceHandler struct {
	coachService service.CoachService
}

func NewVoiceHandler(coachService service.CoachService) *VoiceHandler {
	return &VoiceHandler{coachService: coachService}
}

type VoiceRequest struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice"` // defaults to alloy
	Speed float64 `json:"speed"`
}

// Speak godoc
// @Summary Synthesize speech
// @Tags Voice
// @Accept json
// @Produce audio/mpeg
// @Param body body VoiceRequest true "Text to speak"
// @Success 200 {file} binary
// @Failure 400 {object} gin.H "Missing text"
// @Failure 500 {object} gin.H "Missing credential or synthesis failure"
// @Router /voice [post]
func (h *VoiceHandler) Speak(c *gin.Context) {
	var req VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Voice == "" {
		req.Voice = speech.DefaultVoice
	}

	playback, err := h.coachService.Narrate(c.Request.Context(), req.Text, speech.Options{Voice: req.Voice, Speed: req.Speed})
	switch {
	case errors.Is(err, service.ErrMissingCredential):
		abortWithError(c, http.StatusInternalServerError, "Server is missing OPENAI_API_KEY env var")
		return
	case errors.Is(err, speech.ErrEmptyText):
		abortWithError(c, http.StatusBadRequest, "Missing text")
		return
	case err != nil:
		abortWithError(c, http.StatusInternalServerError, llm.ErrorMessage(err, "TTS failed"))
		return
	}
	// The upstream stream is bound to the request context, so a client
	// disconnect aborts it too.
	defer playback.Cancel()

	c.DataFromReader(http.StatusOK, -1, playback.ContentType, playback.Audio, nil)
	if playback.Cached {
		log.Tracef("voice: served cached audio [%s]", c.GetString(ContextRequestIDKey))
	}
}

// ListVoices godoc
// @Summary List available voices
// @Tags Voice
// @Produce json
// @Success 200 {array} speech.Voice
// @Router /voice/voices [get]
func (h *VoiceHandler) ListVoices(c *gin.Context) {
	voices, err := h.coachService.Voices(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list voices")
		return
	}
	c.JSON(http.StatusOK, voices)
}
