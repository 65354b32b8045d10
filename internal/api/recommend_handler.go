package api

import (
	"errors"
	"io"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const recommendUsage = "POST workout history to this endpoint to get a recommendation."

// RecommendHandler serves the /api/recommend route.
type RecommendHandler struct {
	workoutService        service.WorkoutService
	recommendationService service.RecommendationService
}

func NewRecommendHandler(workoutService service.WorkoutService, recommendationService service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		workoutService:        workoutService,
		recommendationService: recommendationService,
	}
}

// RecommendRequest carries the history to reason over. A missing history
// means the server's own log.
type RecommendRequest struct {
	History *[]domain.WorkoutEntry `json:"history"`
}

// Usage godoc
// @Summary Describe the recommend endpoint
// @Tags Recommend
// @Produce json
// @Router /recommend [get]
func (h *RecommendHandler) Usage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "usage": recommendUsage})
}

// Recommend godoc
// @Summary Recommend today's muscle group and plan
// @Tags Recommend
// @Accept json
// @Produce json
// @Param strategy query string false "remote (default) or heuristic"
// @Param body body RecommendRequest false "Workout history"
// @Success 200 {object} service.RecommendResult
// @Failure 400 {object} gin.H "Malformed body or unknown strategy"
// @Failure 500 {object} gin.H "Missing credential or remote failure"
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if c.Request.Body != nil {
		// An empty body decodes to io.EOF and means "use the store".
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			abortWithError(c, http.StatusBadRequest, "Malformed JSON body: "+err.Error())
			return
		}
	}

	var history []domain.WorkoutEntry
	if req.History != nil {
		history = *req.History
	} else {
		history = h.workoutService.All(c.Request.Context())
	}

	result, err := h.recommendationService.Recommend(c.Request.Context(), c.Query("strategy"), history)
	if err != nil {
		var recErr *service.RecommendationError
		switch {
		case errors.Is(err, service.ErrUnknownStrategy):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMissingCredential):
			abortWithError(c, http.StatusInternalServerError, "Server is missing OPENAI_API_KEY env var")
		case errors.As(err, &recErr):
			abortWithError(c, http.StatusInternalServerError, recErr.Message)
		default:
			abortWithError(c, http.StatusInternalServerError, "Recommendation failed")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
