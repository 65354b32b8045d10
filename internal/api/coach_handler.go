package api

import (
	"net/http"
	"strings"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/planner"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// CoachHandler serves readiness, plans, the morning script and stats.
type CoachHandler struct {
	workoutService        service.WorkoutService
	recommendationService service.RecommendationService
	coachService          service.CoachService
	planBuilder           *planner.Builder
}

func NewCoachHandler(
	workoutService service.WorkoutService,
	recommendationService service.RecommendationService,
	coachService service.CoachService,
) *CoachHandler {
	return &CoachHandler{
		workoutService:        workoutService,
		recommendationService: recommendationService,
		coachService:          coachService,
		planBuilder:           planner.NewBuilder(nil),
	}
}

// Readiness godoc
// @Summary Per-group readiness features
// @Tags Coach
// @Produce json
// @Param groups query string false "Comma separated muscle groups"
// @Param date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {object} service.ReadinessReport
// @Failure 400 {object} gin.H "Invalid date"
// @Router /readiness [get]
func (h *CoachHandler) Readiness(c *gin.Context) {
	var ref time.Time
	if d := c.Query("date"); d != "" {
		parsed, ok := domain.ParseDate(d)
		if !ok {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	var groups []string
	for _, g := range strings.Split(c.Query("groups"), ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}

	history := h.workoutService.All(c.Request.Context())
	c.JSON(http.StatusOK, h.recommendationService.Readiness(c.Request.Context(), history, groups, ref))
}

// ListPlanGroups godoc
// @Summary Muscle groups with a plan template
// @Tags Coach
// @Produce json
// @Success 200 {array} string
// @Router /plans [get]
func (h *CoachHandler) ListPlanGroups(c *gin.Context) {
	c.JSON(http.StatusOK, planner.Groups())
}

// GetPlan godoc
// @Summary Today's plan for a muscle group
// @Tags Coach
// @Produce json
// @Param group path string true "Muscle group"
// @Success 200 {object} domain.Plan
// @Router /plans/{group} [get]
func (h *CoachHandler) GetPlan(c *gin.Context) {
	history := h.workoutService.All(c.Request.Context())
	c.JSON(http.StatusOK, h.planBuilder.Build(c.Param("group"), history))
}

// MorningScript godoc
// @Summary Morning narration text
// @Tags Coach
// @Produce json
// @Param name query string false "Athlete name"
// @Param group query string false "Today's group, defaults to the heuristic choice"
// @Success 200 {object} service.MorningBriefing
// @Router /morning-script [get]
func (h *CoachHandler) MorningScript(c *gin.Context) {
	briefing, err := h.coachService.MorningBriefing(c.Request.Context(), c.Query("name"), c.Query("group"))
	if err != nil {
		log.WithError(err).Error("morning script")
		abortWithError(c, http.StatusInternalServerError, "Failed to build morning script")
		return
	}
	c.JSON(http.StatusOK, briefing)
}

// Stats godoc
// @Summary Dashboard counters
// @Tags Coach
// @Produce json
// @Success 200 {object} service.WorkoutStats
// @Router /stats [get]
func (h *CoachHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.coachService.Stats(c.Request.Context()))
}
