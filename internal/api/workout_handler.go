package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkoutHandler exposes the workout log.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// WorkoutRequest is the body for creating or replacing a logged set.
type WorkoutRequest struct {
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Exercise    string  `json:"exercise" binding:"required"`
	Set         int     `json:"set" binding:"required,min=1"`
	WeightLbs   float64 `json:"weightLbs" binding:"min=0"`
	Reps        int     `json:"reps" binding:"min=0"`
	MuscleGroup string  `json:"muscleGroup" binding:"required"`
	Notes       string  `json:"notes"`
	Done        *bool   `json:"done"`
	DoneAt      string  `json:"doneAt"`
}

func (r WorkoutRequest) toDomain() domain.WorkoutEntry {
	return domain.WorkoutEntry{
		Date:        strings.TrimSpace(r.Date),
		Exercise:    strings.TrimSpace(r.Exercise),
		Set:         r.Set,
		WeightLbs:   r.WeightLbs,
		Reps:        r.Reps,
		MuscleGroup: strings.TrimSpace(r.MuscleGroup),
		Notes:       r.Notes,
		Done:        r.Done,
		DoneAt:      r.DoneAt,
	}
}

// FromPlanRequest logs every set of a plan at once.
type FromPlanRequest struct {
	Plan     domain.Plan `json:"plan"`
	Date     string      `json:"date"` // defaults to today
	MarkDone bool        `json:"markDone"`
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List logged sets
// @Tags Workouts
// @Produce json
// @Param sort query string false "asc for oldest first"
// @Success 200 {array} domain.WorkoutEntry
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	entries := h.workoutService.All(c.Request.Context())
	domain.SortEntries(entries, strings.EqualFold(c.Query("sort"), "asc"))
	c.JSON(http.StatusOK, entries)
}

// AddWorkout godoc
// @Summary Log a set
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body WorkoutRequest true "Set details"
// @Success 201 {object} domain.WorkoutEntry
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [post]
func (h *WorkoutHandler) AddWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.workoutService.Add(c.Request.Context(), req.toDomain())
	if err != nil {
		h.handleServiceError(c, err, "Failed to add workout")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// AddFromPlan godoc
// @Summary Log every set of a plan
// @Tags Workouts
// @Accept json
// @Produce json
// @Param body body FromPlanRequest true "Plan to log"
// @Success 201 {array} domain.WorkoutEntry
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /workouts/from-plan [post]
func (h *WorkoutHandler) AddFromPlan(c *gin.Context) {
	var req FromPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.workoutService.AddFromPlan(c.Request.Context(), req.Plan, req.Date, req.MarkDone)
	if err != nil {
		h.handleServiceError(c, err, "Failed to add plan")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorkout godoc
// @Summary Replace a logged set
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param workout body WorkoutRequest true "Set details"
// @Success 200 {object} domain.WorkoutEntry
// @Failure 400 {object} gin.H "Invalid ID or input"
// @Failure 404 {object} gin.H "Entry not found"
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.workoutService.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		h.handleServiceError(c, err, "Failed to update workout")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteWorkout godoc
// @Summary Delete a logged set
// @Tags Workouts
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {object} gin.H "Entry not found"
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.workoutService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkDone godoc
// @Summary Mark a logged set as completed
// @Tags Workouts
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} domain.WorkoutEntry
// @Failure 404 {object} gin.H "Entry not found"
// @Router /workouts/{id}/done [post]
func (h *WorkoutHandler) MarkDone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.workoutService.MarkDone(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, "Failed to mark workout done")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *WorkoutHandler) handleServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout entry not found")
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.WithError(err).Error(fallback)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return 0, false
	}
	return id, true
}
