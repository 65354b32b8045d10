package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles what the handlers depend on.
type Services struct {
	Workouts        service.WorkoutService
	Recommendations service.RecommendationService
	Coach           service.CoachService
}

func SetupRoutes(
	router *gin.Engine,
	services Services,
	metricsManager *metrics.Manager, // optional
	metricsHandler http.Handler, // optional, served on /metrics
) {
	router.Use(RequestIDMiddleware(), LoggingMiddleware())
	if metricsManager != nil {
		router.Use(MetricsMiddleware(metricsManager))
	}

	workoutHandler := NewWorkoutHandler(services.Workouts)
	recommendHandler := NewRecommendHandler(services.Workouts, services.Recommendations)
	voiceHandler := NewVoiceHandler(services.Coach)
	coachHandler := NewCoachHandler(services.Workouts, services.Recommendations, services.Coach)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Assistant routes live outside /api/v1.
	assistant := router.Group("/api")
	{
		assistant.GET("/recommend", recommendHandler.Usage)
		assistant.POST("/recommend", recommendHandler.Recommend)

		assistant.POST("/voice", voiceHandler.Speak)
		assistant.GET("/voice/voices", voiceHandler.ListVoices)
	}

	apiV1 := router.Group("/api/v1")
	{
		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.AddWorkout)
			workoutGroup.POST("/from-plan", workoutHandler.AddFromPlan)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/done", workoutHandler.MarkDone)
		}

		apiV1.GET("/readiness", coachHandler.Readiness)
		apiV1.GET("/plans", coachHandler.ListPlanGroups)
		apiV1.GET("/plans/:group", coachHandler.GetPlan)
		apiV1.GET("/morning-script", coachHandler.MorningScript)
		apiV1.GET("/stats", coachHandler.Stats)
	}
}
