package api

import (
	"net/http"

	"alcyxob/deskbreak/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes. This is a single-user local service,
// so there is no auth middleware; everything hangs off /api/v1.
func SetupRoutes(
	router *gin.Engine,
	exerciseService service.ExerciseService,
	breakService service.BreakService,
	progressService service.ProgressService,
	profileService service.ProfileService,
	workdayService service.WorkdayService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	breakHandler := NewBreakHandler(breakService)
	progressHandler := NewProgressHandler(progressService)
	profileHandler := NewProfileHandler(profileService)
	workdayHandler := NewWorkdayHandler(workdayService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/categories", exerciseHandler.ListCategories)
			exerciseGroup.GET("/random", exerciseHandler.RandomExercises)
			exerciseGroup.GET("/recommendations", breakHandler.Recommendations)
			exerciseGroup.GET("/favorites", exerciseHandler.ListFavorites)
			exerciseGroup.POST("/favorites/:id", exerciseHandler.AddFavorite)
			exerciseGroup.DELETE("/favorites/:id", exerciseHandler.RemoveFavorite)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.GET("/:id/image", exerciseHandler.GetExerciseImageURL)
		}

		breakGroup := apiV1.Group("/breaks")
		{
			breakGroup.POST("", breakHandler.StartBreak)
			breakGroup.GET("", breakHandler.History)
			breakGroup.GET("/next", breakHandler.NextBreak)
			breakGroup.GET("/:id", breakHandler.GetSession)
			breakGroup.POST("/:id/complete", breakHandler.CompleteExercise)
			breakGroup.POST("/:id/end", breakHandler.EndBreak)
			breakGroup.POST("/:id/skip", breakHandler.SkipBreak)
			breakGroup.POST("/:id/feedback", breakHandler.SubmitFeedback)
		}

		progressGroup := apiV1.Group("/progress")
		{
			progressGroup.GET("", progressHandler.GetProgress)
			progressGroup.GET("/insights", progressHandler.GetInsights)
		}

		apiV1.GET("/profile", profileHandler.GetProfile)
		apiV1.PUT("/profile", profileHandler.UpdateProfile)
		apiV1.GET("/settings", profileHandler.GetSettings)
		apiV1.PUT("/settings", profileHandler.UpdateSettings)

		workdayGroup := apiV1.Group("/workday")
		{
			workdayGroup.POST("/connect", workdayHandler.Connect)
			workdayGroup.POST("/disconnect", workdayHandler.Disconnect)
			workdayGroup.GET("/schedule", workdayHandler.GetSchedule)
			workdayGroup.GET("/meetings", workdayHandler.GetMeetings)
			workdayGroup.GET("/timeoff", workdayHandler.GetTimeOff)
			workdayGroup.POST("/preferences/sync", workdayHandler.SyncPreferences)
		}
	}
}
