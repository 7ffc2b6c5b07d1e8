package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/focusbridge/focusbridge-backend/internal/http/handlers"
	httpMW "github.com/focusbridge/focusbridge-backend/internal/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	AdaptHandler      *httpH.AdaptHandler
	VisualizerHandler *httpH.VisualizerHandler
	FileHandler       *httpH.FileHandler
	LessonPlanHandler *httpH.LessonPlanHandler
	NoteHandler       *httpH.NoteHandler
	ProgressHandler   *httpH.ProgressHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.GET("/me", cfg.AuthHandler.GetMe)
		}

		// Adaptation
		if cfg.AdaptHandler != nil {
			protected.POST("/adapt-lesson", cfg.AdaptHandler.AdaptLesson)
		}

		// Visualizers
		if cfg.VisualizerHandler != nil {
			protected.POST("/generate-visualizer", cfg.VisualizerHandler.GenerateVisualizer)
			protected.POST("/lesson-plans/:id/generate-visual-aids", cfg.VisualizerHandler.GenerateVisualAids)
		}

		// File extraction
		if cfg.FileHandler != nil {
			protected.POST("/process-file", cfg.FileHandler.ProcessFile)
		}

		// Lesson plans
		if cfg.LessonPlanHandler != nil {
			protected.POST("/lesson-plans", cfg.LessonPlanHandler.CreateLessonPlan)
			protected.GET("/lesson-plans", cfg.LessonPlanHandler.ListLessonPlans)
			protected.GET("/lesson-plans/:id", cfg.LessonPlanHandler.GetLessonPlan)
			protected.DELETE("/lesson-plans/:id", cfg.LessonPlanHandler.DeleteLessonPlan)
			protected.GET("/lesson-plans/:id/coaching-tips", cfg.LessonPlanHandler.ListCoachingTips)
			protected.GET("/lesson-plans/:id/break-reminders", cfg.LessonPlanHandler.ListBreakReminders)
			protected.GET("/lesson-plans/:id/visualizers", cfg.LessonPlanHandler.ListVisualizers)
		}

		// Teacher notes
		if cfg.NoteHandler != nil {
			protected.POST("/notes", cfg.NoteHandler.CreateNote)
			protected.GET("/notes", cfg.NoteHandler.ListNotes)
			protected.DELETE("/notes/:id", cfg.NoteHandler.DeleteNote)
		}

		// Progress
		if cfg.ProgressHandler != nil {
			protected.GET("/progress/summary", cfg.ProgressHandler.GetSummary)
		}
	}

	return r
}
