package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/focusbridge/focusbridge-backend/internal/http"
)

func wireRouter(handlers Handlers, middleware Middleware) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		AuthHandler:    handlers.Auth,
		AuthMiddleware: middleware.Auth,

		AdaptHandler:      handlers.Adapt,
		VisualizerHandler: handlers.Visualizer,
		FileHandler:       handlers.File,
		LessonPlanHandler: handlers.LessonPlan,
		NoteHandler:       handlers.Note,
		ProgressHandler:   handlers.Progress,

		HealthHandler: handlers.Health,
	})
}
