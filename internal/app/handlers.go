package app

import (
	httpH "github.com/focusbridge/focusbridge-backend/internal/http/handlers"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	Adapt      *httpH.AdaptHandler
	Visualizer *httpH.VisualizerHandler
	File       *httpH.FileHandler
	LessonPlan *httpH.LessonPlanHandler
	Note       *httpH.NoteHandler
	Progress   *httpH.ProgressHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Auth:       httpH.NewAuthHandler(services.Auth),
		Adapt:      httpH.NewAdaptHandler(services.Adaptation, services.LessonPlan),
		Visualizer: httpH.NewVisualizerHandler(services.Visualizer, services.LessonPlan),
		File:       httpH.NewFileHandler(services.FileExtract),
		LessonPlan: httpH.NewLessonPlanHandler(services.LessonPlan),
		Note:       httpH.NewNoteHandler(services.Note),
		Progress:   httpH.NewProgressHandler(services.Auth, services.Progress),
	}
}
