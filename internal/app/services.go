package app

import (
	"gorm.io/gorm"

	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type Services struct {
	Auth        services.AuthService
	Adaptation  services.AdaptationService
	Visualizer  services.VisualizerService
	FileExtract services.FileExtractService
	LessonPlan  services.LessonPlanService
	Note        services.NoteService
	Progress    services.ProgressService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(
			db, log, repos.Profile, repos.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		Adaptation: services.NewAdaptationService(
			db, log, clients.OpenAI,
			repos.LessonPlan, repos.CoachingTip, repos.BreakReminder,
		),
		Visualizer: services.NewVisualizerService(
			db, log, clients.OpenAI, clients.Bucket, repos.Visualizer,
		),
		FileExtract: services.NewFileExtractService(log),
		LessonPlan: services.NewLessonPlanService(
			db, log, repos.LessonPlan, repos.CoachingTip, repos.BreakReminder, repos.Visualizer,
		),
		Note: services.NewNoteService(db, log, repos.TeacherNote),
		Progress: services.NewProgressService(
			db, log, repos.Profile, repos.LessonPlan, repos.CoachingTip, repos.BreakReminder, repos.Visualizer,
		),
	}
}
