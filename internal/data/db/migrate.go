package db

import (
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.Profile{},
		&types.UserToken{},

		// Lesson plans and everything the adaptation run writes
		&types.LessonPlan{},
		&types.CoachingTip{},
		&types.BreakReminder{},
		&types.Visualizer{},

		// Teacher journal
		&types.TeacherNote{},
	)
}
