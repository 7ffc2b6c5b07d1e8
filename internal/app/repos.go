package app

import (
	"gorm.io/gorm"

	lessonrepos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	userrepos "github.com/focusbridge/focusbridge-backend/internal/data/repos/user"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type Repos struct {
	Profile       userrepos.ProfileRepo
	UserToken     userrepos.UserTokenRepo
	LessonPlan    lessonrepos.LessonPlanRepo
	CoachingTip   lessonrepos.CoachingTipRepo
	BreakReminder lessonrepos.BreakReminderRepo
	Visualizer    lessonrepos.VisualizerRepo
	TeacherNote   lessonrepos.TeacherNoteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile:       userrepos.NewProfileRepo(db, log),
		UserToken:     userrepos.NewUserTokenRepo(db, log),
		LessonPlan:    lessonrepos.NewLessonPlanRepo(db, log),
		CoachingTip:   lessonrepos.NewCoachingTipRepo(db, log),
		BreakReminder: lessonrepos.NewBreakReminderRepo(db, log),
		Visualizer:    lessonrepos.NewVisualizerRepo(db, log),
		TeacherNote:   lessonrepos.NewTeacherNoteRepo(db, log),
	}
}
