package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/domain/user"
	lessonrepos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	userrepos "github.com/focusbridge/focusbridge-backend/internal/data/repos/user"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

// ProgressSummary is the classroom roll-up shown on the teacher dashboard and
// on the parent's read-only view.
type ProgressSummary struct {
	LessonPlans    int64               `json:"lesson_plans"`
	CoachingTips   int64               `json:"coaching_tips"`
	BreakReminders int64               `json:"break_reminders"`
	VisualAids     int64               `json:"visual_aids"`
	RecentPlans    []*types.LessonPlan `json:"recent_plans"`
}

type ProgressService interface {
	// GetSummary resolves the acting user to a teacher (parents resolve
	// through their linked teacher) and aggregates that classroom.
	GetSummary(ctx context.Context, requester *types.Profile) (*ProgressSummary, error)
}

type progressService struct {
	db            *gorm.DB
	log           *logger.Logger
	profiles      userrepos.ProfileRepo
	lessonPlans   lessonrepos.LessonPlanRepo
	coachingTips  lessonrepos.CoachingTipRepo
	breakReminder lessonrepos.BreakReminderRepo
	visualizers   lessonrepos.VisualizerRepo
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	profiles userrepos.ProfileRepo,
	lessonPlans lessonrepos.LessonPlanRepo,
	coachingTips lessonrepos.CoachingTipRepo,
	breakReminder lessonrepos.BreakReminderRepo,
	visualizers lessonrepos.VisualizerRepo,
) ProgressService {
	return &progressService{
		db:            db,
		log:           log.With("service", "ProgressService"),
		profiles:      profiles,
		lessonPlans:   lessonPlans,
		coachingTips:  coachingTips,
		breakReminder: breakReminder,
		visualizers:   visualizers,
	}
}

func (ps *progressService) GetSummary(ctx context.Context, requester *types.Profile) (*ProgressSummary, error) {
	if requester == nil {
		return nil, fmt.Errorf("missing requester profile")
	}

	teacherID := requester.ID
	if requester.Role == user.RoleParent {
		if requester.LinkedTeacherID == nil {
			return nil, newValidationError("parent account has no linked teacher")
		}
		teacherID = *requester.LinkedTeacherID
	}

	summary := &ProgressSummary{}

	var err error
	summary.LessonPlans, err = ps.lessonPlans.CountByTeacher(ctx, nil, teacherID)
	if err != nil {
		return nil, fmt.Errorf("count lesson plans: %w", err)
	}

	planIDs, err := ps.lessonPlans.ListIDsByTeacher(ctx, nil, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list lesson plan ids: %w", err)
	}

	summary.CoachingTips, err = ps.coachingTips.CountByLessonPlans(ctx, nil, planIDs)
	if err != nil {
		return nil, fmt.Errorf("count coaching tips: %w", err)
	}
	summary.BreakReminders, err = ps.breakReminder.CountByLessonPlans(ctx, nil, planIDs)
	if err != nil {
		return nil, fmt.Errorf("count break reminders: %w", err)
	}
	summary.VisualAids, err = ps.visualizers.CountByLessonPlans(ctx, nil, planIDs)
	if err != nil {
		return nil, fmt.Errorf("count visualizers: %w", err)
	}

	plans, err := ps.lessonPlans.ListByTeacher(ctx, nil, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list lesson plans: %w", err)
	}
	if len(plans) > 5 {
		plans = plans[:5]
	}
	summary.RecentPlans = plans

	return summary, nil
}
