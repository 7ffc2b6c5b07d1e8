package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	repos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type CreateLessonPlanInput struct {
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"gradeLevel"`
	Content    string `json:"content"`
	FileURL    string `json:"fileUrl"`
}

type LessonPlanService interface {
	CreateLessonPlan(ctx context.Context, teacherID uuid.UUID, input CreateLessonPlanInput) (*types.LessonPlan, error)
	ListLessonPlans(ctx context.Context, teacherID uuid.UUID) ([]*types.LessonPlan, error)
	GetLessonPlan(ctx context.Context, teacherID, id uuid.UUID) (*types.LessonPlan, error)
	DeleteLessonPlan(ctx context.Context, teacherID, id uuid.UUID) error
	ListCoachingTips(ctx context.Context, teacherID, id uuid.UUID) ([]*types.CoachingTip, error)
	ListBreakReminders(ctx context.Context, teacherID, id uuid.UUID) ([]*types.BreakReminder, error)
	ListVisualizers(ctx context.Context, teacherID, id uuid.UUID) ([]*types.Visualizer, error)
}

type lessonPlanService struct {
	db            *gorm.DB
	log           *logger.Logger
	lessonPlans   repos.LessonPlanRepo
	coachingTips  repos.CoachingTipRepo
	breakReminder repos.BreakReminderRepo
	visualizers   repos.VisualizerRepo
}

func NewLessonPlanService(
	db *gorm.DB,
	log *logger.Logger,
	lessonPlans repos.LessonPlanRepo,
	coachingTips repos.CoachingTipRepo,
	breakReminder repos.BreakReminderRepo,
	visualizers repos.VisualizerRepo,
) LessonPlanService {
	return &lessonPlanService{
		db:            db,
		log:           log.With("service", "LessonPlanService"),
		lessonPlans:   lessonPlans,
		coachingTips:  coachingTips,
		breakReminder: breakReminder,
		visualizers:   visualizers,
	}
}

func (ls *lessonPlanService) CreateLessonPlan(ctx context.Context, teacherID uuid.UUID, input CreateLessonPlanInput) (*types.LessonPlan, error) {
	if input.Title == "" {
		return nil, newValidationError("missing required field: title")
	}
	if input.Subject == "" {
		return nil, newValidationError("missing required field: subject")
	}
	if input.GradeLevel == "" {
		return nil, newValidationError("missing required field: gradeLevel")
	}
	if input.Content == "" {
		return nil, newValidationError("missing required field: content")
	}

	plan, err := ls.lessonPlans.Create(ctx, nil, &types.LessonPlan{
		TeacherID:       teacherID,
		Title:           input.Title,
		Subject:         input.Subject,
		GradeLevel:      input.GradeLevel,
		OriginalContent: input.Content,
		FileURL:         input.FileURL,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "lesson plan insert", Err: err}
	}
	return plan, nil
}

func (ls *lessonPlanService) ListLessonPlans(ctx context.Context, teacherID uuid.UUID) ([]*types.LessonPlan, error) {
	return ls.lessonPlans.ListByTeacher(ctx, nil, teacherID)
}

// GetLessonPlan loads one plan and enforces ownership. A plan owned by
// someone else reads the same as a missing one.
func (ls *lessonPlanService) GetLessonPlan(ctx context.Context, teacherID, id uuid.UUID) (*types.LessonPlan, error) {
	plan, err := ls.lessonPlans.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "lesson plan"}
		}
		return nil, fmt.Errorf("load lesson plan: %w", err)
	}
	if plan.TeacherID != teacherID {
		return nil, &NotFoundError{Resource: "lesson plan"}
	}
	return plan, nil
}

func (ls *lessonPlanService) DeleteLessonPlan(ctx context.Context, teacherID, id uuid.UUID) error {
	if _, err := ls.GetLessonPlan(ctx, teacherID, id); err != nil {
		return err
	}
	return ls.lessonPlans.Delete(ctx, nil, id)
}

func (ls *lessonPlanService) ListCoachingTips(ctx context.Context, teacherID, id uuid.UUID) ([]*types.CoachingTip, error) {
	if _, err := ls.GetLessonPlan(ctx, teacherID, id); err != nil {
		return nil, err
	}
	return ls.coachingTips.ListByLessonPlan(ctx, nil, id)
}

func (ls *lessonPlanService) ListBreakReminders(ctx context.Context, teacherID, id uuid.UUID) ([]*types.BreakReminder, error) {
	if _, err := ls.GetLessonPlan(ctx, teacherID, id); err != nil {
		return nil, err
	}
	return ls.breakReminder.ListByLessonPlan(ctx, nil, id)
}

func (ls *lessonPlanService) ListVisualizers(ctx context.Context, teacherID, id uuid.UUID) ([]*types.Visualizer, error) {
	if _, err := ls.GetLessonPlan(ctx, teacherID, id); err != nil {
		return nil, err
	}
	return ls.visualizers.ListByLessonPlan(ctx, nil, id)
}
