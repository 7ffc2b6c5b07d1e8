package lessons

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type BreakReminderRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, reminder *types.BreakReminder) (*types.BreakReminder, error)
	ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.BreakReminder, error)
	CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error)
}

type breakReminderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBreakReminderRepo(db *gorm.DB, baseLog *logger.Logger) BreakReminderRepo {
	return &breakReminderRepo{db: db, log: baseLog.With("repo", "BreakReminderRepo")}
}

func (br *breakReminderRepo) Insert(ctx context.Context, tx *gorm.DB, reminder *types.BreakReminder) (*types.BreakReminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if err := transaction.WithContext(ctx).Create(reminder).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func (br *breakReminderRepo) ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.BreakReminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.BreakReminder
	if err := transaction.WithContext(ctx).
		Where("lesson_plan_id = ?", lessonPlanID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *breakReminderRepo) CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	if len(lessonPlanIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.BreakReminder{}).
		Where("lesson_plan_id IN ?", lessonPlanIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
