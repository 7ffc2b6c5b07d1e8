package lessons

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type CoachingTipRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, tip *types.CoachingTip) (*types.CoachingTip, error)
	ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.CoachingTip, error)
	CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error)
}

type coachingTipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCoachingTipRepo(db *gorm.DB, baseLog *logger.Logger) CoachingTipRepo {
	return &coachingTipRepo{db: db, log: baseLog.With("repo", "CoachingTipRepo")}
}

func (cr *coachingTipRepo) Insert(ctx context.Context, tx *gorm.DB, tip *types.CoachingTip) (*types.CoachingTip, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(tip).Error; err != nil {
		return nil, err
	}
	return tip, nil
}

func (cr *coachingTipRepo) ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.CoachingTip, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.CoachingTip
	if err := transaction.WithContext(ctx).
		Where("lesson_plan_id = ?", lessonPlanID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *coachingTipRepo) CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(lessonPlanIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CoachingTip{}).
		Where("lesson_plan_id IN ?", lessonPlanIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
