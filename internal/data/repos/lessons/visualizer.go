package lessons

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type VisualizerRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, visualizer *types.Visualizer) (*types.Visualizer, error)
	ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.Visualizer, error)
	CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error)
}

type visualizerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVisualizerRepo(db *gorm.DB, baseLog *logger.Logger) VisualizerRepo {
	return &visualizerRepo{db: db, log: baseLog.With("repo", "VisualizerRepo")}
}

func (vr *visualizerRepo) Insert(ctx context.Context, tx *gorm.DB, visualizer *types.Visualizer) (*types.Visualizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(visualizer).Error; err != nil {
		return nil, err
	}
	return visualizer, nil
}

func (vr *visualizerRepo) ListByLessonPlan(ctx context.Context, tx *gorm.DB, lessonPlanID uuid.UUID) ([]*types.Visualizer, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*types.Visualizer
	if err := transaction.WithContext(ctx).
		Where("lesson_plan_id = ?", lessonPlanID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *visualizerRepo) CountByLessonPlans(ctx context.Context, tx *gorm.DB, lessonPlanIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if len(lessonPlanIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Visualizer{}).
		Where("lesson_plan_id IN ?", lessonPlanIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
