package lessons

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type LessonPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plan *types.LessonPlan) (*types.LessonPlan, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LessonPlan, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]*types.LessonPlan, error)
	ListIDsByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]uuid.UUID, error)
	UpdateAdaptedContent(ctx context.Context, tx *gorm.DB, id uuid.UUID, adaptedContent string) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	CountByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error)
}

type lessonPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonPlanRepo(db *gorm.DB, baseLog *logger.Logger) LessonPlanRepo {
	return &lessonPlanRepo{db: db, log: baseLog.With("repo", "LessonPlanRepo")}
}

func (lr *lessonPlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.LessonPlan) (*types.LessonPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	if err := transaction.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (lr *lessonPlanRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LessonPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var result types.LessonPlan
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (lr *lessonPlanRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]*types.LessonPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var results []*types.LessonPlan
	if err := transaction.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *lessonPlanRepo) ListIDsByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.LessonPlan{}).
		Where("teacher_id = ?", teacherID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (lr *lessonPlanRepo) UpdateAdaptedContent(ctx context.Context, tx *gorm.DB, id uuid.UUID, adaptedContent string) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.LessonPlan{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"adhd_adapted_content": adaptedContent,
			"updated_at":           time.Now(),
		}).Error
}

func (lr *lessonPlanRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.LessonPlan{}).Error
}

func (lr *lessonPlanRepo) CountByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.LessonPlan{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
