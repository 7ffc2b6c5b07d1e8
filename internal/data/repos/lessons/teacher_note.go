package lessons

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

// NoteFilter narrows ListByTeacher; zero values mean "no filter".
type NoteFilter struct {
	LessonPlanID *uuid.UUID
	NoteType     string
}

type TeacherNoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, note *types.TeacherNote) (*types.TeacherNote, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID, filter NoteFilter) ([]*types.TeacherNote, error)
	Delete(ctx context.Context, tx *gorm.DB, teacherID, noteID uuid.UUID) error
}

type teacherNoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeacherNoteRepo(db *gorm.DB, baseLog *logger.Logger) TeacherNoteRepo {
	return &teacherNoteRepo{db: db, log: baseLog.With("repo", "TeacherNoteRepo")}
}

func (tr *teacherNoteRepo) Create(ctx context.Context, tx *gorm.DB, note *types.TeacherNote) (*types.TeacherNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

func (tr *teacherNoteRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID, filter NoteFilter) ([]*types.TeacherNote, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	q := transaction.WithContext(ctx).
		Where("teacher_id = ?", teacherID)
	if filter.LessonPlanID != nil {
		q = q.Where("lesson_plan_id = ?", *filter.LessonPlanID)
	}
	if filter.NoteType != "" {
		q = q.Where("note_type = ?", filter.NoteType)
	}
	var results []*types.TeacherNote
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *teacherNoteRepo) Delete(ctx context.Context, tx *gorm.DB, teacherID, noteID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ? AND teacher_id = ?", noteID, teacherID).
		Delete(&types.TeacherNote{}).Error
}
