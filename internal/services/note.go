package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/domain/lessons"
	repos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type CreateNoteInput struct {
	LessonPlanID *uuid.UUID `json:"lessonPlanId"`
	NoteContent  string     `json:"noteContent"`
	NoteType     string     `json:"noteType"`
}

type NoteService interface {
	CreateNote(ctx context.Context, teacherID uuid.UUID, input CreateNoteInput) (*types.TeacherNote, error)
	ListNotes(ctx context.Context, teacherID uuid.UUID, filter repos.NoteFilter) ([]*types.TeacherNote, error)
	DeleteNote(ctx context.Context, teacherID, noteID uuid.UUID) error
}

type noteService struct {
	db    *gorm.DB
	log   *logger.Logger
	notes repos.TeacherNoteRepo
}

func NewNoteService(db *gorm.DB, log *logger.Logger, notes repos.TeacherNoteRepo) NoteService {
	return &noteService{
		db:    db,
		log:   log.With("service", "NoteService"),
		notes: notes,
	}
}

func (ns *noteService) CreateNote(ctx context.Context, teacherID uuid.UUID, input CreateNoteInput) (*types.TeacherNote, error) {
	if input.NoteContent == "" {
		return nil, newValidationError("missing required field: noteContent")
	}
	noteType := input.NoteType
	if noteType == "" {
		noteType = lessons.NoteTypeGeneral
	}
	if !lessons.ValidNoteType(noteType) {
		return nil, newValidationError("invalid note type: %s", noteType)
	}

	note, err := ns.notes.Create(ctx, nil, &types.TeacherNote{
		TeacherID:    teacherID,
		LessonPlanID: input.LessonPlanID,
		NoteContent:  input.NoteContent,
		NoteType:     noteType,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "teacher note insert", Err: err}
	}
	return note, nil
}

func (ns *noteService) ListNotes(ctx context.Context, teacherID uuid.UUID, filter repos.NoteFilter) ([]*types.TeacherNote, error) {
	if filter.NoteType != "" && !lessons.ValidNoteType(filter.NoteType) {
		return nil, newValidationError("invalid note type: %s", filter.NoteType)
	}
	return ns.notes.ListByTeacher(ctx, nil, teacherID, filter)
}

func (ns *noteService) DeleteNote(ctx context.Context, teacherID, noteID uuid.UUID) error {
	return ns.notes.Delete(ctx, nil, teacherID, noteID)
}
