package lessons

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusbridge/focusbridge-backend/internal/domain/user"
)

const (
	NoteTypeBehavioral = "behavioral"
	NoteTypeAcademic   = "academic"
	NoteTypeGeneral    = "general"
)

func ValidNoteType(t string) bool {
	switch t {
	case NoteTypeBehavioral, NoteTypeAcademic, NoteTypeGeneral:
		return true
	}
	return false
}

type TeacherNote struct {
	ID        uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TeacherID uuid.UUID     `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher   *user.Profile `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`

	// Optional association; classroom-level notes have no lesson plan.
	LessonPlanID *uuid.UUID  `gorm:"type:uuid;index" json:"lesson_plan_id,omitempty"`
	LessonPlan   *LessonPlan `gorm:"constraint:OnDelete:SET NULL;foreignKey:LessonPlanID;references:ID" json:"lesson_plan,omitempty"`

	NoteContent string `gorm:"column:note_content;type:text;not null" json:"note_content"`
	NoteType    string `gorm:"column:note_type;not null;default:'general'" json:"note_type"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TeacherNote) TableName() string { return "teacher_notes" }
