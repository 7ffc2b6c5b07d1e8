package lessons

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/focusbridge/focusbridge-backend/internal/domain/user"
)

type LessonPlan struct {
	ID        uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TeacherID uuid.UUID     `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Teacher   *user.Profile `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`

	Title           string `gorm:"column:title;not null" json:"title"`
	Subject         string `gorm:"column:subject;not null" json:"subject"`
	GradeLevel      string `gorm:"column:grade_level;not null" json:"grade_level"`
	OriginalContent string `gorm:"column:original_content;type:text;not null" json:"original_content"`

	// Filled in by the adaptation run; empty until then.
	ADHDAdaptedContent string `gorm:"column:adhd_adapted_content;type:text" json:"adhd_adapted_content,omitempty"`

	FileURL  string         `gorm:"column:file_url" json:"file_url,omitempty"`
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LessonPlan) TableName() string { return "lesson_plans" }
