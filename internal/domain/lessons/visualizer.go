package lessons

import (
	"time"

	"github.com/google/uuid"
)

type Visualizer struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonPlanID uuid.UUID   `gorm:"type:uuid;not null;index" json:"lesson_plan_id"`
	LessonPlan   *LessonPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonPlanID;references:ID" json:"lesson_plan,omitempty"`

	Concept     string `gorm:"column:concept;not null" json:"concept"`
	ImageURL    string `gorm:"column:image_url;not null" json:"image_url"`
	GradeLevel  string `gorm:"column:grade_level" json:"grade_level"`
	Description string `gorm:"column:description;type:text" json:"description"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Visualizer) TableName() string { return "visualizers" }
