package lessons

import (
	"time"

	"github.com/google/uuid"
)

type BreakReminder struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonPlanID uuid.UUID   `gorm:"type:uuid;not null;index" json:"lesson_plan_id"`
	LessonPlan   *LessonPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonPlanID;references:ID" json:"lesson_plan,omitempty"`

	IntervalMinutes int    `gorm:"column:interval_minutes;not null" json:"interval_minutes"`
	ReminderText    string `gorm:"column:reminder_text;not null" json:"reminder_text"`
	IsActive        bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (BreakReminder) TableName() string { return "break_reminders" }
