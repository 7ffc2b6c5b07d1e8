package lessons

import (
	"time"

	"github.com/google/uuid"
)

// Tip types produced by the coaching-tip parser. The set is closed; anything
// the classifier cannot place lands on engagement.
const (
	TipTypeEngagement = "engagement"
	TipTypeBreak      = "break"
	TipTypeVisual     = "visual"
	TipTypeMovement   = "movement"
	TipTypeAttention  = "attention"
)

type CoachingTip struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonPlanID uuid.UUID   `gorm:"type:uuid;not null;index" json:"lesson_plan_id"`
	LessonPlan   *LessonPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonPlanID;references:ID" json:"lesson_plan,omitempty"`

	TipText string `gorm:"column:tip_text;type:text;not null" json:"tip_text"`
	TipType string `gorm:"column:tip_type;not null;default:'engagement'" json:"tip_type"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (CoachingTip) TableName() string { return "coaching_tips" }
