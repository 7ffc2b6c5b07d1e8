package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusbridge/focusbridge-backend/internal/adaptation"
	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	repos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

// Not grade-specific; every reminder row carries the same text.
const breakReminderText = "Time for a brain break! Try a 2-minute movement activity."

// TextGenerator is the slice of the OpenAI client the adaptation run needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

type AdaptLessonInput struct {
	LessonPlanID uuid.UUID `json:"lessonPlanId"`
	Content      string    `json:"content"`
	Subject      string    `json:"subject"`
	GradeLevel   string    `json:"gradeLevel"`
}

// WriteReport records which of the best-effort writes landed. The sequence
// is not transactional: a tip insert failing does not roll anything back.
type WriteReport struct {
	AdaptationUpdated     bool `json:"adaptation_updated"`
	TipsInserted          int  `json:"tips_inserted"`
	TipsFailed            int  `json:"tips_failed"`
	BreakReminderInserted bool `json:"break_reminder_inserted"`
}

type AdaptLessonResult struct {
	AdaptedContent   string      `json:"adaptedContent"`
	CoachingTipsText string      `json:"coachingTips"`
	Writes           WriteReport `json:"writes"`
}

type AdaptationService interface {
	AdaptLesson(ctx context.Context, input AdaptLessonInput) (*AdaptLessonResult, error)
}

type adaptationService struct {
	db            *gorm.DB
	log           *logger.Logger
	generator     TextGenerator
	lessonPlans   repos.LessonPlanRepo
	coachingTips  repos.CoachingTipRepo
	breakReminder repos.BreakReminderRepo
}

func NewAdaptationService(
	db *gorm.DB,
	log *logger.Logger,
	generator TextGenerator,
	lessonPlans repos.LessonPlanRepo,
	coachingTips repos.CoachingTipRepo,
	breakReminder repos.BreakReminderRepo,
) AdaptationService {
	return &adaptationService{
		db:            db,
		log:           log.With("service", "AdaptationService"),
		generator:     generator,
		lessonPlans:   lessonPlans,
		coachingTips:  coachingTips,
		breakReminder: breakReminder,
	}
}

// AdaptLesson runs the full adaptation sequence for one lesson plan: two
// generation calls, the content update, the per-tip inserts, and the break
// reminder. Steps run in that fixed order; no external call happens before
// validation passes.
func (as *adaptationService) AdaptLesson(ctx context.Context, input AdaptLessonInput) (*AdaptLessonResult, error) {
	if err := validateAdaptLessonInput(input); err != nil {
		return nil, err
	}

	runLog := as.log.With("lesson_plan_id", input.LessonPlanID)

	adaptedContent, err := as.generator.GenerateText(ctx, adaptationSystemPrompt,
		adaptationUserPrompt(input.Content, input.Subject, input.GradeLevel))
	if err != nil {
		return nil, &GenerationError{Stage: "adaptation", Err: err}
	}
	if strings.TrimSpace(adaptedContent) == "" {
		return nil, &GenerationError{Stage: "adaptation", Err: errors.New("empty response")}
	}

	coachingTipsText, err := as.generator.GenerateText(ctx, coachingSystemPrompt,
		coachingUserPrompt(input.Content, input.Subject, input.GradeLevel))
	if err != nil {
		return nil, &GenerationError{Stage: "coaching tips", Err: err}
	}

	result := &AdaptLessonResult{
		AdaptedContent:   adaptedContent,
		CoachingTipsText: coachingTipsText,
	}

	if err := as.lessonPlans.UpdateAdaptedContent(ctx, nil, input.LessonPlanID, adaptedContent); err != nil {
		return nil, &PersistenceError{Op: "lesson plan update", Err: err}
	}
	result.Writes.AdaptationUpdated = true

	// Tip inserts are best-effort: one bad row must not lose the rest.
	if coachingTipsText != "" {
		for _, tip := range adaptation.ParseCoachingTips(coachingTipsText) {
			_, insErr := as.coachingTips.Insert(ctx, nil, &types.CoachingTip{
				LessonPlanID: input.LessonPlanID,
				TipText:      tip.Suggestion,
				TipType:      string(tip.Type),
			})
			if insErr != nil {
				runLog.Warn("coaching tip insert failed", "tip_type", tip.Type, "error", insErr)
				result.Writes.TipsFailed++
				continue
			}
			result.Writes.TipsInserted++
		}
	}

	breakInterval := adaptation.IntervalMinutes(input.GradeLevel)
	if _, err := as.breakReminder.Insert(ctx, nil, &types.BreakReminder{
		LessonPlanID:    input.LessonPlanID,
		IntervalMinutes: breakInterval,
		ReminderText:    breakReminderText,
		IsActive:        true,
	}); err != nil {
		return nil, &PersistenceError{Op: "break reminder insert", Err: err}
	}
	result.Writes.BreakReminderInserted = true

	runLog.Info("lesson adapted",
		"tips_inserted", result.Writes.TipsInserted,
		"tips_failed", result.Writes.TipsFailed,
		"break_interval_minutes", breakInterval)

	return result, nil
}

func validateAdaptLessonInput(input AdaptLessonInput) error {
	if input.LessonPlanID == uuid.Nil {
		return newValidationError("missing required field: lessonPlanId")
	}
	if input.Content == "" {
		return newValidationError("missing required field: content")
	}
	if input.Subject == "" {
		return newValidationError("missing required field: subject")
	}
	if input.GradeLevel == "" {
		return newValidationError("missing required field: gradeLevel")
	}
	return nil
}
