package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type stubGenerator struct {
	adaptedText string
	tipsText    string
	failStage   string // "adaptation" | "tips"
	calls       int
}

func (g *stubGenerator) GenerateText(_ context.Context, system, _ string) (string, error) {
	g.calls++
	switch system {
	case adaptationSystemPrompt:
		if g.failStage == "adaptation" {
			return "", errors.New("upstream unavailable")
		}
		return g.adaptedText, nil
	case coachingSystemPrompt:
		if g.failStage == "tips" {
			return "", errors.New("upstream unavailable")
		}
		return g.tipsText, nil
	}
	return "", fmt.Errorf("unexpected system prompt: %q", system)
}

type stubLessonPlanRepo struct {
	updates   []uuid.UUID
	updateErr error
}

func (r *stubLessonPlanRepo) Create(context.Context, *gorm.DB, *types.LessonPlan) (*types.LessonPlan, error) {
	return nil, errors.New("not implemented")
}
func (r *stubLessonPlanRepo) GetByID(context.Context, *gorm.DB, uuid.UUID) (*types.LessonPlan, error) {
	return nil, errors.New("not implemented")
}
func (r *stubLessonPlanRepo) ListByTeacher(context.Context, *gorm.DB, uuid.UUID) ([]*types.LessonPlan, error) {
	return nil, nil
}
func (r *stubLessonPlanRepo) ListIDsByTeacher(context.Context, *gorm.DB, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (r *stubLessonPlanRepo) UpdateAdaptedContent(_ context.Context, _ *gorm.DB, id uuid.UUID, _ string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, id)
	return nil
}
func (r *stubLessonPlanRepo) Delete(context.Context, *gorm.DB, uuid.UUID) error { return nil }
func (r *stubLessonPlanRepo) CountByTeacher(context.Context, *gorm.DB, uuid.UUID) (int64, error) {
	return 0, nil
}

type stubCoachingTipRepo struct {
	inserted []*types.CoachingTip
	failFrom int // fail inserts at index >= failFrom when > 0
}

func (r *stubCoachingTipRepo) Insert(_ context.Context, _ *gorm.DB, tip *types.CoachingTip) (*types.CoachingTip, error) {
	if r.failFrom > 0 && len(r.inserted) >= r.failFrom {
		return nil, errors.New("insert failed")
	}
	r.inserted = append(r.inserted, tip)
	return tip, nil
}
func (r *stubCoachingTipRepo) ListByLessonPlan(context.Context, *gorm.DB, uuid.UUID) ([]*types.CoachingTip, error) {
	return r.inserted, nil
}
func (r *stubCoachingTipRepo) CountByLessonPlans(context.Context, *gorm.DB, []uuid.UUID) (int64, error) {
	return int64(len(r.inserted)), nil
}

type stubBreakReminderRepo struct {
	inserted []*types.BreakReminder
}

func (r *stubBreakReminderRepo) Insert(_ context.Context, _ *gorm.DB, reminder *types.BreakReminder) (*types.BreakReminder, error) {
	r.inserted = append(r.inserted, reminder)
	return reminder, nil
}
func (r *stubBreakReminderRepo) ListByLessonPlan(context.Context, *gorm.DB, uuid.UUID) ([]*types.BreakReminder, error) {
	return r.inserted, nil
}
func (r *stubBreakReminderRepo) CountByLessonPlans(context.Context, *gorm.DB, []uuid.UUID) (int64, error) {
	return int64(len(r.inserted)), nil
}

func tipsTextWithGroups(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "- **Tip Type**: movement\n- **Suggestion**: Tip %d\n- **Why**: reason\n", i+1)
	}
	return b.String()
}

func newTestAdaptationService(gen *stubGenerator, plans *stubLessonPlanRepo, tips *stubCoachingTipRepo, reminders *stubBreakReminderRepo) AdaptationService {
	return NewAdaptationService(nil, logger.NewNop(), gen, plans, tips, reminders)
}

func TestAdaptLessonHappyPath(t *testing.T) {
	gen := &stubGenerator{adaptedText: "ADAPTED LESSON", tipsText: tipsTextWithGroups(5)}
	plans := &stubLessonPlanRepo{}
	tips := &stubCoachingTipRepo{}
	reminders := &stubBreakReminderRepo{}
	svc := newTestAdaptationService(gen, plans, tips, reminders)

	planID := uuid.New()
	result, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: planID,
		Content:      "A lesson about the water cycle",
		Subject:      "Science",
		GradeLevel:   "3rd Grade",
	})
	if err != nil {
		t.Fatalf("AdaptLesson: %v", err)
	}
	if result.AdaptedContent != "ADAPTED LESSON" {
		t.Fatalf("adapted content: %q", result.AdaptedContent)
	}
	if result.CoachingTipsText != gen.tipsText {
		t.Fatalf("raw tips text not returned")
	}
	if len(plans.updates) != 1 || plans.updates[0] != planID {
		t.Fatalf("expected exactly one lesson plan update, got %v", plans.updates)
	}
	if len(tips.inserted) != 5 {
		t.Fatalf("expected 5 tip inserts, got %d", len(tips.inserted))
	}
	for i, tip := range tips.inserted {
		if tip.LessonPlanID != planID || tip.TipType != "movement" {
			t.Fatalf("tip %d malformed: %+v", i, tip)
		}
	}
	if len(reminders.inserted) != 1 {
		t.Fatalf("expected exactly one break reminder, got %d", len(reminders.inserted))
	}
	reminder := reminders.inserted[0]
	if reminder.IntervalMinutes != 15 {
		t.Fatalf("3rd Grade interval: got %d, want 15", reminder.IntervalMinutes)
	}
	if !reminder.IsActive || reminder.ReminderText != breakReminderText {
		t.Fatalf("reminder fields: %+v", reminder)
	}
	if !result.Writes.AdaptationUpdated || result.Writes.TipsInserted != 5 || !result.Writes.BreakReminderInserted {
		t.Fatalf("write report: %+v", result.Writes)
	}
}

func TestAdaptLessonTruncatesTipInserts(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", tipsText: tipsTextWithGroups(10)}
	tips := &stubCoachingTipRepo{}
	svc := newTestAdaptationService(gen, &stubLessonPlanRepo{}, tips, &stubBreakReminderRepo{})

	if _, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(),
		Content:      "c", Subject: "s", GradeLevel: "5th Grade",
	}); err != nil {
		t.Fatalf("AdaptLesson: %v", err)
	}
	if len(tips.inserted) != 7 {
		t.Fatalf("expected tip inserts capped at 7, got %d", len(tips.inserted))
	}
}

func TestAdaptLessonValidationSkipsCollaborators(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", tipsText: "y"}
	plans := &stubLessonPlanRepo{}
	svc := newTestAdaptationService(gen, plans, &stubCoachingTipRepo{}, &stubBreakReminderRepo{})

	_, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(),
		Subject:      "Science",
		GradeLevel:   "3rd Grade",
		// Content missing
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times before validation failure", gen.calls)
	}
	if len(plans.updates) != 0 {
		t.Fatalf("storage touched on validation failure")
	}
}

func TestAdaptLessonGenerationFailureAbortsWrites(t *testing.T) {
	gen := &stubGenerator{failStage: "adaptation"}
	plans := &stubLessonPlanRepo{}
	reminders := &stubBreakReminderRepo{}
	svc := newTestAdaptationService(gen, plans, &stubCoachingTipRepo{}, reminders)

	_, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "g",
	})
	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if len(plans.updates) != 0 || len(reminders.inserted) != 0 {
		t.Fatalf("writes happened despite generation failure")
	}
}

func TestAdaptLessonEmptyAdaptationAbortsWrites(t *testing.T) {
	gen := &stubGenerator{adaptedText: "  \n ", tipsText: tipsTextWithGroups(2)}
	plans := &stubLessonPlanRepo{}
	reminders := &stubBreakReminderRepo{}
	svc := newTestAdaptationService(gen, plans, &stubCoachingTipRepo{}, reminders)

	_, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "g",
	})
	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError for blank adaptation, got %v", err)
	}
	if gErr.Stage != "adaptation" {
		t.Fatalf("stage: %q", gErr.Stage)
	}
	if len(plans.updates) != 0 || len(reminders.inserted) != 0 {
		t.Fatalf("writes happened despite blank adaptation")
	}
}

func TestAdaptLessonTipGenerationFailureBeforeUpdate(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", failStage: "tips"}
	plans := &stubLessonPlanRepo{}
	svc := newTestAdaptationService(gen, plans, &stubCoachingTipRepo{}, &stubBreakReminderRepo{})

	_, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "g",
	})
	var gErr *GenerationError
	if !errors.As(err, &gErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	// Both generation calls precede any write.
	if len(plans.updates) != 0 {
		t.Fatalf("lesson plan updated despite tip generation failure")
	}
}

func TestAdaptLessonTipInsertsAreBestEffort(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", tipsText: tipsTextWithGroups(4)}
	tips := &stubCoachingTipRepo{failFrom: 2}
	reminders := &stubBreakReminderRepo{}
	svc := newTestAdaptationService(gen, &stubLessonPlanRepo{}, tips, reminders)

	result, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "g",
	})
	if err != nil {
		t.Fatalf("AdaptLesson should tolerate tip insert failures: %v", err)
	}
	if result.Writes.TipsInserted != 2 || result.Writes.TipsFailed != 2 {
		t.Fatalf("write report: %+v", result.Writes)
	}
	if len(reminders.inserted) != 1 {
		t.Fatalf("break reminder skipped after tip failures")
	}
}

func TestAdaptLessonPersistenceFailure(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", tipsText: tipsTextWithGroups(1)}
	plans := &stubLessonPlanRepo{updateErr: errors.New("connection reset")}
	svc := newTestAdaptationService(gen, plans, &stubCoachingTipRepo{}, &stubBreakReminderRepo{})

	_, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "g",
	})
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestAdaptLessonUnknownGradeDefaultInterval(t *testing.T) {
	gen := &stubGenerator{adaptedText: "x", tipsText: ""}
	reminders := &stubBreakReminderRepo{}
	svc := newTestAdaptationService(gen, &stubLessonPlanRepo{}, &stubCoachingTipRepo{}, reminders)

	if _, err := svc.AdaptLesson(context.Background(), AdaptLessonInput{
		LessonPlanID: uuid.New(), Content: "c", Subject: "s", GradeLevel: "Adult Ed",
	}); err != nil {
		t.Fatalf("AdaptLesson: %v", err)
	}
	if got := reminders.inserted[0].IntervalMinutes; got != 20 {
		t.Fatalf("unknown grade interval: got %d, want 20", got)
	}
}
