package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/ctxutil"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type stubAdaptationService struct {
	result *services.AdaptLessonResult
	err    error
	calls  int
}

func (s *stubAdaptationService) AdaptLesson(context.Context, services.AdaptLessonInput) (*services.AdaptLessonResult, error) {
	s.calls++
	return s.result, s.err
}

type stubLessonPlanService struct {
	services.LessonPlanService
	plan   *types.LessonPlan
	getErr error
}

func (s *stubLessonPlanService) GetLessonPlan(context.Context, uuid.UUID, uuid.UUID) (*types.LessonPlan, error) {
	return s.plan, s.getErr
}

func withIdentity(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID, Role: role})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func adaptTestRouter(role string, adapt *stubAdaptationService, plans *stubLessonPlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdaptHandler(adapt, plans)
	r.POST("/api/adapt-lesson", withIdentity(uuid.New(), role), h.AdaptLesson)
	return r
}

func TestAdaptLessonHappyPath(t *testing.T) {
	adapt := &stubAdaptationService{result: &services.AdaptLessonResult{
		AdaptedContent:   "adapted",
		CoachingTipsText: "tips",
		Writes:           services.WriteReport{AdaptationUpdated: true, TipsInserted: 3, BreakReminderInserted: true},
	}}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{}}
	r := adaptTestRouter(types.RoleTeacher, adapt, plans)

	body := `{"lessonPlanId":"` + uuid.NewString() + `","content":"c","subject":"Science","gradeLevel":"4th Grade"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success        bool   `json:"success"`
		AdaptedContent string `json:"adaptedContent"`
		CoachingTips   string `json:"coachingTips"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.AdaptedContent != "adapted" || resp.CoachingTips != "tips" {
		t.Fatalf("response: %+v", resp)
	}
}

func TestAdaptLessonValidationErrorMapsTo400(t *testing.T) {
	adapt := &stubAdaptationService{err: &services.ValidationError{Message: "missing required field: content"}}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{}}
	r := adaptTestRouter(types.RoleTeacher, adapt, plans)

	body := `{"lessonPlanId":"` + uuid.NewString() + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestAdaptLessonMissingPlanIDMapsTo400(t *testing.T) {
	adapt := &stubAdaptationService{}
	// A nil plan id must never reach the ownership lookup.
	plans := &stubLessonPlanService{getErr: &services.NotFoundError{Resource: "lesson plan"}}
	r := adaptTestRouter(types.RoleTeacher, adapt, plans)

	body := `{"content":"c","subject":"Science","gradeLevel":"4th Grade"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if adapt.calls != 0 {
		t.Fatalf("adaptation called with a nil plan id")
	}
}

func TestAdaptLessonGenerationErrorMapsTo502(t *testing.T) {
	adapt := &stubAdaptationService{err: &services.GenerationError{Stage: "adaptation", Err: context.DeadlineExceeded}}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{}}
	r := adaptTestRouter(types.RoleTeacher, adapt, plans)

	body := `{"lessonPlanId":"` + uuid.NewString() + `","content":"c","subject":"s","gradeLevel":"g"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestAdaptLessonParentForbidden(t *testing.T) {
	adapt := &stubAdaptationService{}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{}}
	r := adaptTestRouter(types.RoleParent, adapt, plans)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if adapt.calls != 0 {
		t.Fatalf("adaptation called for parent role")
	}
}

func TestAdaptLessonOwnershipCheckedFirst(t *testing.T) {
	adapt := &stubAdaptationService{}
	plans := &stubLessonPlanService{getErr: &services.NotFoundError{Resource: "lesson plan"}}
	r := adaptTestRouter(types.RoleTeacher, adapt, plans)

	body := `{"lessonPlanId":"` + uuid.NewString() + `","content":"c","subject":"s","gradeLevel":"g"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/adapt-lesson", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if adapt.calls != 0 {
		t.Fatalf("adaptation called despite failed ownership check")
	}
}
