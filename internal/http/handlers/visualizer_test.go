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
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type stubVisualizerService struct {
	visualizer  *types.Visualizer
	visualizers []*types.Visualizer
	err         error
	calls       int
}

func (s *stubVisualizerService) GenerateVisualizer(context.Context, services.GenerateVisualizerInput) (*types.Visualizer, error) {
	s.calls++
	return s.visualizer, s.err
}

func (s *stubVisualizerService) GenerateVisualAids(context.Context, *types.LessonPlan) ([]*types.Visualizer, error) {
	s.calls++
	return s.visualizers, s.err
}

func visualizerTestRouter(role string, vis *stubVisualizerService, plans *stubLessonPlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewVisualizerHandler(vis, plans)
	identity := withIdentity(uuid.New(), role)
	r.POST("/api/generate-visualizer", identity, h.GenerateVisualizer)
	r.POST("/api/lesson-plans/:id/generate-visual-aids", identity, h.GenerateVisualAids)
	return r
}

func TestGenerateVisualizerMissingPlanIDMapsTo400(t *testing.T) {
	vis := &stubVisualizerService{}
	plans := &stubLessonPlanService{getErr: &services.NotFoundError{Resource: "lesson plan"}}
	r := visualizerTestRouter(types.RoleTeacher, vis, plans)

	body := `{"concept":"fractions","gradeLevel":"3rd Grade"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-visualizer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if vis.calls != 0 {
		t.Fatalf("visualizer called with a nil plan id")
	}
}

func TestGenerateVisualizerHappyPath(t *testing.T) {
	vis := &stubVisualizerService{visualizer: &types.Visualizer{Concept: "water cycle"}}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{}}
	r := visualizerTestRouter(types.RoleTeacher, vis, plans)

	body := `{"lessonPlanId":"` + uuid.NewString() + `","concept":"water cycle","gradeLevel":"4th Grade"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-visualizer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success    bool              `json:"success"`
		Visualizer *types.Visualizer `json:"visualizer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Visualizer == nil || resp.Visualizer.Concept != "water cycle" {
		t.Fatalf("response: %+v", resp)
	}
}

func TestGenerateVisualAidsEndpoint(t *testing.T) {
	vis := &stubVisualizerService{visualizers: []*types.Visualizer{
		{Concept: "water cycle"},
		{Concept: "evaporation"},
	}}
	plans := &stubLessonPlanService{plan: &types.LessonPlan{ID: uuid.New()}}
	r := visualizerTestRouter(types.RoleTeacher, vis, plans)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lesson-plans/"+uuid.NewString()+"/generate-visual-aids", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success     bool                `json:"success"`
		Visualizers []*types.Visualizer `json:"visualizers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || len(resp.Visualizers) != 2 {
		t.Fatalf("response: %+v", resp)
	}
	if vis.calls != 1 {
		t.Fatalf("service calls: %d", vis.calls)
	}
}

func TestGenerateVisualAidsUnknownPlanMapsTo404(t *testing.T) {
	vis := &stubVisualizerService{}
	plans := &stubLessonPlanService{getErr: &services.NotFoundError{Resource: "lesson plan"}}
	r := visualizerTestRouter(types.RoleTeacher, vis, plans)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/lesson-plans/"+uuid.NewString()+"/generate-visual-aids", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if vis.calls != 0 {
		t.Fatalf("generation attempted for unknown plan")
	}
}
