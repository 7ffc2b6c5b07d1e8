package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type VisualizerHandler struct {
	visualizerService services.VisualizerService
	lessonPlanService services.LessonPlanService
}

func NewVisualizerHandler(visualizerService services.VisualizerService, lessonPlanService services.LessonPlanService) *VisualizerHandler {
	return &VisualizerHandler{visualizerService: visualizerService, lessonPlanService: lessonPlanService}
}

func (vh *VisualizerHandler) GenerateVisualizer(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	var req services.GenerateVisualizerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.LessonPlanID == uuid.Nil {
		respondServiceError(c, &services.ValidationError{Message: "missing required field: lessonPlanId"})
		return
	}
	if _, err := vh.lessonPlanService.GetLessonPlan(c.Request.Context(), rd.UserID, req.LessonPlanID); err != nil {
		respondServiceError(c, err)
		return
	}
	visualizer, err := vh.visualizerService.GenerateVisualizer(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":    true,
		"visualizer": visualizer,
	})
}

// GenerateVisualAids picks up to two key concepts from the plan's original
// content and generates one visual aid per concept.
func (vh *VisualizerHandler) GenerateVisualAids(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	plan, err := vh.lessonPlanService.GetLessonPlan(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	visualizers, err := vh.visualizerService.GenerateVisualAids(c.Request.Context(), plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":     true,
		"visualizers": visualizers,
	})
}
