package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type AdaptHandler struct {
	adaptationService services.AdaptationService
	lessonPlanService services.LessonPlanService
}

func NewAdaptHandler(adaptationService services.AdaptationService, lessonPlanService services.LessonPlanService) *AdaptHandler {
	return &AdaptHandler{adaptationService: adaptationService, lessonPlanService: lessonPlanService}
}

// AdaptLesson rewrites a lesson plan for ADHD learners and attaches coaching
// tips and a break reminder to it.
func (ah *AdaptHandler) AdaptLesson(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	var req services.AdaptLessonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.LessonPlanID == uuid.Nil {
		respondServiceError(c, &services.ValidationError{Message: "missing required field: lessonPlanId"})
		return
	}
	// Ownership check before any generation spend.
	if _, err := ah.lessonPlanService.GetLessonPlan(c.Request.Context(), rd.UserID, req.LessonPlanID); err != nil {
		respondServiceError(c, err)
		return
	}
	result, err := ah.adaptationService.AdaptLesson(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":        true,
		"adaptedContent": result.AdaptedContent,
		"coachingTips":   result.CoachingTipsText,
		"writes":         result.Writes,
	})
}
