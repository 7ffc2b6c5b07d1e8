package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type LessonPlanHandler struct {
	lessonPlanService services.LessonPlanService
}

func NewLessonPlanHandler(lessonPlanService services.LessonPlanService) *LessonPlanHandler {
	return &LessonPlanHandler{lessonPlanService: lessonPlanService}
}

func (lh *LessonPlanHandler) CreateLessonPlan(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	var req services.CreateLessonPlanInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	plan, err := lh.lessonPlanService.CreateLessonPlan(c.Request.Context(), rd.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lesson_plan": plan})
}

func (lh *LessonPlanHandler) ListLessonPlans(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	plans, err := lh.lessonPlanService.ListLessonPlans(c.Request.Context(), rd.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lesson_plans": plans})
}

func (lh *LessonPlanHandler) GetLessonPlan(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	plan, err := lh.lessonPlanService.GetLessonPlan(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"lesson_plan": plan})
}

func (lh *LessonPlanHandler) DeleteLessonPlan(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := lh.lessonPlanService.DeleteLessonPlan(c.Request.Context(), rd.UserID, planID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (lh *LessonPlanHandler) ListCoachingTips(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	tips, err := lh.lessonPlanService.ListCoachingTips(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"coaching_tips": tips})
}

func (lh *LessonPlanHandler) ListBreakReminders(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	reminders, err := lh.lessonPlanService.ListBreakReminders(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"break_reminders": reminders})
}

func (lh *LessonPlanHandler) ListVisualizers(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	visualizers, err := lh.lessonPlanService.ListVisualizers(c.Request.Context(), rd.UserID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"visualizers": visualizers})
}

func pathUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}
