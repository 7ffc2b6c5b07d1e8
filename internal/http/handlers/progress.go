package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type ProgressHandler struct {
	authService     services.AuthService
	progressService services.ProgressService
}

func NewProgressHandler(authService services.AuthService, progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{authService: authService, progressService: progressService}
}

// GetSummary aggregates a classroom. Parents see their linked teacher's data.
func (ph *ProgressHandler) GetSummary(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	profile, err := ph.authService.GetProfile(c.Request.Context(), rd.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	summary, err := ph.progressService.GetSummary(c.Request.Context(), profile)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"summary": summary})
}
