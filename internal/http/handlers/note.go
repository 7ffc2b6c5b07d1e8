package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	repos "github.com/focusbridge/focusbridge-backend/internal/data/repos/lessons"
	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (nh *NoteHandler) CreateNote(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	var req services.CreateNoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	note, err := nh.noteService.CreateNote(c.Request.Context(), rd.UserID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"note": note})
}

func (nh *NoteHandler) ListNotes(c *gin.Context) {
	rd := requestData(c)
	if rd == nil {
		return
	}
	filter := repos.NoteFilter{NoteType: c.Query("note_type")}
	if raw := c.Query("lesson_plan_id"); raw != "" {
		planID, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
			return
		}
		filter.LessonPlanID = &planID
	}
	notes, err := nh.noteService.ListNotes(c.Request.Context(), rd.UserID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"notes": notes})
}

func (nh *NoteHandler) DeleteNote(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	noteID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := nh.noteService.DeleteNote(c.Request.Context(), rd.UserID, noteID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
