package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/focusbridge/focusbridge-backend/internal/domain"
	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/ctxutil"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

// requestData pulls the authenticated user off the request context. Returns
// nil after writing a 401 when the middleware did not run.
func requestData(c *gin.Context) *ctxutil.RequestData {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing request identity"))
		return nil
	}
	return rd
}

// requireTeacher enforces write access: parents are read-only.
func requireTeacher(c *gin.Context) *ctxutil.RequestData {
	rd := requestData(c)
	if rd == nil {
		return nil
	}
	if rd.Role != types.RoleTeacher {
		response.RespondError(c, http.StatusForbidden, "forbidden", errors.New("teacher role required"))
		return nil
	}
	return rd
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var nfErr *services.NotFoundError
	if errors.As(err, &nfErr) {
		response.RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	var gErr *services.GenerationError
	if errors.As(err, &gErr) {
		response.RespondError(c, http.StatusBadGateway, "generation_failed", err)
		return
	}
	var pErr *services.PersistenceError
	if errors.As(err, &pErr) {
		response.RespondError(c, http.StatusInternalServerError, "persistence_failed", err)
		return
	}
	response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
}
