package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/runwayhq/runway-backend/internal/requestdata"
	"github.com/runwayhq/runway-backend/internal/schemas"
	"github.com/runwayhq/runway-backend/internal/services"
)

type DraftHandler struct {
	draftService services.DraftService
}

func NewDraftHandler(draftService services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

func (dh *DraftHandler) Save(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("no session"))
		return
	}
	var req struct {
		CurrentStep int                `json:"current_step"`
		Draft       schemas.EventDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	saved, err := dh.draftService.SaveDraft(c.Request.Context(), rd.UserID, req.Draft, req.CurrentStep)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "DRAFT_INVALID", err)
		return
	}
	RespondOK(c, gin.H{"success": true, "data": saved})
}

func (dh *DraftHandler) Load(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("no session"))
		return
	}
	draft, err := dh.draftService.LoadDraft(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "DRAFT_LOAD_FAILED", err)
		return
	}
	if draft == nil {
		RespondError(c, http.StatusNotFound, "DRAFT_NOT_FOUND", fmt.Errorf("no draft saved"))
		return
	}
	RespondOK(c, gin.H{"success": true, "data": draft})
}

func (dh *DraftHandler) Clear(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("no session"))
		return
	}
	if err := dh.draftService.ClearDraft(c.Request.Context(), rd.UserID); err != nil {
		RespondError(c, http.StatusInternalServerError, "DRAFT_CLEAR_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
