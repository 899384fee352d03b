package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/runwayhq/runway-backend/internal/schemas"
	"github.com/runwayhq/runway-backend/internal/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (eh *EventHandler) Create(c *gin.Context) {
	var req schemas.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body"))
		return
	}
	event, err := eh.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  gin.H{"message": vErr.Error(), "code": "VALIDATION_FAILED"},
				"fields": vErr.Fields,
			})
			return
		}
		RespondError(c, http.StatusInternalServerError, "EVENT_CREATE_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"success": true, "data": event})
}

func (eh *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_EVENT_ID", fmt.Errorf("invalid event id"))
		return
	}
	event, err := eh.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EVENT_LOAD_FAILED", err)
		return
	}
	if event == nil {
		RespondError(c, http.StatusNotFound, "EVENT_NOT_FOUND", fmt.Errorf("event not found"))
		return
	}
	RespondOK(c, gin.H{"success": true, "data": event})
}

func (eh *EventHandler) List(c *gin.Context) {
	events, err := eh.eventService.ListEvents(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "EVENT_LIST_FAILED", err)
		return
	}
	RespondOK(c, gin.H{"success": true, "data": events})
}
