package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukasbehr/messecall/internal/models"
)

// createEventRequest is the payload for event creation.
type createEventRequest struct {
	timeWindow
	ChurchID            uint   `json:"church_id" binding:"required"`
	Type                string `json:"type" binding:"required"`
	Location            string `json:"location" binding:"required"`
	RequiredSlots       int    `json:"required_slots"`
	RequiresExperienced bool   `json:"requires_experienced"`
	IsPublic            bool   `json:"is_public"`
	Description         string `json:"description"`
}

// CreateEvent registers a new event and invalidates the church's cached
// public calendar.
// POST /api/v1/events.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	event := models.Event{
		ChurchID:            req.ChurchID,
		Type:                req.Type,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		Location:            req.Location,
		RequiredSlots:       req.RequiredSlots,
		RequiresExperienced: req.RequiresExperienced,
		IsPublic:            req.IsPublic,
		Description:         req.Description,
	}
	if event.RequiredSlots < 1 {
		event.RequiredSlots = 1
	}

	if err := h.repos.Events.Create(&event); err != nil {
		h.respondRepositoryError(c, err, "Event not found")
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateChurch(c.Request.Context(), event.ChurchID)
	}

	h.log.Info().
		Uint("event_id", event.ID).
		Uint("church_id", event.ChurchID).
		Str("type", event.Type).
		Msg("Created event")
	c.JSON(http.StatusCreated, event)
}

// ListEvents returns all events.
// GET /api/v1/events.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.repos.Events.List()
	if err != nil {
		h.respondRepositoryError(c, err, "Event not found")
		return
	}
	c.JSON(http.StatusOK, events)
}

// createVolunteerInterestRequest is the payload for volunteering.
type createVolunteerInterestRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
	Note    string `json:"note"`
}

// CreateVolunteerInterest records a volunteer signup for an event.
// POST /api/v1/volunteer-interests.
func (h *Handler) CreateVolunteerInterest(c *gin.Context) {
	var req createVolunteerInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	interest := models.VolunteerInterest{
		EventID: req.EventID,
		UserID:  req.UserID,
		Note:    req.Note,
	}

	if err := h.repos.Events.CreateVolunteerInterest(&interest); err != nil {
		h.respondRepositoryError(c, err, "Event not found")
		return
	}

	h.log.Info().
		Uint("event_id", interest.EventID).
		Uint("user_id", interest.UserID).
		Msg("Created volunteer interest")
	c.JSON(http.StatusCreated, interest)
}
