package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukasbehr/messecall/internal/models"
)

// createChurchRequest is the payload for church creation.
type createChurchRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Timezone string `json:"timezone"`
}

// CreateChurch registers a new church.
// POST /api/v1/churches.
func (h *Handler) CreateChurch(c *gin.Context) {
	var req createChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	church := models.Church{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	}
	if church.Timezone == "" {
		church.Timezone = "Europe/Berlin"
	}

	if err := h.repos.Churches.Create(&church); err != nil {
		h.respondRepositoryError(c, err, "Church not found")
		return
	}

	h.log.Info().Uint("church_id", church.ID).Str("name", church.Name).Msg("Created church")
	c.JSON(http.StatusCreated, church)
}

// ListChurches returns all churches.
// GET /api/v1/churches.
func (h *Handler) ListChurches(c *gin.Context) {
	churches, err := h.repos.Churches.List()
	if err != nil {
		h.respondRepositoryError(c, err, "Church not found")
		return
	}
	c.JSON(http.StatusOK, churches)
}
