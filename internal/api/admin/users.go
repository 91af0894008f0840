package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukasbehr/messecall/internal/models"
)

// createUserRequest is the payload for user creation. Role is the closed
// enumeration shared with storage; anything else is rejected here at the
// boundary.
type createUserRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Role            string `json:"role" binding:"required,oneof=admin coordinator server"`
	ChurchID        uint   `json:"church_id" binding:"required"`
	ExperienceLevel int    `json:"experience_level"`
	Active          *bool  `json:"active"`
}

// CreateUser registers a new person.
// POST /api/v1/users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		ChurchID:        req.ChurchID,
		ExperienceLevel: req.ExperienceLevel,
		Active:          true,
	}
	if user.ExperienceLevel < 1 {
		user.ExperienceLevel = 1
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.repos.Users.Create(&user); err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}

	h.log.Info().Uint("user_id", user.ID).Str("role", user.Role).Msg("Created user")
	c.JSON(http.StatusCreated, user)
}

// ListUsers returns all users.
// GET /api/v1/users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.repos.Users.List()
	if err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, users)
}

// createPreferenceRequest is the payload for stating preferences.
type createPreferenceRequest struct {
	UserID              uint     `json:"user_id" binding:"required"`
	PreferredWeekdays   []string `json:"preferred_weekdays"`
	PreferredTimeRanges []string `json:"preferred_time_ranges"`
	PreferredLocations  []string `json:"preferred_locations"`
	PartnerUserIDs      []int64  `json:"partner_user_ids"`
	FavoriteEventTypes  []string `json:"favorite_event_types"`
}

// CreatePreference stores a user's advisory scheduling preferences.
// POST /api/v1/preferences.
func (h *Handler) CreatePreference(c *gin.Context) {
	var req createPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pref := models.Preference{
		UserID:              req.UserID,
		PreferredWeekdays:   req.PreferredWeekdays,
		PreferredTimeRanges: req.PreferredTimeRanges,
		PreferredLocations:  req.PreferredLocations,
		PartnerUserIDs:      req.PartnerUserIDs,
		FavoriteEventTypes:  req.FavoriteEventTypes,
	}

	if err := h.repos.Users.CreatePreference(&pref); err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}

	h.log.Info().Uint("user_id", pref.UserID).Msg("Created preference")
	c.JSON(http.StatusCreated, pref)
}
