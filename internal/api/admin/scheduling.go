package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukasbehr/messecall/internal/models"
)

// createAssignmentRequest is the payload for manual assignment creation.
type createAssignmentRequest struct {
	EventID uint   `json:"event_id" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=proposed approved swapped"`
	Source  string `json:"source" binding:"omitempty,oneof=algorithm manual"`
}

// CreateAssignment creates an assignment directly, bypassing the planner.
// POST /api/v1/assignments.
func (h *Handler) CreateAssignment(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	assignment := models.Assignment{
		EventID: req.EventID,
		UserID:  req.UserID,
		Status:  req.Status,
		Source:  req.Source,
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusProposed
	}
	if assignment.Source == "" {
		assignment.Source = models.AssignmentSourceManual
	}

	if err := h.repos.Assignments.Create(&assignment); err != nil {
		h.respondRepositoryError(c, err, "Assignment not found")
		return
	}

	h.log.Info().
		Uint("assignment_id", assignment.ID).
		Uint("event_id", assignment.EventID).
		Uint("user_id", assignment.UserID).
		Msg("Created assignment")
	c.JSON(http.StatusCreated, assignment)
}

// ListAssignments returns all assignments.
// GET /api/v1/assignments.
func (h *Handler) ListAssignments(c *gin.Context) {
	assignments, err := h.repos.Assignments.List()
	if err != nil {
		h.respondRepositoryError(c, err, "Assignment not found")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// createAvailabilityRequest is the payload for declaring availability.
type createAvailabilityRequest struct {
	timeWindow
	UserID    uint   `json:"user_id" binding:"required"`
	Available *bool  `json:"available"`
	Note      string `json:"note"`
}

// CreateAvailability declares an availability window for a user.
// POST /api/v1/availability.
func (h *Handler) CreateAvailability(c *gin.Context) {
	var req createAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	availability := models.Availability{
		UserID:    req.UserID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: true,
		Note:      req.Note,
	}
	if req.Available != nil {
		availability.Available = *req.Available
	}

	if err := h.repos.Availability.Create(&availability); err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}

	h.log.Info().
		Uint("user_id", availability.UserID).
		Bool("available", availability.Available).
		Msg("Created availability window")
	c.JSON(http.StatusCreated, availability)
}

// createBackupPoolRequest is the payload for joining the backup pool.
type createBackupPoolRequest struct {
	timeWindow
	UserID             uint     `json:"user_id" binding:"required"`
	PreferredLocations []string `json:"preferred_locations"`
	Active             *bool    `json:"active"`
}

// CreateBackupPoolEntry registers a standing substitution window.
// POST /api/v1/backup-pool.
func (h *Handler) CreateBackupPoolEntry(c *gin.Context) {
	var req createBackupPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	entry := models.BackupPool{
		UserID:             req.UserID,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		PreferredLocations: req.PreferredLocations,
		Active:             true,
	}
	if req.Active != nil {
		entry.Active = *req.Active
	}

	if err := h.repos.Availability.CreateBackupEntry(&entry); err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}

	h.log.Info().Uint("user_id", entry.UserID).Msg("Created backup pool entry")
	c.JSON(http.StatusCreated, entry)
}

// createGamificationRequest is the payload for seeding a gamification
// record directly.
type createGamificationRequest struct {
	UserID uint     `json:"user_id" binding:"required"`
	Points int      `json:"points"`
	Level  int      `json:"level"`
	Badges []string `json:"badges"`
	Streak int      `json:"streak"`
}

// CreateGamification creates a gamification record.
// POST /api/v1/gamification.
func (h *Handler) CreateGamification(c *gin.Context) {
	var req createGamificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	entry := models.Gamification{
		UserID: req.UserID,
		Points: req.Points,
		Level:  req.Level,
		Badges: req.Badges,
		Streak: req.Streak,
	}
	if entry.Level < 1 {
		entry.Level = 1
	}

	if err := h.repos.Gamification.Create(&entry); err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}

	h.log.Info().Uint("user_id", entry.UserID).Msg("Created gamification record")
	c.JSON(http.StatusCreated, entry)
}

// GetGamification returns a user's gamification record.
// GET /api/v1/gamification/:user_id.
func (h *Handler) GetGamification(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.repos.Gamification.GetByUserID(userID)
	if err != nil {
		h.respondRepositoryError(c, err, "Gamification not found")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListNotifications returns a user's notifications.
// GET /api/v1/notifications/:user_id.
func (h *Handler) ListNotifications(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	notifications, err := h.repos.Notifications.ListByUser(userID)
	if err != nil {
		h.respondRepositoryError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, notifications)
}
