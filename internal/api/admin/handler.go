// Package admin provides REST API handlers for entity administration:
// churches, users, events, preferences, availability, volunteer interest,
// assignments, the backup pool, gamification records and notifications.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/pkg/logger"
)

// CalendarInvalidator drops cached calendar exports when events change.
type CalendarInvalidator interface {
	InvalidateChurch(ctx context.Context, churchID uint)
}

// Handler handles administration API requests.
type Handler struct {
	repos       Repositories
	invalidator CalendarInvalidator
	log         *logger.Logger
}

// Repositories bundles the persistence surface the CRUD endpoints use.
type Repositories struct {
	Churches      ChurchRepository
	Users         UserRepository
	Events        EventRepository
	Assignments   AssignmentRepository
	Availability  AvailabilityRepository
	Gamification  GamificationRepository
	Notifications NotificationRepository
}

// NewHandler creates a new administration handler. The invalidator may be
// nil when calendar caching is disabled.
func NewHandler(repos Repositories, invalidator CalendarInvalidator, log *logger.Logger) *Handler {
	return &Handler{repos: repos, invalidator: invalidator, log: log}
}

// parseIDParam extracts a numeric identifier from a URL parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, idStr)
	}
	return uint(id), nil
}

// errorResponse sends a standardized error response.
func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error":     message,
		"timestamp": time.Now().UTC(),
	})
}

// respondRepositoryError maps a not-found to 404 and everything else to
// 500, hiding internal details.
func (h *Handler) respondRepositoryError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		errorResponse(c, http.StatusNotFound, notFoundMessage)
		return
	}
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Repository operation failed")
	errorResponse(c, http.StatusInternalServerError, "Internal server error")
}
