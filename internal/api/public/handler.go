// Package public provides the unauthenticated endpoints: public event
// listing and the iCalendar export.
package public

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/service/calendar"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// EventRepository interface for public event reads.
type EventRepository interface {
	ListPublicByChurch(churchID uint) ([]models.Event, error)
}

// Cache interface for the calendar export cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Handler handles public API requests.
type Handler struct {
	eventRepo EventRepository
	cache     Cache
	cacheTTL  time.Duration
	log       *logger.Logger
}

// NewHandler creates a new public handler. cache may be nil to disable
// export caching.
func NewHandler(eventRepo EventRepository, cache Cache, cacheTTL time.Duration, log *logger.Logger) *Handler {
	return &Handler{
		eventRepo: eventRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// ListPublicEvents returns the publicly visible events of a church.
// GET /public/churches/:id/events.
func (h *Handler) ListPublicEvents(c *gin.Context) {
	churchID, err := parseChurchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.eventRepo.ListPublicByChurch(churchID)
	if err != nil {
		h.log.Error().Err(err).Uint("church_id", churchID).Msg("Failed to list public events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// ExportPublicEventsICS serves the church's public events as an iCalendar
// document, cached for the configured TTL.
// GET /public/churches/:id/events.ics.
func (h *Handler) ExportPublicEventsICS(c *gin.Context) {
	churchID, err := parseChurchID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	key := cacheKey(churchID)

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, key); err != nil {
			h.log.Warn().Err(err).Uint("church_id", churchID).Msg("Calendar cache read failed")
		} else if cached != "" {
			c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cached))
			return
		}
	}

	events, err := h.eventRepo.ListPublicByChurch(churchID)
	if err != nil {
		h.log.Error().Err(err).Uint("church_id", churchID).Msg("Failed to list public events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ics := calendar.BuildPublicEventsICS(events)

	if h.cache != nil {
		if err := h.cache.Set(ctx, key, ics, h.cacheTTL); err != nil {
			h.log.Warn().Err(err).Uint("church_id", churchID).Msg("Calendar cache write failed")
		}
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

// InvalidateChurch drops the cached export for a church. Called by the
// admin handler when an event is created.
func (h *Handler) InvalidateChurch(ctx context.Context, churchID uint) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Del(ctx, cacheKey(churchID)); err != nil {
		h.log.Warn().Err(err).Uint("church_id", churchID).Msg("Calendar cache invalidation failed")
	}
}

func cacheKey(churchID uint) string {
	return fmt.Sprintf("calendar:church:%d", churchID)
}

func parseChurchID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid church id: %s", idStr)
	}
	return uint(id), nil
}
