// Package planning provides REST API handlers for the decision surface:
// assignment suggestions, materialization, approval, the swap workflow and
// backup-candidate lookup.
package planning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/service/planner"
	"github.com/lukasbehr/messecall/internal/service/swaps"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// PlannerService interface for suggestion operations.
type PlannerService interface {
	Suggest(ctx context.Context, eventID uint) ([]planner.Candidate, error)
	Materialize(ctx context.Context, eventID uint) ([]*models.Assignment, error)
}

// SwapService interface for swap, approval and backup operations.
type SwapService interface {
	CreateSwapRequest(ctx context.Context, assignmentID uint, requestedUserIDs []int64) (*models.SwapRequest, error)
	AcceptSwapRequest(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error)
	ApproveAssignment(ctx context.Context, assignmentID uint) (*models.Assignment, error)
	BackupCandidates(ctx context.Context, start, end time.Time) ([]uint, error)
}

// Handler handles planning API requests.
type Handler struct {
	plannerService PlannerService
	swapService    SwapService
	log            *logger.Logger
}

// NewHandler creates a new planning handler.
func NewHandler(plannerService *planner.Service, swapService *swaps.Service, log *logger.Logger) *Handler {
	return &Handler{
		plannerService: plannerService,
		swapService:    swapService,
		log:            log,
	}
}

// NewHandlerWithInterfaces creates a new planning handler with interface dependencies (useful for testing).
func NewHandlerWithInterfaces(plannerService PlannerService, swapService SwapService, log *logger.Logger) *Handler {
	return &Handler{
		plannerService: plannerService,
		swapService:    swapService,
		log:            log,
	}
}

// SuggestPlan returns the ranked candidates for an event without
// persisting anything.
// POST /api/v1/events/:id/suggestions.
func (h *Handler) SuggestPlan(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	candidates, err := h.plannerService.Suggest(c.Request.Context(), eventID)
	if err != nil {
		h.respondServiceError(c, err, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event_id": eventID,
		"items":    candidates,
	})
}

// ProposePlan materializes the suggestion into proposed assignments.
// POST /api/v1/events/:id/proposals.
func (h *Handler) ProposePlan(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	assignments, err := h.plannerService.Materialize(c.Request.Context(), eventID)
	if err != nil {
		h.respondServiceError(c, err, "Event not found")
		return
	}

	c.JSON(http.StatusCreated, assignments)
}

// ApproveAssignment confirms a proposed assignment.
// POST /api/v1/assignments/:id/approve.
func (h *Handler) ApproveAssignment(c *gin.Context) {
	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.swapService.ApproveAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		h.respondServiceError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignment_id": assignment.ID,
		"status":        assignment.Status,
	})
}

// createSwapRequest is the payload for opening a swap request.
type createSwapRequest struct {
	AssignmentID     uint    `json:"assignment_id" binding:"required"`
	RequestedUserIDs []int64 `json:"requested_user_ids"`
}

// CreateSwapRequest opens a swap request for an assignment.
// POST /api/v1/swap-requests.
func (h *Handler) CreateSwapRequest(c *gin.Context) {
	var req createSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	swap, err := h.swapService.CreateSwapRequest(c.Request.Context(), req.AssignmentID, req.RequestedUserIDs)
	if err != nil {
		h.respondServiceError(c, err, "Assignment not found")
		return
	}

	c.JSON(http.StatusCreated, swap)
}

// acceptSwapRequest is the payload for resolving a swap request.
type acceptSwapRequest struct {
	ReplacementUserID uint `json:"replacement_user_id" binding:"required"`
}

// AcceptSwapRequest resolves a swap request with the chosen replacement.
// POST /api/v1/swap-requests/:id/accept.
func (h *Handler) AcceptSwapRequest(c *gin.Context) {
	swapID, err := parseIDParam(c, "id")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req acceptSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	assignment, err := h.swapService.AcceptSwapRequest(c.Request.Context(), swapID, req.ReplacementUserID)
	if err != nil {
		h.respondServiceError(c, err, "Swap request not found")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// BackupSuggestions returns candidate user IDs for an arbitrary window.
// GET /api/v1/backup-pool/suggestions?start_time=...&end_time=... (RFC3339).
func (h *Handler) BackupSuggestions(c *gin.Context) {
	start, err := parseTimeQuery(c, "start_time")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseTimeQuery(c, "end_time")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	candidates, err := h.swapService.BackupCandidates(c.Request.Context(), start, end)
	if err != nil {
		h.respondServiceError(c, err, "Backup pool not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// Helper functions

// parseIDParam extracts a numeric identifier from a URL parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, idStr)
	}
	return uint(id), nil
}

// parseTimeQuery extracts an RFC3339 timestamp from a query parameter.
func parseTimeQuery(c *gin.Context, name string) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %s", name, value)
	}
	return t, nil
}

// errorResponse sends a standardized error response.
func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error":     message,
		"timestamp": time.Now().UTC(),
	})
}

// respondServiceError maps not-found errors to 404 and everything else to
// 500.
func (h *Handler) respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		errorResponse(c, http.StatusNotFound, notFoundMessage)
		return
	}
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("Planning operation failed")
	errorResponse(c, http.StatusInternalServerError, "Internal server error")
}
