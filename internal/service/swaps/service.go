// Package swaps implements the swap-request workflow, assignment approval
// and the backup-candidate lookup.
package swaps

import (
	"context"
	"time"

	prommetrics "github.com/lukasbehr/messecall/internal/metrics"
	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// AssignmentRepository interface for assignment operations.
type AssignmentRepository interface {
	GetByID(id uint) (*models.Assignment, error)
	Approve(assignment *models.Assignment, at time.Time) error
}

// SwapRepository interface for swap-request operations.
type SwapRepository interface {
	Create(swap *models.SwapRequest) error
	GetByID(id uint) (*models.SwapRequest, error)
	Accept(swapID, replacementUserID uint) (*models.Assignment, error)
}

// AvailabilityRepository interface for availability and backup-pool operations.
type AvailabilityRepository interface {
	AvailableUserIDs(start, end time.Time) (map[uint]bool, error)
	ActiveBackupEntriesCovering(start, end time.Time) ([]models.BackupPool, error)
}

// NotificationRepository interface for enqueueing notifications.
type NotificationRepository interface {
	Create(notification *models.Notification) error
}

// GamificationService awards points after a workflow transition.
type GamificationService interface {
	Award(ctx context.Context, userID uint, points int, badge string) (*models.Gamification, error)
}

// Service handles swap requests, approvals and backup lookups.
type Service struct {
	assignmentRepo   AssignmentRepository
	swapRepo         SwapRepository
	availabilityRepo AvailabilityRepository
	notificationRepo NotificationRepository
	gamification     GamificationService
	log              *logger.Logger
}

// NewService creates a new swaps service with concrete repository types.
func NewService(
	assignmentRepo *repository.AssignmentRepository,
	swapRepo *repository.SwapRepository,
	availabilityRepo *repository.AvailabilityRepository,
	notificationRepo *repository.NotificationRepository,
	gamification GamificationService,
	log *logger.Logger,
) *Service {
	return &Service{
		assignmentRepo:   assignmentRepo,
		swapRepo:         swapRepo,
		availabilityRepo: availabilityRepo,
		notificationRepo: notificationRepo,
		gamification:     gamification,
		log:              log,
	}
}

// NewServiceWithInterfaces creates a new swaps service with interface dependencies (useful for testing).
func NewServiceWithInterfaces(
	assignmentRepo AssignmentRepository,
	swapRepo SwapRepository,
	availabilityRepo AvailabilityRepository,
	notificationRepo NotificationRepository,
	gamification GamificationService,
	log *logger.Logger,
) *Service {
	return &Service{
		assignmentRepo:   assignmentRepo,
		swapRepo:         swapRepo,
		availabilityRepo: availabilityRepo,
		notificationRepo: notificationRepo,
		gamification:     gamification,
		log:              log,
	}
}

// CreateSwapRequest opens a swap request wrapping an existing assignment.
// Fails with the repository's not-found error when the assignment does
// not exist.
//
//nolint:unparam // ctx reserved for future context-aware operations
func (s *Service) CreateSwapRequest(ctx context.Context, assignmentID uint, requestedUserIDs []int64) (*models.SwapRequest, error) {
	assignment, err := s.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		AssignmentID:     assignment.ID,
		Status:           models.SwapStatusOpen,
		RequestedUserIDs: requestedUserIDs,
	}
	if err := s.swapRepo.Create(swap); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("swap_id", swap.ID).
		Uint("assignment_id", assignment.ID).
		Int("invited", len(requestedUserIDs)).
		Msg("Created swap request")

	return swap, nil
}

// AcceptSwapRequest resolves a swap request: the wrapped assignment moves
// to the replacement user atomically, then the replacement is rewarded
// and notified. Prior state of the swap request is intentionally not
// checked (accepting twice overwrites, matching the historical behavior).
func (s *Service) AcceptSwapRequest(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error) {
	assignment, err := s.swapRepo.Accept(swapID, replacementUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.gamification.Award(ctx, replacementUserID, gamificationSwapPoints, gamificationSwapBadge); err != nil {
		s.log.Error().Err(err).Uint("user_id", replacementUserID).Msg("Failed to award swap points")
	}
	if err := s.notificationRepo.Create(&models.Notification{
		UserID:  replacementUserID,
		Title:   notifySwapTitle,
		Message: notifySwapMessage,
	}); err != nil {
		s.log.Error().Err(err).Uint("user_id", replacementUserID).Msg("Failed to enqueue swap notification")
	}

	prommetrics.SwapsAcceptedTotal.Inc()

	s.log.Info().
		Uint("swap_id", swapID).
		Uint("assignment_id", assignment.ID).
		Uint("replacement_user_id", replacementUserID).
		Msg("Accepted swap request")

	return assignment, nil
}

// ApproveAssignment confirms a proposed assignment and rewards the
// assignee. The prior status is not validated; see the swap acceptance
// note above.
func (s *Service) ApproveAssignment(ctx context.Context, assignmentID uint) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.Approve(assignment, time.Now().UTC()); err != nil {
		return nil, err
	}

	if _, err := s.gamification.Award(ctx, assignment.UserID, gamificationApprovalPoints, gamificationApprovalBadge); err != nil {
		s.log.Error().Err(err).Uint("user_id", assignment.UserID).Msg("Failed to award approval points")
	}
	if err := s.notificationRepo.Create(&models.Notification{
		UserID:  assignment.UserID,
		Title:   notifyApprovalTitle,
		Message: notifyApprovalMessage,
	}); err != nil {
		s.log.Error().Err(err).Uint("user_id", assignment.UserID).Msg("Failed to enqueue approval notification")
	}

	prommetrics.AssignmentsApprovedTotal.Inc()

	s.log.Info().
		Uint("assignment_id", assignment.ID).
		Uint("user_id", assignment.UserID).
		Msg("Approved assignment")

	return assignment, nil
}

// BackupCandidates returns, in pool order, the users who hold an active
// backup-pool entry covering [start, end] AND have a separate availability
// window covering the same span. Both conditions are required.
//
//nolint:unparam // ctx reserved for future context-aware operations
func (s *Service) BackupCandidates(ctx context.Context, start, end time.Time) ([]uint, error) {
	entries, err := s.availabilityRepo.ActiveBackupEntriesCovering(start, end)
	if err != nil {
		return nil, err
	}
	available, err := s.availabilityRepo.AvailableUserIDs(start, end)
	if err != nil {
		return nil, err
	}

	candidates := make([]uint, 0, len(entries))
	for _, entry := range entries {
		if available[entry.UserID] {
			candidates = append(candidates, entry.UserID)
		}
	}

	prommetrics.BackupLookupsTotal.Inc()

	s.log.Info().
		Time("start", start).
		Time("end", end).
		Int("pool_entries", len(entries)).
		Int("candidates", len(candidates)).
		Msg("Looked up backup candidates")

	return candidates, nil
}
