// Package planner implements the assignment-suggestion engine: eligibility
// filtering, fairness scoring and ranking, plus materialization of ranked
// suggestions into proposed assignments.
package planner

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	prommetrics "github.com/lukasbehr/messecall/internal/metrics"
	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// EventRepository interface for event operations.
type EventRepository interface {
	GetByID(id uint) (*models.Event, error)
	VolunteerUserIDs(eventID uint) (map[uint]bool, error)
}

// UserRepository interface for user operations.
type UserRepository interface {
	ListAssignable(churchID uint) ([]models.User, error)
	FindPreference(userID uint) (*models.Preference, error)
}

// AvailabilityRepository interface for availability operations.
type AvailabilityRepository interface {
	AvailableUserIDs(start, end time.Time) (map[uint]bool, error)
}

// AssignmentRepository interface for assignment operations.
type AssignmentRepository interface {
	CountByUserForChurch(churchID uint) (map[uint]int, error)
	CreateBatch(assignments []*models.Assignment) error
}

// Candidate is one ranked suggestion entry. Score is a cost: lower means
// more desirable.
type Candidate struct {
	UserID uint    `json:"user_id"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Service computes ranked assignment suggestions for events.
type Service struct {
	eventRepo        EventRepository
	userRepo         UserRepository
	availabilityRepo AvailabilityRepository
	assignmentRepo   AssignmentRepository
	log              *logger.Logger
}

// NewService creates a new planner service with concrete repository types.
func NewService(
	eventRepo *repository.EventRepository,
	userRepo *repository.UserRepository,
	availabilityRepo *repository.AvailabilityRepository,
	assignmentRepo *repository.AssignmentRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		assignmentRepo:   assignmentRepo,
		log:              log,
	}
}

// NewServiceWithInterfaces creates a new planner service with interface dependencies (useful for testing).
func NewServiceWithInterfaces(
	eventRepo EventRepository,
	userRepo UserRepository,
	availabilityRepo AvailabilityRepository,
	assignmentRepo AssignmentRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		assignmentRepo:   assignmentRepo,
		log:              log,
	}
}

// Suggest returns at most event.RequiredSlots ranked candidates for an
// event, lowest score first. Fewer eligible candidates than slots is not
// an error; all of them are returned.
//
//nolint:unparam // ctx reserved for future context-aware operations
func (s *Service) Suggest(ctx context.Context, eventID uint) ([]Candidate, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	return s.suggestForEvent(event)
}

// suggestForEvent scores, ranks and truncates candidates for an already
// loaded event.
func (s *Service) suggestForEvent(event *models.Event) ([]Candidate, error) {
	candidates, err := s.scoreCandidates(event)
	if err != nil {
		return nil, err
	}

	// Stable sort: equal scores keep enumeration (user-id) order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	if len(candidates) > event.RequiredSlots {
		candidates = candidates[:event.RequiredSlots]
	}

	prommetrics.SuggestionsTotal.WithLabelValues(strconv.FormatUint(uint64(event.ChurchID), 10)).Inc()

	s.log.Info().
		Uint("event_id", event.ID).
		Uint("church_id", event.ChurchID).
		Int("slots", event.RequiredSlots).
		Int("candidates", len(candidates)).
		Msg("Computed assignment suggestion")

	return candidates, nil
}

// Materialize computes the suggestion for an event and persists one
// proposed assignment per selected candidate, tagged as algorithmic.
func (s *Service) Materialize(ctx context.Context, eventID uint) ([]*models.Assignment, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.suggestForEvent(event)
	if err != nil {
		return nil, err
	}

	assignments := make([]*models.Assignment, 0, len(candidates))
	for _, candidate := range candidates {
		assignments = append(assignments, &models.Assignment{
			EventID: event.ID,
			UserID:  candidate.UserID,
			Status:  models.AssignmentStatusProposed,
			Source:  models.AssignmentSourceAlgorithm,
		})
	}

	if err := s.assignmentRepo.CreateBatch(assignments); err != nil {
		return nil, fmt.Errorf("failed to materialize suggestion for event %d: %w", eventID, err)
	}

	prommetrics.AssignmentsProposedTotal.
		WithLabelValues(strconv.FormatUint(uint64(event.ChurchID), 10)).
		Add(float64(len(assignments)))

	s.log.Info().
		Uint("event_id", event.ID).
		Int("assignments", len(assignments)).
		Msg("Materialized assignment suggestion")

	return assignments, nil
}
