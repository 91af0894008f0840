// Package gamification provides the points/badges/level bookkeeping shared
// by the approval and swap workflows.
package gamification

import (
	"context"

	prommetrics "github.com/lukasbehr/messecall/internal/metrics"
	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// GamificationRepository interface for gamification operations.
type GamificationRepository interface {
	AwardPoints(userID uint, delta int, badge string) (*models.Gamification, error)
	GetByUserID(userID uint) (*models.Gamification, error)
}

// Service awards points and reads gamification records.
type Service struct {
	repo GamificationRepository
	log  *logger.Logger
}

// NewService creates a new gamification service.
func NewService(repo *repository.GamificationRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// NewServiceWithInterfaces creates a new gamification service with interface dependencies (useful for testing).
func NewServiceWithInterfaces(repo GamificationRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Award adds points to a user's record, optionally attaching a badge, and
// returns the updated record. The streak counter counts awards, not
// consecutive periods; it never resets.
//
//nolint:unparam // ctx reserved for future context-aware operations
func (s *Service) Award(ctx context.Context, userID uint, points int, badge string) (*models.Gamification, error) {
	entry, err := s.repo.AwardPoints(userID, points, badge)
	if err != nil {
		return nil, err
	}

	prommetrics.PointsAwardedTotal.WithLabelValues(badge).Add(float64(points))

	s.log.Info().
		Uint("user_id", userID).
		Int("points", points).
		Str("badge", badge).
		Int("level", entry.Level).
		Msg("Awarded points")

	return entry, nil
}

// GetByUser returns a user's gamification record.
func (s *Service) GetByUser(ctx context.Context, userID uint) (*models.Gamification, error) {
	return s.repo.GetByUserID(userID)
}
