// Package scheduler runs the periodic notification dispatch job.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/lukasbehr/messecall/internal/config"
	prommetrics "github.com/lukasbehr/messecall/internal/metrics"
	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// NotificationRepository interface for notification operations.
type NotificationRepository interface {
	ListPending() ([]models.Notification, error)
	MarkSent(id uint) error
}

// Sender delivers a notification to an external channel.
type Sender interface {
	Send(ctx context.Context, notification *models.Notification) error
}

// Service periodically delivers pending notifications and marks them sent.
type Service struct {
	config           *config.SchedulerConfig
	notificationRepo NotificationRepository
	sender           Sender
	log              *logger.Logger
	cron             *cron.Cron
}

// NewService creates a new scheduler service.
func NewService(
	cfg *config.SchedulerConfig,
	notificationRepo *repository.NotificationRepository,
	sender Sender,
	log *logger.Logger,
) *Service {
	return &Service{
		config:           cfg,
		notificationRepo: notificationRepo,
		sender:           sender,
		log:              log,
	}
}

// NewServiceWithInterfaces creates a new scheduler service with interface dependencies (useful for testing).
func NewServiceWithInterfaces(
	cfg *config.SchedulerConfig,
	notificationRepo NotificationRepository,
	sender Sender,
	log *logger.Logger,
) *Service {
	return &Service{
		config:           cfg,
		notificationRepo: notificationRepo,
		sender:           sender,
		log:              log,
	}
}

// Start registers and starts the cron dispatch job.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.log.Info().Msg("Scheduler is disabled in configuration")
		return nil
	}

	location, err := s.config.GetLocation()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.config.Timezone, err)
	}

	s.cron = cron.New(cron.WithLocation(location))

	if _, err := s.cron.AddFunc(s.config.Interval, func() {
		s.DispatchPending(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to register dispatch job: %w", err)
	}

	s.cron.Start()
	s.log.Info().
		Str("interval", s.config.Interval).
		Str("timezone", s.config.Timezone).
		Msg("Notification scheduler started")

	return nil
}

// Stop halts the cron scheduler.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// DispatchPending delivers every pending notification once. A delivery
// failure leaves the notification pending for the next run.
func (s *Service) DispatchPending(ctx context.Context) {
	pending, err := s.notificationRepo.ListPending()
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list pending notifications")
		return
	}
	if len(pending) == 0 {
		return
	}

	sent := 0
	for i := range pending {
		notification := pending[i]
		if err := s.sender.Send(ctx, &notification); err != nil {
			s.log.Error().
				Err(err).
				Uint("notification_id", notification.ID).
				Msg("Failed to deliver notification")
			prommetrics.NotificationsDispatchedTotal.WithLabelValues("failed").Inc()
			continue
		}
		if err := s.notificationRepo.MarkSent(notification.ID); err != nil {
			s.log.Error().
				Err(err).
				Uint("notification_id", notification.ID).
				Msg("Failed to mark notification sent")
			continue
		}
		prommetrics.NotificationsDispatchedTotal.WithLabelValues("sent").Inc()
		sent++
	}

	s.log.Info().
		Int("pending", len(pending)).
		Int("sent", sent).
		Msg("Dispatched pending notifications")
}
