package repository

import (
	"fmt"

	"github.com/lukasbehr/messecall/internal/models"
)

// NotificationRepository handles notification database operations.
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create enqueues a notification in pending state.
func (r *NotificationRepository) Create(notification *models.Notification) error {
	if notification.Status == "" {
		notification.Status = models.NotificationStatusPending
	}
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByUser retrieves all notifications for a user.
func (r *NotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}

// ListPending retrieves all notifications awaiting delivery.
func (r *NotificationRepository) ListPending() ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("status = ?", models.NotificationStatusPending).
		Order("id ASC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return notifications, nil
}

// MarkSent flips a notification to sent.
func (r *NotificationRepository) MarkSent(id uint) error {
	err := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("status", models.NotificationStatusSent).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification %d sent: %w", id, err)
	}
	return nil
}
