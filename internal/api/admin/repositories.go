package admin

import (
	"time"

	"github.com/lukasbehr/messecall/internal/models"
)

// ChurchRepository interface for church operations.
type ChurchRepository interface {
	Create(church *models.Church) error
	List() ([]models.Church, error)
}

// UserRepository interface for user and preference operations.
type UserRepository interface {
	Create(user *models.User) error
	List() ([]models.User, error)
	CreatePreference(pref *models.Preference) error
}

// EventRepository interface for event and volunteer-interest operations.
type EventRepository interface {
	Create(event *models.Event) error
	List() ([]models.Event, error)
	CreateVolunteerInterest(interest *models.VolunteerInterest) error
}

// AssignmentRepository interface for assignment operations.
type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	List() ([]models.Assignment, error)
}

// AvailabilityRepository interface for availability and backup-pool operations.
type AvailabilityRepository interface {
	Create(availability *models.Availability) error
	CreateBackupEntry(entry *models.BackupPool) error
}

// GamificationRepository interface for gamification operations.
type GamificationRepository interface {
	Create(entry *models.Gamification) error
	GetByUserID(userID uint) (*models.Gamification, error)
}

// NotificationRepository interface for notification operations.
type NotificationRepository interface {
	ListByUser(userID uint) ([]models.Notification, error)
}

// timeWindow is shared request shape for entities carrying a [start, end)
// span.
type timeWindow struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
