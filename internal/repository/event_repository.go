package repository

import (
	"fmt"

	"github.com/lukasbehr/messecall/internal/models"
)

// EventRepository handles event and volunteer-interest database operations.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event.
func (r *EventRepository) Create(event *models.Event) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get event by id %d: %w", id, err)
	}
	return &event, nil
}

// List retrieves all events.
func (r *EventRepository) List() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("id ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListPublicByChurch retrieves the publicly visible events of a church.
func (r *EventRepository) ListPublicByChurch(churchID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Where("church_id = ? AND is_public = ?", churchID, true).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list public events for church %d: %w", churchID, err)
	}
	return events, nil
}

// CreateVolunteerInterest records a user volunteering for an event.
func (r *EventRepository) CreateVolunteerInterest(interest *models.VolunteerInterest) error {
	if err := r.db.Create(interest).Error; err != nil {
		return fmt.Errorf("failed to create volunteer interest: %w", err)
	}
	return nil
}

// VolunteerUserIDs returns the set of users who volunteered for an event.
func (r *EventRepository) VolunteerUserIDs(eventID uint) (map[uint]bool, error) {
	var interests []models.VolunteerInterest
	if err := r.db.Where("event_id = ?", eventID).Find(&interests).Error; err != nil {
		return nil, fmt.Errorf("failed to list volunteer interests for event %d: %w", eventID, err)
	}
	volunteers := make(map[uint]bool, len(interests))
	for _, interest := range interests {
		volunteers[interest.UserID] = true
	}
	return volunteers, nil
}
