package models

import (
	"time"
)

// Event represents a service or gathering that needs staffing.
type Event struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ChurchID            uint      `gorm:"not null;index" json:"church_id"`
	Church              Church    `gorm:"foreignKey:ChurchID" json:"church,omitempty"`
	Type                string    `gorm:"not null;size:100" json:"type"`
	StartTime           time.Time `gorm:"not null" json:"start_time"`
	EndTime             time.Time `gorm:"not null" json:"end_time"`
	Location            string    `gorm:"not null;size:255" json:"location"`
	RequiredSlots       int       `gorm:"default:1" json:"required_slots"`
	RequiresExperienced bool      `gorm:"default:false" json:"requires_experienced"`
	IsPublic            bool      `gorm:"default:false" json:"is_public"`
	Description         string    `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Event model.
func (Event) TableName() string {
	return "events"
}

// VolunteerInterest records a user volunteering for a specific event.
type VolunteerInterest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Event     Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for VolunteerInterest model.
func (VolunteerInterest) TableName() string {
	return "volunteer_interests"
}

// Availability is a user-declared time window. A user counts as available
// for an event only if some window marked available fully contains the
// event's time span.
type Availability struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Available bool      `gorm:"default:true" json:"available"`
	Note      string    `gorm:"type:text" json:"note"`
}

// TableName specifies the table name for Availability model.
func (Availability) TableName() string {
	return "availabilities"
}

// BackupPool is a standing last-minute substitution window, independent of
// the Availability entity.
type BackupPool struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"user_id"`
	StartTime          time.Time `gorm:"not null" json:"start_time"`
	EndTime            time.Time `gorm:"not null" json:"end_time"`
	PreferredLocations []string  `gorm:"serializer:json" json:"preferred_locations"`
	Active             bool      `gorm:"default:true" json:"active"`
}

// TableName specifies the table name for BackupPool model.
func (BackupPool) TableName() string {
	return "backup_pool"
}
