package models

import (
	"time"
)

// AssignmentStatus constants.
const (
	AssignmentStatusProposed = "proposed"
	AssignmentStatusApproved = "approved"
	AssignmentStatusSwapped  = "swapped"
)

// AssignmentSource constants.
const (
	AssignmentSourceAlgorithm = "algorithm"
	AssignmentSourceManual    = "manual"
)

// SwapStatus constants.
const (
	SwapStatusOpen     = "open"
	SwapStatusAccepted = "accepted"
	SwapStatusDeclined = "declined"
)

// Assignment represents a user's scheduled responsibility for one event.
// The assigned user can change over its lifetime via a swap while the
// assignment itself persists.
type Assignment struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EventID    uint       `gorm:"not null;index" json:"event_id"`
	Event      Event      `gorm:"foreignKey:EventID" json:"event,omitempty"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status     string     `gorm:"size:50;default:proposed;index" json:"status"` // 'proposed', 'approved', 'swapped'
	Source     string     `gorm:"size:50;default:algorithm" json:"source"`      // 'algorithm' or 'manual'
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at"`
}

// TableName specifies the table name for Assignment model.
func (Assignment) TableName() string {
	return "assignments"
}

// SwapRequest wraps exactly one assignment and tracks its reassignment to
// a replacement user. Terminal once accepted or declined.
type SwapRequest struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	AssignmentID      uint       `gorm:"not null;index" json:"assignment_id"`
	Assignment        Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Status            string     `gorm:"size:50;default:open;index" json:"status"` // 'open', 'accepted', 'declined'
	RequestedUserIDs  []int64    `gorm:"serializer:json" json:"requested_user_ids"`
	ReplacementUserID *uint      `json:"replacement_user_id"`
	CreatedAt         time.Time  `json:"created_at"`
}

// TableName specifies the table name for SwapRequest model.
func (SwapRequest) TableName() string {
	return "swap_requests"
}
