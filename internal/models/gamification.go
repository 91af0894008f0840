package models

import (
	"time"
)

// NotificationStatus constants.
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
)

// Gamification accumulates points, a derived level, unique badges and a
// streak counter for one user. Level is always recomputed from points by
// the award operation; badges behave as a set.
type Gamification struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	UserID uint     `gorm:"not null;uniqueIndex" json:"user_id"`
	Points int      `gorm:"default:0" json:"points"`
	Level  int      `gorm:"default:1" json:"level"`
	Badges []string `gorm:"serializer:json" json:"badges"`
	Streak int      `gorm:"default:0" json:"streak"`
}

// TableName specifies the table name for Gamification model.
func (Gamification) TableName() string {
	return "gamification"
}

// HasBadge reports whether the badge is already in the set.
func (g *Gamification) HasBadge(badge string) bool {
	for _, b := range g.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

// Notification is a user-facing message produced as a side effect of swap
// acceptance and assignment approval.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	Status    string    `gorm:"size:50;default:pending;index" json:"status"` // 'pending' or 'sent'
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Notification model.
func (Notification) TableName() string {
	return "notifications"
}
