// Package models defines domain models for the MesseCall rostering system.
package models

import (
	"time"
)

// Church represents a congregation that owns users and events.
type Church struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Address     string    `gorm:"not null;size:255" json:"address"`
	Timezone    string    `gorm:"size:64;default:Europe/Berlin" json:"timezone"`
	PublicToken string    `gorm:"column:public_token;size:64" json:"public_token"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Church model.
func (Church) TableName() string {
	return "churches"
}
