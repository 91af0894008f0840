package models

// Role values for User.Role. Only servers are eligible for assignment.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleServer      = "server"
)

// User represents a person belonging to a church.
type User struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null;size:255" json:"name"`
	Email           string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Role            string `gorm:"not null;size:50" json:"role"` // 'admin', 'coordinator' or 'server'
	ChurchID        uint   `gorm:"not null;index" json:"church_id"`
	Church          Church `gorm:"foreignKey:ChurchID" json:"church,omitempty"`
	ExperienceLevel int    `gorm:"default:1" json:"experience_level"`
	Active          bool   `gorm:"default:true" json:"active"`
}

// TableName specifies the table name for User model.
func (User) TableName() string {
	return "users"
}

// Preference holds a user's advisory scheduling preferences. At most one
// record per user; every list is a typed slice stored as a JSON column.
type Preference struct {
	ID                  uint     `gorm:"primaryKey" json:"id"`
	UserID              uint     `gorm:"not null;index" json:"user_id"`
	PreferredWeekdays   []string `gorm:"serializer:json" json:"preferred_weekdays"`
	PreferredTimeRanges []string `gorm:"serializer:json" json:"preferred_time_ranges"`
	PreferredLocations  []string `gorm:"serializer:json" json:"preferred_locations"`
	PartnerUserIDs      []int64  `gorm:"serializer:json" json:"partner_user_ids"`
	FavoriteEventTypes  []string `gorm:"serializer:json" json:"favorite_event_types"`
}

// TableName specifies the table name for Preference model.
func (Preference) TableName() string {
	return "preferences"
}
