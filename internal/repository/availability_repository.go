package repository

import (
	"fmt"
	"time"

	"github.com/lukasbehr/messecall/internal/models"
)

// AvailabilityRepository handles availability-window and backup-pool
// database operations.
type AvailabilityRepository struct {
	db *DB
}

// NewAvailabilityRepository creates a new availability repository.
func NewAvailabilityRepository(db *DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create creates a new availability window.
func (r *AvailabilityRepository) Create(availability *models.Availability) error {
	if err := r.db.Create(availability).Error; err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return nil
}

// AvailableUserIDs returns the set of users who have at least one window
// marked available that fully contains [start, end].
func (r *AvailabilityRepository) AvailableUserIDs(start, end time.Time) (map[uint]bool, error) {
	var windows []models.Availability
	err := r.db.
		Where("start_time <= ? AND end_time >= ? AND available = ?", start, end, true).
		Find(&windows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query availability windows: %w", err)
	}
	available := make(map[uint]bool, len(windows))
	for _, window := range windows {
		available[window.UserID] = true
	}
	return available, nil
}

// CreateBackupEntry creates a new backup-pool entry.
func (r *AvailabilityRepository) CreateBackupEntry(entry *models.BackupPool) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create backup pool entry: %w", err)
	}
	return nil
}

// ActiveBackupEntriesCovering returns the active backup-pool entries whose
// window fully contains [start, end], in pool order.
func (r *AvailabilityRepository) ActiveBackupEntriesCovering(start, end time.Time) ([]models.BackupPool, error) {
	var entries []models.BackupPool
	err := r.db.
		Where("active = ? AND start_time <= ? AND end_time >= ?", true, start, end).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query backup pool: %w", err)
	}
	return entries, nil
}
