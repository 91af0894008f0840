package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lukasbehr/messecall/internal/models"
)

// GamificationRepository handles gamification database operations.
type GamificationRepository struct {
	db *DB
}

// NewGamificationRepository creates a new gamification repository.
func NewGamificationRepository(db *DB) *GamificationRepository {
	return &GamificationRepository{db: db}
}

// Create creates a gamification record.
func (r *GamificationRepository) Create(entry *models.Gamification) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create gamification record: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's gamification record.
func (r *GamificationRepository) GetByUserID(userID uint) (*models.Gamification, error) {
	var entry models.Gamification
	if err := r.db.Where("user_id = ?", userID).First(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to get gamification record for user %d: %w", userID, err)
	}
	return &entry, nil
}

// AwardPoints adds a point delta to a user's record, creating it when
// absent, and returns the updated record. Level is recomputed from the
// point total, the badge is added at most once, and the streak counter is
// incremented unconditionally. The row is locked for the duration of the
// transaction so concurrent awards serialize.
func (r *GamificationRepository) AwardPoints(userID uint, delta int, badge string) (*models.Gamification, error) {
	var entry models.Gamification

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ?", userID)
		// SQLite (used in tests) has no row-level locks; its transactions
		// already serialize writers.
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := query.First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry = models.Gamification{UserID: userID, Points: 0, Level: 1, Badges: []string{}, Streak: 0}
		} else if err != nil {
			return fmt.Errorf("failed to get gamification record for user %d: %w", userID, err)
		}

		entry.Points += delta
		entry.Level = level(entry.Points)
		if badge != "" && !entry.HasBadge(badge) {
			entry.Badges = append(entry.Badges, badge)
		}
		entry.Streak++

		if err := tx.Save(&entry).Error; err != nil {
			return fmt.Errorf("failed to save gamification record for user %d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// level derives the level from a point total: one level per 50 points,
// never below 1.
func level(points int) int {
	l := points/50 + 1
	if l < 1 {
		return 1
	}
	return l
}
