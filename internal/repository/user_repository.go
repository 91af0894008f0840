package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/internal/models"
)

// UserRepository handles user and preference database operations.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user.
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by id %d: %w", id, err)
	}
	return &user, nil
}

// Update updates a user.
func (r *UserRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// List retrieves all users.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListAssignable retrieves the active servers of a church in ID order.
// The deterministic order matters: the suggestion ranking breaks score
// ties by enumeration order.
func (r *UserRepository) ListAssignable(churchID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("church_id = ? AND active = ? AND role = ?", churchID, true, models.RoleServer).
		Order("id ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable users for church %d: %w", churchID, err)
	}
	return users, nil
}

// CreatePreference creates a preference record for a user.
func (r *UserRepository) CreatePreference(pref *models.Preference) error {
	if err := r.db.Create(pref).Error; err != nil {
		return fmt.Errorf("failed to create preference: %w", err)
	}
	return nil
}

// FindPreference retrieves a user's preference record, or nil when the
// user has never stated preferences. Absence is not an error here.
func (r *UserRepository) FindPreference(userID uint) (*models.Preference, error) {
	var pref models.Preference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference for user %d: %w", userID, err)
	}
	return &pref, nil
}
