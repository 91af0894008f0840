package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lukasbehr/messecall/internal/models"
)

// ChurchRepository handles church-related database operations.
type ChurchRepository struct {
	db *DB
}

// NewChurchRepository creates a new church repository.
func NewChurchRepository(db *DB) *ChurchRepository {
	return &ChurchRepository{db: db}
}

// Create creates a new church. A public token for the calendar export is
// generated when none is supplied.
func (r *ChurchRepository) Create(church *models.Church) error {
	if church.PublicToken == "" {
		church.PublicToken = uuid.NewString()
	}
	if err := r.db.Create(church).Error; err != nil {
		return fmt.Errorf("failed to create church: %w", err)
	}
	return nil
}

// GetByID retrieves a church by ID.
func (r *ChurchRepository) GetByID(id uint) (*models.Church, error) {
	var church models.Church
	if err := r.db.First(&church, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get church by id %d: %w", id, err)
	}
	return &church, nil
}

// List retrieves all churches.
func (r *ChurchRepository) List() ([]models.Church, error) {
	var churches []models.Church
	if err := r.db.Order("id ASC").Find(&churches).Error; err != nil {
		return nil, fmt.Errorf("failed to list churches: %w", err)
	}
	return churches, nil
}
