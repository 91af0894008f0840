package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/internal/models"
)

// SwapRepository handles swap-request database operations.
type SwapRepository struct {
	db *DB
}

// NewSwapRepository creates a new swap repository.
func NewSwapRepository(db *DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// Create creates a new swap request.
func (r *SwapRepository) Create(swap *models.SwapRequest) error {
	if err := r.db.Create(swap).Error; err != nil {
		return fmt.Errorf("failed to create swap request: %w", err)
	}
	return nil
}

// GetByID retrieves a swap request by ID.
func (r *SwapRepository) GetByID(id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.First(&swap, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get swap request by id %d: %w", id, err)
	}
	return &swap, nil
}

// Accept reassigns the wrapped assignment to the replacement user and
// resolves the swap request, atomically. The four writes (assignee,
// assignment status, swap status, recorded replacement) are either all
// visible or none.
func (r *SwapRepository) Accept(swapID, replacementUserID uint) (*models.Assignment, error) {
	var assignment models.Assignment

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var swap models.SwapRequest
		if err := tx.First(&swap, swapID).Error; err != nil {
			return fmt.Errorf("failed to get swap request by id %d: %w", swapID, err)
		}
		if err := tx.First(&assignment, swap.AssignmentID).Error; err != nil {
			return fmt.Errorf("failed to get assignment by id %d: %w", swap.AssignmentID, err)
		}

		assignment.UserID = replacementUserID
		assignment.Status = models.AssignmentStatusSwapped
		if err := tx.Save(&assignment).Error; err != nil {
			return fmt.Errorf("failed to update assignment %d: %w", assignment.ID, err)
		}

		swap.Status = models.SwapStatusAccepted
		swap.ReplacementUserID = &replacementUserID
		if err := tx.Save(&swap).Error; err != nil {
			return fmt.Errorf("failed to update swap request %d: %w", swap.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
