package repository

import (
	"fmt"
	"time"

	"github.com/lukasbehr/messecall/internal/models"
)

// AssignmentRepository handles assignment database operations.
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment.
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// CreateBatch persists a set of assignments in one transaction.
func (r *AssignmentRepository) CreateBatch(assignments []*models.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	if err := r.db.Create(assignments).Error; err != nil {
		return fmt.Errorf("failed to create assignments: %w", err)
	}
	return nil
}

// GetByID retrieves an assignment by ID.
func (r *AssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignment by id %d: %w", id, err)
	}
	return &assignment, nil
}

// List retrieves all assignments.
func (r *AssignmentRepository) List() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CountByUserForChurch returns, per user, the number of assignments across
// all events of a church. This is the historical-load input to the
// fairness score.
func (r *AssignmentRepository) CountByUserForChurch(churchID uint) (map[uint]int, error) {
	var assignments []models.Assignment
	err := r.db.
		Joins("JOIN events ON events.id = assignments.event_id").
		Where("events.church_id = ?", churchID).
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments for church %d: %w", churchID, err)
	}
	counts := make(map[uint]int)
	for _, assignment := range assignments {
		counts[assignment.UserID]++
	}
	return counts, nil
}

// Approve marks an assignment approved and stamps the approval time.
// Prior state is intentionally not checked; approving an already approved
// or swapped assignment overwrites its status.
func (r *AssignmentRepository) Approve(assignment *models.Assignment, at time.Time) error {
	assignment.Status = models.AssignmentStatusApproved
	assignment.ApprovedAt = &at
	if err := r.db.Save(assignment).Error; err != nil {
		return fmt.Errorf("failed to approve assignment %d: %w", assignment.ID, err)
	}
	return nil
}
