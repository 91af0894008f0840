package repository

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/internal/models"
)

// setupSwapTestDB creates an in-memory SQLite database for testing.
func setupSwapTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Church{},
		&models.User{},
		&models.Event{},
		&models.Assignment{},
		&models.SwapRequest{},
	)
	if err != nil {
		t.Fatalf("Failed to auto-migrate tables: %v", err)
	}

	return &DB{db}
}

// createSwapFixture creates an event with one proposed assignment and an
// open swap request wrapping it.
func createSwapFixture(t *testing.T, db *DB) (*models.Assignment, *models.SwapRequest) {
	t.Helper()

	event := &models.Event{
		ChurchID:      1,
		Type:          "Sonntagsmesse",
		StartTime:     time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2024, 1, 7, 10, 0, 0, 0, time.UTC),
		Location:      "Hauptschiff",
		RequiredSlots: 2,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}

	assignment := &models.Assignment{
		EventID: event.ID,
		UserID:  10,
		Status:  models.AssignmentStatusProposed,
		Source:  models.AssignmentSourceAlgorithm,
	}
	if err := db.Create(assignment).Error; err != nil {
		t.Fatalf("Failed to create assignment: %v", err)
	}

	swap := &models.SwapRequest{
		AssignmentID:     assignment.ID,
		Status:           models.SwapStatusOpen,
		RequestedUserIDs: []int64{20, 21},
	}
	if err := db.Create(swap).Error; err != nil {
		t.Fatalf("Failed to create swap request: %v", err)
	}

	return assignment, swap
}

func TestSwapRepository_Accept_Atomic(t *testing.T) {
	db := setupSwapTestDB(t)
	repo := NewSwapRepository(db)
	assignment, swap := createSwapFixture(t, db)

	updated, err := repo.Accept(swap.ID, 20)
	if err != nil {
		t.Fatalf("Accept failed: %v", err)
	}

	// All four state changes must be visible together.
	if updated.UserID != 20 {
		t.Errorf("Expected assignee 20, got %d", updated.UserID)
	}
	if updated.Status != models.AssignmentStatusSwapped {
		t.Errorf("Expected assignment status swapped, got %s", updated.Status)
	}

	var storedSwap models.SwapRequest
	if err := db.First(&storedSwap, swap.ID).Error; err != nil {
		t.Fatalf("Failed to reload swap request: %v", err)
	}
	if storedSwap.Status != models.SwapStatusAccepted {
		t.Errorf("Expected swap status accepted, got %s", storedSwap.Status)
	}
	if storedSwap.ReplacementUserID == nil || *storedSwap.ReplacementUserID != 20 {
		t.Errorf("Expected recorded replacement 20, got %v", storedSwap.ReplacementUserID)
	}

	var storedAssignment models.Assignment
	if err := db.First(&storedAssignment, assignment.ID).Error; err != nil {
		t.Fatalf("Failed to reload assignment: %v", err)
	}
	if storedAssignment.UserID != 20 || storedAssignment.Status != models.AssignmentStatusSwapped {
		t.Errorf("Persisted assignment out of sync: user %d status %s", storedAssignment.UserID, storedAssignment.Status)
	}
}

func TestSwapRepository_Accept_NotFound(t *testing.T) {
	db := setupSwapTestDB(t)
	repo := NewSwapRepository(db)

	_, err := repo.Accept(999, 20)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected record-not-found, got %v", err)
	}
}

func TestSwapRepository_Accept_MissingAssignmentAborts(t *testing.T) {
	db := setupSwapTestDB(t)
	repo := NewSwapRepository(db)

	// Swap request pointing at a non-existent assignment.
	swap := &models.SwapRequest{AssignmentID: 999, Status: models.SwapStatusOpen}
	if err := db.Create(swap).Error; err != nil {
		t.Fatalf("Failed to create swap request: %v", err)
	}

	_, err := repo.Accept(swap.ID, 20)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected record-not-found, got %v", err)
	}

	// The transaction must have rolled back: swap request untouched.
	var storedSwap models.SwapRequest
	if err := db.First(&storedSwap, swap.ID).Error; err != nil {
		t.Fatalf("Failed to reload swap request: %v", err)
	}
	if storedSwap.Status != models.SwapStatusOpen {
		t.Errorf("Expected swap to stay open, got %s", storedSwap.Status)
	}
	if storedSwap.ReplacementUserID != nil {
		t.Errorf("Expected no recorded replacement, got %v", storedSwap.ReplacementUserID)
	}
}

func TestSwapRepository_Create_And_GetByID(t *testing.T) {
	db := setupSwapTestDB(t)
	repo := NewSwapRepository(db)
	assignment, _ := createSwapFixture(t, db)

	swap := &models.SwapRequest{
		AssignmentID:     assignment.ID,
		Status:           models.SwapStatusOpen,
		RequestedUserIDs: []int64{30},
	}
	if err := repo.Create(swap); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetByID(swap.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.AssignmentID != assignment.ID {
		t.Errorf("Expected assignment %d, got %d", assignment.ID, stored.AssignmentID)
	}
	if len(stored.RequestedUserIDs) != 1 || stored.RequestedUserIDs[0] != 30 {
		t.Errorf("Expected requested users [30], got %v", stored.RequestedUserIDs)
	}
}
