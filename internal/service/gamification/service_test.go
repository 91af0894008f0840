package gamification

import (
	"context"
	"errors"
	"testing"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/pkg/logger"
)

type mockGamificationRepo struct {
	entry    *models.Gamification
	awardErr error
	lastCall struct {
		userID uint
		delta  int
		badge  string
	}
}

func (m *mockGamificationRepo) AwardPoints(userID uint, delta int, badge string) (*models.Gamification, error) {
	m.lastCall.userID = userID
	m.lastCall.delta = delta
	m.lastCall.badge = badge
	if m.awardErr != nil {
		return nil, m.awardErr
	}
	return m.entry, nil
}

func (m *mockGamificationRepo) GetByUserID(userID uint) (*models.Gamification, error) {
	return m.entry, nil
}

func TestAward(t *testing.T) {
	repo := &mockGamificationRepo{entry: &models.Gamification{UserID: 9, Points: 60, Level: 2, Badges: []string{"retter"}, Streak: 3}}
	service := NewServiceWithInterfaces(repo, logger.New("error", "json", "stdout"))

	entry, err := service.Award(context.Background(), 9, 10, "retter")
	if err != nil {
		t.Fatalf("Award failed: %v", err)
	}

	if repo.lastCall.userID != 9 || repo.lastCall.delta != 10 || repo.lastCall.badge != "retter" {
		t.Errorf("Unexpected award call: %+v", repo.lastCall)
	}
	if entry.Level != 2 {
		t.Errorf("Expected level 2, got %d", entry.Level)
	}
}

func TestAward_RepositoryError(t *testing.T) {
	repo := &mockGamificationRepo{awardErr: errors.New("database unavailable")}
	service := NewServiceWithInterfaces(repo, logger.New("error", "json", "stdout"))

	if _, err := service.Award(context.Background(), 9, 10, ""); err == nil {
		t.Error("Expected error from repository")
	}
}

func TestGetByUser(t *testing.T) {
	repo := &mockGamificationRepo{entry: &models.Gamification{UserID: 9, Points: 5, Level: 1}}
	service := NewServiceWithInterfaces(repo, logger.New("error", "json", "stdout"))

	entry, err := service.GetByUser(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if entry.UserID != 9 {
		t.Errorf("Expected user 9, got %d", entry.UserID)
	}
}
