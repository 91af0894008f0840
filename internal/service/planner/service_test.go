package planner

import (
	"context"
	"testing"
	"time"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/pkg/logger"
)

type mockEventRepo struct {
	event      *models.Event
	volunteers map[uint]bool
	getErr     error
}

func (m *mockEventRepo) GetByID(id uint) (*models.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.event, nil
}

func (m *mockEventRepo) VolunteerUserIDs(eventID uint) (map[uint]bool, error) {
	if m.volunteers == nil {
		return map[uint]bool{}, nil
	}
	return m.volunteers, nil
}

type mockUserRepo struct {
	users       []models.User
	preferences map[uint]*models.Preference
}

func (m *mockUserRepo) ListAssignable(churchID uint) ([]models.User, error) {
	return m.users, nil
}

func (m *mockUserRepo) FindPreference(userID uint) (*models.Preference, error) {
	return m.preferences[userID], nil
}

type mockAvailabilityRepo struct {
	available map[uint]bool
}

func (m *mockAvailabilityRepo) AvailableUserIDs(start, end time.Time) (map[uint]bool, error) {
	return m.available, nil
}

type mockAssignmentRepo struct {
	counts  map[uint]int
	created []*models.Assignment
}

func (m *mockAssignmentRepo) CountByUserForChurch(churchID uint) (map[uint]int, error) {
	if m.counts == nil {
		return map[uint]int{}, nil
	}
	return m.counts, nil
}

func (m *mockAssignmentRepo) CreateBatch(assignments []*models.Assignment) error {
	m.created = assignments
	return nil
}

func testEvent(slots int, requiresExperienced bool) *models.Event {
	start := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)
	return &models.Event{
		ID:                  7,
		ChurchID:            1,
		Type:                "messe",
		StartTime:           start,
		EndTime:             start.Add(time.Hour),
		Location:            "Hauptkirche",
		RequiredSlots:       slots,
		RequiresExperienced: requiresExperienced,
	}
}

func testUser(id uint, experience int) models.User {
	return models.User{
		ID:              id,
		Role:            models.RoleServer,
		ChurchID:        1,
		ExperienceLevel: experience,
		Active:          true,
	}
}

func newTestService(events *mockEventRepo, users *mockUserRepo, availability *mockAvailabilityRepo, assignments *mockAssignmentRepo) *Service {
	return NewServiceWithInterfaces(events, users, availability, assignments, logger.New("error", "json", "stdout"))
}

func TestSuggest_EligibilityFilter(t *testing.T) {
	events := &mockEventRepo{event: testEvent(10, true)}
	users := &mockUserRepo{users: []models.User{
		testUser(1, 3), // eligible
		testUser(2, 3), // not available
		testUser(3, 1), // lacks experience
	}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true, 3: true}}
	assignments := &mockAssignmentRepo{}

	service := newTestService(events, users, availability, assignments)

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].UserID != 1 {
		t.Errorf("Expected user 1, got %d", candidates[0].UserID)
	}
}

func TestSuggest_ExperienceRequirementOnlyWhenFlagged(t *testing.T) {
	events := &mockEventRepo{event: testEvent(10, false)}
	users := &mockUserRepo{users: []models.User{testUser(3, 1)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{3: true}}

	service := newTestService(events, users, availability, &mockAssignmentRepo{})

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 1 || candidates[0].UserID != 3 {
		t.Errorf("Expected inexperienced user to be eligible without the flag, got %v", candidates)
	}
}

func TestSuggest_RanksByHistoricalLoad(t *testing.T) {
	events := &mockEventRepo{event: testEvent(10, false)}
	users := &mockUserRepo{users: []models.User{testUser(1, 2), testUser(2, 2), testUser(3, 2)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true, 2: true, 3: true}}
	assignments := &mockAssignmentRepo{counts: map[uint]int{1: 5, 2: 0, 3: 2}}

	service := newTestService(events, users, availability, assignments)

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}
	expectedOrder := []uint{2, 3, 1}
	for i, userID := range expectedOrder {
		if candidates[i].UserID != userID {
			t.Errorf("Position %d: expected user %d, got %d", i, userID, candidates[i].UserID)
		}
	}
}

func TestSuggest_EqualScoresKeepUserIDOrder(t *testing.T) {
	events := &mockEventRepo{event: testEvent(10, false)}
	users := &mockUserRepo{users: []models.User{testUser(11, 2), testUser(12, 2), testUser(13, 2)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{11: true, 12: true, 13: true}}

	service := newTestService(events, users, availability, &mockAssignmentRepo{})

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	for i, userID := range []uint{11, 12, 13} {
		if candidates[i].UserID != userID {
			t.Errorf("Position %d: expected user %d, got %d", i, userID, candidates[i].UserID)
		}
	}
}

func TestSuggest_TruncatesToRequiredSlots(t *testing.T) {
	events := &mockEventRepo{event: testEvent(2, false)}
	users := &mockUserRepo{users: []models.User{testUser(1, 2), testUser(2, 2), testUser(3, 2), testUser(4, 2)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true, 2: true, 3: true, 4: true}}

	service := newTestService(events, users, availability, &mockAssignmentRepo{})

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 2 {
		t.Errorf("Expected 2 candidates for 2 slots, got %d", len(candidates))
	}
}

func TestSuggest_FewerCandidatesThanSlots(t *testing.T) {
	events := &mockEventRepo{event: testEvent(5, false)}
	users := &mockUserRepo{users: []models.User{testUser(1, 2)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true}}

	service := newTestService(events, users, availability, &mockAssignmentRepo{})

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 1 {
		t.Errorf("Expected 1 candidate for an underfilled event, got %d", len(candidates))
	}
}

func TestSuggest_PreferenceAndVolunteerAdjustments(t *testing.T) {
	events := &mockEventRepo{
		event:      testEvent(10, false),
		volunteers: map[uint]bool{1: true},
	}
	users := &mockUserRepo{
		users: []models.User{testUser(1, 2)},
		preferences: map[uint]*models.Preference{
			1: {
				UserID:             1,
				PreferredLocations: []string{"Hauptkirche"},
				FavoriteEventTypes: []string{"messe"},
				PartnerUserIDs:     []int64{2},
			},
		},
	}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true, 2: true}}
	assignments := &mockAssignmentRepo{counts: map[uint]int{1: 4}}

	service := newTestService(events, users, availability, assignments)

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(candidates))
	}

	// 4 - 1.0 (location) - 0.5 (type) - 0.25 (partner) - 1.5 (volunteer)
	expected := 0.75
	if candidates[0].Score != expected {
		t.Errorf("Expected score %.2f, got %.2f", expected, candidates[0].Score)
	}

	expectedReason := "Fairness basierend auf bisherigen Einsätzen; Bevorzugter Ort; Lieblingsgottesdienst; Wunschpartner verfügbar; Freiwillige Zusage"
	if candidates[0].Reason != expectedReason {
		t.Errorf("Expected reason %q, got %q", expectedReason, candidates[0].Reason)
	}
}

func TestSuggest_PartnerBonusNeedsAvailablePartner(t *testing.T) {
	events := &mockEventRepo{event: testEvent(10, false)}
	users := &mockUserRepo{
		users: []models.User{testUser(1, 2)},
		preferences: map[uint]*models.Preference{
			1: {UserID: 1, PartnerUserIDs: []int64{9}},
		},
	}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true}}
	assignments := &mockAssignmentRepo{counts: map[uint]int{1: 2}}

	service := newTestService(events, users, availability, assignments)

	candidates, err := service.Suggest(context.Background(), 7)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}

	if candidates[0].Score != 2 {
		t.Errorf("Expected no partner discount when partner is unavailable, got score %.2f", candidates[0].Score)
	}
	if candidates[0].Reason != reasonFairness {
		t.Errorf("Expected bare fairness reason, got %q", candidates[0].Reason)
	}
}

func TestMaterialize_CreatesProposedAssignments(t *testing.T) {
	events := &mockEventRepo{event: testEvent(2, false)}
	users := &mockUserRepo{users: []models.User{testUser(1, 2), testUser(2, 2), testUser(3, 2)}}
	availability := &mockAvailabilityRepo{available: map[uint]bool{1: true, 2: true, 3: true}}
	assignments := &mockAssignmentRepo{counts: map[uint]int{1: 3}}

	service := newTestService(events, users, availability, assignments)

	created, err := service.Materialize(context.Background(), 7)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(created))
	}
	if len(assignments.created) != 2 {
		t.Fatalf("Expected 2 persisted assignments, got %d", len(assignments.created))
	}
	for _, assignment := range created {
		if assignment.EventID != 7 {
			t.Errorf("Expected event 7, got %d", assignment.EventID)
		}
		if assignment.Status != models.AssignmentStatusProposed {
			t.Errorf("Expected status %q, got %q", models.AssignmentStatusProposed, assignment.Status)
		}
		if assignment.Source != models.AssignmentSourceAlgorithm {
			t.Errorf("Expected source %q, got %q", models.AssignmentSourceAlgorithm, assignment.Source)
		}
	}
	// User 1 carries the historical load and falls out of the two slots.
	if created[0].UserID != 2 || created[1].UserID != 3 {
		t.Errorf("Expected users [2 3], got [%d %d]", created[0].UserID, created[1].UserID)
	}
}
