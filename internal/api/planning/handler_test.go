package planning

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/service/planner"
	"github.com/lukasbehr/messecall/pkg/logger"
)

type mockPlannerService struct {
	suggestFunc     func(ctx context.Context, eventID uint) ([]planner.Candidate, error)
	materializeFunc func(ctx context.Context, eventID uint) ([]*models.Assignment, error)
}

func (m *mockPlannerService) Suggest(ctx context.Context, eventID uint) ([]planner.Candidate, error) {
	return m.suggestFunc(ctx, eventID)
}

func (m *mockPlannerService) Materialize(ctx context.Context, eventID uint) ([]*models.Assignment, error) {
	return m.materializeFunc(ctx, eventID)
}

type mockSwapService struct {
	createSwapFunc func(ctx context.Context, assignmentID uint, requestedUserIDs []int64) (*models.SwapRequest, error)
	acceptSwapFunc func(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error)
	approveFunc    func(ctx context.Context, assignmentID uint) (*models.Assignment, error)
	backupFunc     func(ctx context.Context, start, end time.Time) ([]uint, error)
}

func (m *mockSwapService) CreateSwapRequest(ctx context.Context, assignmentID uint, requestedUserIDs []int64) (*models.SwapRequest, error) {
	return m.createSwapFunc(ctx, assignmentID, requestedUserIDs)
}

func (m *mockSwapService) AcceptSwapRequest(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error) {
	return m.acceptSwapFunc(ctx, swapID, replacementUserID)
}

func (m *mockSwapService) ApproveAssignment(ctx context.Context, assignmentID uint) (*models.Assignment, error) {
	return m.approveFunc(ctx, assignmentID)
}

func (m *mockSwapService) BackupCandidates(ctx context.Context, start, end time.Time) ([]uint, error) {
	return m.backupFunc(ctx, start, end)
}

func setupTestRouter(plannerService PlannerService, swapService SwapService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandlerWithInterfaces(plannerService, swapService, logger.New("error", "json", "stdout"))

	router := gin.New()
	router.POST("/api/v1/events/:id/suggestions", handler.SuggestPlan)
	router.POST("/api/v1/events/:id/proposals", handler.ProposePlan)
	router.POST("/api/v1/assignments/:id/approve", handler.ApproveAssignment)
	router.POST("/api/v1/swap-requests", handler.CreateSwapRequest)
	router.POST("/api/v1/swap-requests/:id/accept", handler.AcceptSwapRequest)
	router.GET("/api/v1/backup-pool/suggestions", handler.BackupSuggestions)
	return router
}

func TestSuggestPlan(t *testing.T) {
	plannerService := &mockPlannerService{
		suggestFunc: func(ctx context.Context, eventID uint) ([]planner.Candidate, error) {
			assert.Equal(t, uint(7), eventID)
			return []planner.Candidate{
				{UserID: 2, Score: 0, Reason: "Fairness basierend auf bisherigen Einsätzen"},
				{UserID: 1, Score: 3, Reason: "Fairness basierend auf bisherigen Einsätzen"},
			}, nil
		},
	}

	router := setupTestRouter(plannerService, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/events/7/suggestions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		EventID uint                `json:"event_id"`
		Items   []planner.Candidate `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint(7), response.EventID)
	require.Len(t, response.Items, 2)
	assert.Equal(t, uint(2), response.Items[0].UserID)
}

func TestSuggestPlan_EventNotFound(t *testing.T) {
	plannerService := &mockPlannerService{
		suggestFunc: func(ctx context.Context, eventID uint) ([]planner.Candidate, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	router := setupTestRouter(plannerService, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/events/99/suggestions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestPlan_InvalidID(t *testing.T) {
	router := setupTestRouter(&mockPlannerService{}, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/events/abc/suggestions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposePlan(t *testing.T) {
	plannerService := &mockPlannerService{
		materializeFunc: func(ctx context.Context, eventID uint) ([]*models.Assignment, error) {
			return []*models.Assignment{
				{ID: 1, EventID: eventID, UserID: 2, Status: models.AssignmentStatusProposed, Source: models.AssignmentSourceAlgorithm},
			}, nil
		},
	}

	router := setupTestRouter(plannerService, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/events/7/proposals", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var assignments []models.Assignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignments))
	require.Len(t, assignments, 1)
	assert.Equal(t, models.AssignmentStatusProposed, assignments[0].Status)
}

func TestApproveAssignment(t *testing.T) {
	swapService := &mockSwapService{
		approveFunc: func(ctx context.Context, assignmentID uint) (*models.Assignment, error) {
			return &models.Assignment{ID: assignmentID, Status: models.AssignmentStatusApproved}, nil
		},
	}

	router := setupTestRouter(&mockPlannerService{}, swapService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/assignments/5/approve", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		AssignmentID uint   `json:"assignment_id"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint(5), response.AssignmentID)
	assert.Equal(t, models.AssignmentStatusApproved, response.Status)
}

func TestCreateSwapRequest(t *testing.T) {
	swapService := &mockSwapService{
		createSwapFunc: func(ctx context.Context, assignmentID uint, requestedUserIDs []int64) (*models.SwapRequest, error) {
			assert.Equal(t, uint(5), assignmentID)
			assert.Equal(t, []int64{10, 11}, requestedUserIDs)
			return &models.SwapRequest{ID: 42, AssignmentID: assignmentID, Status: models.SwapStatusOpen, RequestedUserIDs: requestedUserIDs}, nil
		},
	}

	router := setupTestRouter(&mockPlannerService{}, swapService)

	body, _ := json.Marshal(map[string]interface{}{
		"assignment_id":      5,
		"requested_user_ids": []int64{10, 11},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/swap-requests", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var swap models.SwapRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &swap))
	assert.Equal(t, models.SwapStatusOpen, swap.Status)
}

func TestCreateSwapRequest_MissingAssignmentID(t *testing.T) {
	router := setupTestRouter(&mockPlannerService{}, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/swap-requests", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcceptSwapRequest(t *testing.T) {
	swapService := &mockSwapService{
		acceptSwapFunc: func(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error) {
			assert.Equal(t, uint(42), swapID)
			assert.Equal(t, uint(10), replacementUserID)
			return &models.Assignment{ID: 5, UserID: replacementUserID, Status: models.AssignmentStatusSwapped}, nil
		},
	}

	router := setupTestRouter(&mockPlannerService{}, swapService)

	body, _ := json.Marshal(map[string]interface{}{"replacement_user_id": 10})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/swap-requests/42/accept", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var assignment models.Assignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignment))
	assert.Equal(t, models.AssignmentStatusSwapped, assignment.Status)
	assert.Equal(t, uint(10), assignment.UserID)
}

func TestAcceptSwapRequest_NotFound(t *testing.T) {
	swapService := &mockSwapService{
		acceptSwapFunc: func(ctx context.Context, swapID, replacementUserID uint) (*models.Assignment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	router := setupTestRouter(&mockPlannerService{}, swapService)

	body, _ := json.Marshal(map[string]interface{}{"replacement_user_id": 10})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/swap-requests/99/accept", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBackupSuggestions(t *testing.T) {
	swapService := &mockSwapService{
		backupFunc: func(ctx context.Context, start, end time.Time) ([]uint, error) {
			assert.Equal(t, time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC), start.UTC())
			return []uint{1, 3}, nil
		},
	}

	router := setupTestRouter(&mockPlannerService{}, swapService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/backup-pool/suggestions?start_time=2024-05-12T09:00:00Z&end_time=2024-05-12T10:00:00Z", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Candidates []uint `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, []uint{1, 3}, response.Candidates)
}

func TestBackupSuggestions_MissingWindow(t *testing.T) {
	router := setupTestRouter(&mockPlannerService{}, &mockSwapService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/backup-pool/suggestions?start_time=2024-05-12T09:00:00Z", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
