package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/runwayhq/runway-backend/internal/requestdata"
	"github.com/runwayhq/runway-backend/internal/services"
	"github.com/runwayhq/runway-backend/internal/validation"
)

type stubPlanner struct {
	result *services.PlanResult
	err    error
	calls  int
}

func (s *stubPlanner) GenerateTasks(ctx context.Context, eventID uuid.UUID) (*services.PlanResult, error) {
	s.calls++
	return s.result, s.err
}

func performAgentRequest(t *testing.T, handler *AgentHandler, userID uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/agents/event-planner", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		ctx := requestdata.WithRequestData(req.Context(), &requestdata.RequestData{
			UserID:         userID,
			OrganizationID: uuid.New(),
		})
		req = req.WithContext(ctx)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler.GenerateEventTasks(c)
	return w
}

func newAgentHandler(planner services.PlannerService) *AgentHandler {
	return NewAgentHandler(planner, validation.NewRateLimiter(validation.NewMemoryCounterStore()))
}

func TestAgentHandler_Success(t *testing.T) {
	planner := &stubPlanner{result: &services.PlanResult{
		TasksCreated:        120,
		CriticalPath:        []string{"Book venue"},
		EstimatedTotalHours: 360,
		DependenciesCreated: 119,
		LatencyMS:           1234,
		CostUSD:             0.42,
	}}
	w := performAgentRequest(t, newAgentHandler(planner), uuid.New(), gin.H{"event_id": uuid.New().String()})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TasksCreated        int     `json:"tasks_created"`
			DependenciesCreated int     `json:"dependencies_created"`
			EstimatedTotal      float64 `json:"estimated_total_hours"`
		} `json:"data"`
		Meta struct {
			LatencyMS int64   `json:"latency_ms"`
			CostUSD   float64 `json:"cost_usd"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 120, resp.Data.TasksCreated)
	require.Equal(t, 119, resp.Data.DependenciesCreated)
	require.Equal(t, int64(1234), resp.Meta.LatencyMS)
}

func TestAgentHandler_MissingEventID(t *testing.T) {
	planner := &stubPlanner{}
	w := performAgentRequest(t, newAgentHandler(planner), uuid.New(), gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, planner.calls)
}

func TestAgentHandler_InvalidEventID(t *testing.T) {
	planner := &stubPlanner{}
	w := performAgentRequest(t, newAgentHandler(planner), uuid.New(), gin.H{"event_id": "not-a-uuid"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, planner.calls)
}

func TestAgentHandler_NoSession(t *testing.T) {
	planner := &stubPlanner{}
	w := performAgentRequest(t, newAgentHandler(planner), uuid.Nil, gin.H{"event_id": uuid.New().String()})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, planner.calls)
}

func TestAgentHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrEventNotFound, http.StatusNotFound},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrPlannerBusy, http.StatusConflict},
		{services.ErrPhasesMissing, http.StatusConflict},
		{services.ErrModelParse, http.StatusBadGateway},
		{&services.AIValidationError{Details: []string{"too few tasks: got 10, minimum 50"}}, http.StatusServiceUnavailable},
	}
	for _, c := range cases {
		planner := &stubPlanner{err: c.err}
		w := performAgentRequest(t, newAgentHandler(planner), uuid.New(), gin.H{"event_id": uuid.New().String()})
		require.Equal(t, c.code, w.Code, "error %v", c.err)
	}
}

func TestAgentHandler_ValidationFailureIncludesDetails(t *testing.T) {
	planner := &stubPlanner{err: &services.AIValidationError{Details: []string{
		"tasks[3].priority: must be one of critical, high, medium, low",
	}}}
	w := performAgentRequest(t, newAgentHandler(planner), uuid.New(), gin.H{"event_id": uuid.New().String()})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "AI_VALIDATION_FAILED", resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
}

func TestAgentHandler_RateLimitedBeforePlannerRuns(t *testing.T) {
	planner := &stubPlanner{result: &services.PlanResult{TasksCreated: 120}}
	clock := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter := validation.NewRateLimiterWithClock(validation.NewMemoryCounterStore(), func() time.Time { return clock })
	handler := NewAgentHandler(planner, limiter)

	userID := uuid.New()
	for i := 0; i < plannerMaxRequests; i++ {
		w := performAgentRequest(t, handler, userID, gin.H{"event_id": uuid.New().String()})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performAgentRequest(t, handler, userID, gin.H{"event_id": uuid.New().String()})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
	require.Equal(t, plannerMaxRequests, planner.calls, "rejected request must not reach the planner")
}
