package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/runwayhq/runway-backend/internal/requestdata"
	"github.com/runwayhq/runway-backend/internal/services"
	"github.com/runwayhq/runway-backend/internal/validation"
)

// Planner invocations are the expensive path, so the per-user window is
// tight compared to the rest of the API.
const (
	plannerMaxRequests = 10
	plannerWindow      = time.Hour
)

type AgentHandler struct {
	plannerService services.PlannerService
	limiter        *validation.RateLimiter
}

func NewAgentHandler(plannerService services.PlannerService, limiter *validation.RateLimiter) *AgentHandler {
	return &AgentHandler{plannerService: plannerService, limiter: limiter}
}

// GenerateEventTasks is POST /agents/event-planner. The rate limit is
// checked before any model spend.
func (ah *AgentHandler) GenerateEventTasks(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", fmt.Errorf("no session"))
		return
	}

	var req struct {
		EventID string `json:"event_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_EVENT_ID", fmt.Errorf("event_id is required"))
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_EVENT_ID", fmt.Errorf("event_id must be a uuid"))
		return
	}

	rl := ah.limiter.Check("event_planner:"+rd.UserID.String(), plannerMaxRequests, plannerWindow)
	if !rl.Allowed {
		c.Header("Retry-After", strconv.Itoa(rl.RetryAfter))
		RespondError(c, http.StatusTooManyRequests, "RATE_LIMITED",
			fmt.Errorf("too many generation requests, retry in %d seconds", rl.RetryAfter))
		return
	}

	result, err := ah.plannerService.GenerateTasks(c.Request.Context(), eventID)
	if err != nil {
		var aiErr *services.AIValidationError
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			RespondError(c, http.StatusNotFound, "EVENT_NOT_FOUND", err)
		case errors.Is(err, services.ErrForbidden):
			RespondError(c, http.StatusForbidden, "FORBIDDEN", err)
		case errors.Is(err, services.ErrNoSession):
			RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", err)
		case errors.Is(err, services.ErrPlannerBusy):
			RespondError(c, http.StatusConflict, "GENERATION_IN_PROGRESS", err)
		case errors.Is(err, services.ErrPhasesMissing):
			RespondError(c, http.StatusConflict, "PHASES_MISSING", err)
		case errors.Is(err, services.ErrModelParse):
			RespondError(c, http.StatusBadGateway, "MODEL_PARSE_FAILED", err)
		case errors.As(err, &aiErr):
			RespondErrorDetails(c, http.StatusServiceUnavailable, "AI_VALIDATION_FAILED", aiErr, aiErr.Details)
		default:
			RespondError(c, http.StatusInternalServerError, "AGENT_ERROR", err)
		}
		return
	}

	RespondOK(c, gin.H{
		"success": true,
		"data": gin.H{
			"tasks_created":           result.TasksCreated,
			"critical_path":           result.CriticalPath,
			"estimated_total_hours":   result.EstimatedTotalHours,
			"dependencies_created":    result.DependenciesCreated,
			"unresolved_dependencies": result.UnresolvedDependencies,
		},
		"meta": gin.H{
			"latency_ms": result.LatencyMS,
			"cost_usd":   result.CostUSD,
		},
	})
}
