package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/runwayhq/runway-backend/internal/audit"
	"github.com/runwayhq/runway-backend/internal/logger"
	"github.com/runwayhq/runway-backend/internal/repos"
	"github.com/runwayhq/runway-backend/internal/requestdata"
	"github.com/runwayhq/runway-backend/internal/schemas"
	"github.com/runwayhq/runway-backend/internal/types"
	"github.com/runwayhq/runway-backend/internal/validation"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("forbidden")
	ErrPhasesMissing = errors.New("event phases missing")
	ErrModelParse    = errors.New("model response parse failed")
	ErrPlannerBusy   = errors.New("task generation already running for this event")
	ErrNoSession     = errors.New("no session in context")
)

// AIValidationError reports every failing constraint in a rejected model
// batch; the batch is never partially accepted.
type AIValidationError struct {
	Details []string
}

func (e *AIValidationError) Error() string {
	return fmt.Sprintf("ai output failed validation: %d error(s)", len(e.Details))
}

// Cost heuristic per million tokens. An approximation for spend tracking,
// not billing-grade accounting.
const (
	inputCostPerMTok  = 2.50
	outputCostPerMTok = 10.00
)

type PlanResult struct {
	TasksCreated           int      `json:"tasks_created"`
	CriticalPath           []string `json:"critical_path"`
	EstimatedTotalHours    float64  `json:"estimated_total_hours"`
	DependenciesCreated    int      `json:"dependencies_created"`
	UnresolvedDependencies []string `json:"unresolved_dependencies,omitempty"`
	LatencyMS              int64    `json:"latency_ms"`
	CostUSD                float64  `json:"cost_usd"`
}

type PlannerService interface {
	GenerateTasks(ctx context.Context, eventID uuid.UUID) (*PlanResult, error)
}

type plannerService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo repos.EventRepo
	phaseRepo repos.EventPhaseRepo
	taskRepo  repos.TaskRepo
	depRepo   repos.TaskDependencyRepo
	auditSvc  audit.Service
	model     ModelClient

	// Advisory lock per event id: two simultaneous generation requests for
	// one event would otherwise produce overlapping batches.
	eventLocks sync.Map
}

func NewPlannerService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo repos.EventRepo,
	phaseRepo repos.EventPhaseRepo,
	taskRepo repos.TaskRepo,
	depRepo repos.TaskDependencyRepo,
	auditSvc audit.Service,
	model ModelClient,
) PlannerService {
	serviceLog := log.With("service", "PlannerService")
	return &plannerService{
		db:        db,
		log:       serviceLog,
		eventRepo: eventRepo,
		phaseRepo: phaseRepo,
		taskRepo:  taskRepo,
		depRepo:   depRepo,
		auditSvc:  auditSvc,
		model:     model,
	}
}

// GenerateTasks runs the full pipeline: authorize, load, prompt, parse,
// validate, compute deadlines, persist, resolve dependencies, audit. Stages
// are strictly sequential; any stage fails the request terminally. The model
// is only invoked after authorization passes.
func (p *plannerService) GenerateTasks(ctx context.Context, eventID uuid.UUID) (*PlanResult, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrNoSession
	}

	perf := audit.NewPerformanceMonitor()
	costs := audit.NewCostTracker()

	events, err := p.eventRepo.GetByIDs(ctx, nil, []uuid.UUID{eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrEventNotFound
	}
	event := events[0]
	if event.OrganizationID != rd.OrganizationID {
		return nil, ErrForbidden
	}
	perf.Checkpoint("event_loaded")

	phases, err := p.phaseRepo.GetByEventIDs(ctx, nil, []uuid.UUID{eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}
	if len(phases) == 0 {
		return nil, ErrPhasesMissing
	}
	phaseByName := make(map[string]uuid.UUID, len(phases))
	for _, ph := range phases {
		phaseByName[ph.Name] = ph.ID
	}
	// A partial phase set would leave tasks pointing at a nil phase row.
	// Require every canonical phase before spending on the model.
	for _, cp := range validation.CanonicalPhases {
		if _, ok := phaseByName[cp.Name]; !ok {
			return nil, ErrPhasesMissing
		}
	}

	lock := p.lockFor(eventID)
	if !lock.TryLock() {
		return nil, ErrPlannerBusy
	}
	defer lock.Unlock()

	system, user := BuildTaskPlanPrompt(event, time.Now())
	perf.Checkpoint("prompt_built")

	modelStart := time.Now()
	resp, err := p.model.GenerateText(ctx, system, user)
	latencyMS := time.Since(modelStart).Milliseconds()
	perf.Checkpoint("model_invoked")
	if err != nil {
		p.logAIAction(ctx, rd, event, false, fmt.Sprintf("model call failed: %v", err), latencyMS, 0, 0, 0)
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	inTok, outTok := resp.InputTokens, resp.OutputTokens
	if inTok == 0 {
		inTok = estimateTokens(system + user)
	}
	if outTok == 0 {
		outTok = estimateTokens(resp.Text)
	}
	costUSD := float64(inTok)/1e6*inputCostPerMTok + float64(outTok)/1e6*outputCostPerMTok
	costs.Add("task_plan", costUSD)

	var plan validation.TaskPlan
	if err := json.Unmarshal([]byte(StripJSONFence(resp.Text)), &plan); err != nil {
		// Harder failure than a validation miss: no structure could be
		// extracted at all. Keep the raw text (redacted via the logger)
		// for prompt-engineering follow-up.
		p.log.Error("Model returned unparseable JSON", "error", err, "raw_prefix", prefix(resp.Text, 500))
		audit.Fire(p.log, "LogSystemEvent", p.auditSvc.LogSystemEvent(ctx, audit.SystemEventEntry{
			EventType: "ai_parse_failure",
			Severity:  "error",
			Message:   "event-planner model output could not be parsed",
			Details:   map[string]any{"event_id": eventID.String(), "error": err.Error()},
		}))
		p.logAIAction(ctx, rd, event, false, "parse failure", latencyMS, inTok, outTok, costUSD)
		return nil, fmt.Errorf("%w: %v", ErrModelParse, err)
	}
	perf.Checkpoint("parsed")

	if res := validation.ValidateTaskList(plan.Tasks); !res.OK {
		p.logAIAction(ctx, rd, event, false, fmt.Sprintf("validation failed: %d error(s)", len(res.Errors)), latencyMS, inTok, outTok, costUSD)
		return nil, &AIValidationError{Details: res.Errors}
	}
	perf.Checkpoint("validated")

	eventDate := schemas.StartOfDay(event.EventDate.UTC())
	rows := make([]*types.Task, 0, len(plan.Tasks))
	var totalHours float64
	for _, t := range plan.Tasks {
		totalHours += t.EstimatedHours
		rows = append(rows, &types.Task{
			ID:                 uuid.New(),
			EventID:            event.ID,
			OrganizationID:     event.OrganizationID,
			PhaseID:            phaseByName[t.PhaseName],
			Title:              strings.TrimSpace(t.Title),
			Description:        strings.TrimSpace(t.Description),
			Priority:           t.Priority,
			EstimatedHours:     t.EstimatedHours,
			DeadlineDaysBefore: t.DeadlineDaysBefore,
			Deadline:           eventDate.AddDate(0, 0, -t.DeadlineDaysBefore),
			AIGenerated:        true,
		})
	}

	var edges []*types.TaskDependency
	var unresolved []string
	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, cErr := p.taskRepo.Create(ctx, tx, rows); cErr != nil {
			return fmt.Errorf("failed to persist tasks: %w", cErr)
		}
		edges, unresolved = resolveDependencies(plan.Tasks, rows)
		if _, dErr := p.depRepo.Create(ctx, tx, edges); dErr != nil {
			return fmt.Errorf("failed to persist dependencies: %w", dErr)
		}
		return nil
	})
	if err != nil {
		p.logAIAction(ctx, rd, event, false, fmt.Sprintf("persistence failed: %v", err), latencyMS, inTok, outTok, costUSD)
		return nil, err
	}
	perf.Checkpoint("persisted")

	p.logAIAction(ctx, rd, event, true, "", latencyMS, inTok, outTok, costUSD)

	summary := perf.Summary()
	p.log.Info("Task plan generated",
		"event_id", eventID.String(),
		"tasks_created", len(rows),
		"dependencies_created", len(edges),
		"unresolved_dependencies", len(unresolved),
		"total_ms", summary.TotalMS,
		"cost_usd", costs.Total(),
	)

	return &PlanResult{
		TasksCreated:           len(rows),
		CriticalPath:           plan.CriticalPath,
		EstimatedTotalHours:    totalHours,
		DependenciesCreated:    len(edges),
		UnresolvedDependencies: unresolved,
		LatencyMS:              latencyMS,
		CostUSD:                costs.Total(),
	}, nil
}

// resolveDependencies correlates edges by the generator's stable per-batch
// index first; title matching is only the compatibility shim for models
// that ignore the index instruction. Unresolved references are reported as
// warnings, never silently dropped.
func resolveDependencies(tasks []validation.GeneratedTask, rows []*types.Task) ([]*types.TaskDependency, []string) {
	idByIndex := make(map[int]uuid.UUID, len(tasks))
	idByTitle := make(map[string]uuid.UUID, len(tasks))
	for i, t := range tasks {
		idByIndex[t.Index] = rows[i].ID
		idByTitle[strings.TrimSpace(t.Title)] = rows[i].ID
	}

	var edges []*types.TaskDependency
	var unresolved []string
	seen := make(map[[2]uuid.UUID]bool)

	addEdge := func(taskID, dependsOn uuid.UUID) {
		if taskID == dependsOn {
			return
		}
		key := [2]uuid.UUID{taskID, dependsOn}
		if seen[key] {
			return
		}
		seen[key] = true
		edges = append(edges, &types.TaskDependency{
			ID:              uuid.New(),
			TaskID:          taskID,
			DependsOnTaskID: dependsOn,
		})
	}

	for i, t := range tasks {
		taskID := rows[i].ID
		for _, depIdx := range t.DependsOnIndexes {
			if depID, ok := idByIndex[depIdx]; ok {
				addEdge(taskID, depID)
			} else {
				unresolved = append(unresolved, fmt.Sprintf("tasks[%d]: no task with index %d", i, depIdx))
			}
		}
		for _, depTitle := range t.Dependencies {
			depTitle = strings.TrimSpace(depTitle)
			if depID, ok := idByTitle[depTitle]; ok {
				addEdge(taskID, depID)
			} else {
				unresolved = append(unresolved, fmt.Sprintf("tasks[%d]: no task titled %q", i, depTitle))
			}
		}
	}
	return edges, unresolved
}

func (p *plannerService) lockFor(eventID uuid.UUID) *sync.Mutex {
	val, _ := p.eventLocks.LoadOrStore(eventID, &sync.Mutex{})
	return val.(*sync.Mutex)
}

func (p *plannerService) logAIAction(ctx context.Context, rd *requestdata.RequestData, event *types.Event, success bool, errMsg string, latencyMS int64, inTok, outTok int, costUSD float64) {
	audit.Fire(p.log, "LogAIAction", p.auditSvc.LogAIAction(ctx, audit.AIActionEntry{
		UserID:       &rd.UserID,
		EventID:      &event.ID,
		ActionType:   "generate_event_tasks",
		Model:        p.model.ModelName(),
		Success:      success,
		Error:        errMsg,
		LatencyMS:    latencyMS,
		InputTokens:  inTok,
		OutputTokens: outTok,
		CostUSD:      costUSD,
		Details:      map[string]any{"event_id": event.ID.String()},
	}))
}

// estimateTokens is the rough chars/4 heuristic used when the provider does
// not return usage.
func estimateTokens(s string) int {
	n := len(s) / 4
	if n == 0 && len(s) > 0 {
		n = 1
	}
	return n
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
