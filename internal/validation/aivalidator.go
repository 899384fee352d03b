package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/runwayhq/runway-backend/internal/schemas"
)

// Task batch bounds and business rules. A batch is all-or-nothing: one
// invalid element rejects every element.
const (
	TaskBatchMin = 50
	TaskBatchMax = 200

	TaskTitleMinLen       = 3
	TaskTitleMaxLen       = 200
	TaskDescriptionMinLen = 10
	TaskDescriptionMaxLen = 1000
	TaskHoursMax          = 100
	DeadlineDaysMax       = 365

	// Critical tasks need runway to react; anything marked critical closer
	// than this to the event rejects the whole batch.
	CriticalMinLeadDays = 7

	// Tasks estimated above this must be critical or high priority.
	HighEffortHours = 20
)

// BatchResult aggregates every failing constraint across a whole batch of
// model output. Errors are collected, not short-circuited, so one response
// yields the full picture for prompt debugging.
type BatchResult struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

func batchResult(errs []string) BatchResult {
	return BatchResult{OK: len(errs) == 0, Errors: errs}
}

// ValidateTaskList applies schema validation then business rules to every
// element, tagging errors with the element index. The count gate is a
// distinct check: a batch outside [TaskBatchMin, TaskBatchMax] fails even if
// every task is individually well-formed.
func ValidateTaskList(tasks []GeneratedTask) BatchResult {
	var errs []string

	if len(tasks) < TaskBatchMin {
		errs = append(errs, fmt.Sprintf("too few tasks: got %d, minimum %d", len(tasks), TaskBatchMin))
	}
	if len(tasks) > TaskBatchMax {
		errs = append(errs, fmt.Sprintf("too many tasks: got %d, maximum %d", len(tasks), TaskBatchMax))
	}

	for i, t := range tasks {
		itemErrs := validateTaskSchema(i, t)
		if len(itemErrs) > 0 {
			errs = append(errs, itemErrs...)
			continue
		}
		errs = append(errs, validateTaskRules(i, t, len(tasks))...)
	}

	return batchResult(errs)
}

func validateTaskSchema(i int, t GeneratedTask) []string {
	var errs []string
	title := strings.TrimSpace(t.Title)
	if len(title) < TaskTitleMinLen || len(title) > TaskTitleMaxLen {
		errs = append(errs, fmt.Sprintf("tasks[%d].title: must be between %d and %d characters", i, TaskTitleMinLen, TaskTitleMaxLen))
	}
	desc := strings.TrimSpace(t.Description)
	if len(desc) < TaskDescriptionMinLen || len(desc) > TaskDescriptionMaxLen {
		errs = append(errs, fmt.Sprintf("tasks[%d].description: must be between %d and %d characters", i, TaskDescriptionMinLen, TaskDescriptionMaxLen))
	}
	if !IsValidPriority(t.Priority) {
		errs = append(errs, fmt.Sprintf("tasks[%d].priority: must be one of %s", i, strings.Join(Priorities, ", ")))
	}
	if t.EstimatedHours <= 0 || t.EstimatedHours > TaskHoursMax {
		errs = append(errs, fmt.Sprintf("tasks[%d].estimated_hours: must be greater than 0 and at most %d", i, TaskHoursMax))
	}
	if t.DeadlineDaysBefore < 0 || t.DeadlineDaysBefore > DeadlineDaysMax {
		errs = append(errs, fmt.Sprintf("tasks[%d].deadline_days_before: must be between 0 and %d", i, DeadlineDaysMax))
	}
	return errs
}

func validateTaskRules(i int, t GeneratedTask, batchSize int) []string {
	var errs []string
	if !IsCanonicalPhase(t.PhaseName) {
		errs = append(errs, fmt.Sprintf("tasks[%d].phase_name: %q is not a canonical phase", i, t.PhaseName))
	}
	if t.Priority == "critical" && t.DeadlineDaysBefore < CriticalMinLeadDays {
		errs = append(errs, fmt.Sprintf("tasks[%d]: critical tasks need deadline_days_before >= %d, got %d", i, CriticalMinLeadDays, t.DeadlineDaysBefore))
	}
	if t.EstimatedHours > HighEffortHours && t.Priority != "critical" && t.Priority != "high" {
		errs = append(errs, fmt.Sprintf("tasks[%d]: tasks over %d hours must be critical or high priority", i, HighEffortHours))
	}
	title := strings.TrimSpace(t.Title)
	for _, dep := range t.Dependencies {
		if strings.TrimSpace(dep) == title {
			errs = append(errs, fmt.Sprintf("tasks[%d]: task depends on itself (%q)", i, title))
		}
	}
	for _, depIdx := range t.DependsOnIndexes {
		if depIdx == t.Index {
			errs = append(errs, fmt.Sprintf("tasks[%d]: task depends on its own index %d", i, depIdx))
		}
		if depIdx < 0 || depIdx >= batchSize {
			errs = append(errs, fmt.Sprintf("tasks[%d]: depends_on_indexes entry %d out of range", i, depIdx))
		}
	}
	return errs
}

// ValidateSponsorScore: schema first, then the cross-field ROI rule.
func ValidateSponsorScore(s SponsorScore) BatchResult {
	var errs []string
	if !schemas.IsValidUUID(s.SponsorID) {
		errs = append(errs, "sponsor_id: must be a valid UUID")
	}
	if s.Score < 0 || s.Score > 100 {
		errs = append(errs, "score: must be between 0 and 100")
	}
	if strings.TrimSpace(s.Rationale) == "" {
		errs = append(errs, "rationale: must not be empty")
	}
	if len(errs) > 0 {
		return batchResult(errs)
	}
	if s.PredictedROI.Min > s.PredictedROI.Max {
		errs = append(errs, fmt.Sprintf("predicted_roi: min %.2f exceeds max %.2f", s.PredictedROI.Min, s.PredictedROI.Max))
	}
	return batchResult(errs)
}

func ValidateBrandAnalysis(b BrandAnalysis) BatchResult {
	var errs []string
	if strings.TrimSpace(b.BrandName) == "" {
		errs = append(errs, "brand_name: must not be empty")
	}
	if b.AlignmentScore < 0 || b.AlignmentScore > 100 {
		errs = append(errs, "alignment_score: must be between 0 and 100")
	}
	if strings.TrimSpace(b.Summary) == "" {
		errs = append(errs, "summary: must not be empty")
	}
	return batchResult(errs)
}

// budgetTolerance absorbs floating-point drift in the model's arithmetic.
const budgetTolerance = 1e-2

func ValidateBudgetRecommendation(b BudgetRecommendation) BatchResult {
	var errs []string
	if strings.TrimSpace(b.Category) == "" {
		errs = append(errs, "category: must not be empty")
	}
	if b.CurrentAllocated < 0 {
		errs = append(errs, "current_allocated: must not be negative")
	}
	if b.RecommendedAmount <= 0 {
		errs = append(errs, "recommended_amount: must be greater than 0")
	}
	if len(errs) > 0 {
		return batchResult(errs)
	}
	if math.Abs(b.Difference-(b.RecommendedAmount-b.CurrentAllocated)) > budgetTolerance {
		errs = append(errs, fmt.Sprintf("difference: %.2f does not equal recommended_amount - current_allocated (%.2f)", b.Difference, b.RecommendedAmount-b.CurrentAllocated))
	}
	return batchResult(errs)
}

var riskLikelihoods = []string{"high", "medium", "low"}

func ValidateRiskAssessment(r RiskAssessment) BatchResult {
	var errs []string
	if len(r.Risks) == 0 {
		errs = append(errs, "risks: must contain at least one item")
	}
	for i, item := range r.Risks {
		if strings.TrimSpace(item.Category) == "" {
			errs = append(errs, fmt.Sprintf("risks[%d].category: must not be empty", i))
		}
		if !IsValidPriority(item.Severity) {
			errs = append(errs, fmt.Sprintf("risks[%d].severity: must be one of %s", i, strings.Join(Priorities, ", ")))
		}
		validLikelihood := false
		for _, l := range riskLikelihoods {
			if item.Likelihood == l {
				validLikelihood = true
			}
		}
		if !validLikelihood {
			errs = append(errs, fmt.Sprintf("risks[%d].likelihood: must be one of %s", i, strings.Join(riskLikelihoods, ", ")))
		}
		if strings.TrimSpace(item.Description) == "" {
			errs = append(errs, fmt.Sprintf("risks[%d].description: must not be empty", i))
		}
		if strings.TrimSpace(item.Mitigation) == "" {
			errs = append(errs, fmt.Sprintf("risks[%d].mitigation: must not be empty", i))
		}
	}
	return batchResult(errs)
}
