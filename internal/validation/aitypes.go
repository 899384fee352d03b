package validation

// Shapes the generative model is asked to produce. Everything here is
// untrusted until it has passed the validators in aivalidator.go.

// GeneratedTask is one AI-proposed task, pre-persistence. Index is the
// stable per-batch correlation key the prompt asks the model to emit;
// DependsOnIndexes resolves against it. Dependencies (titles) is the
// compatibility shim for models that ignore the index instruction.
type GeneratedTask struct {
	Index              int      `json:"index"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	PhaseName          string   `json:"phase_name"`
	Priority           string   `json:"priority"`
	EstimatedHours     float64  `json:"estimated_hours"`
	DeadlineDaysBefore int      `json:"deadline_days_before"`
	DependsOnIndexes   []int    `json:"depends_on_indexes,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty"`
}

// TaskPlan is the top-level object parsed from the model response.
type TaskPlan struct {
	Tasks        []GeneratedTask `json:"tasks"`
	CriticalPath []string        `json:"critical_path,omitempty"`
}

type ROIRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type SponsorScore struct {
	SponsorID    string   `json:"sponsor_id"`
	Score        float64  `json:"score"` // 0-100
	PredictedROI ROIRange `json:"predicted_roi"`
	Rationale    string   `json:"rationale"`
}

type BrandAnalysis struct {
	BrandName      string   `json:"brand_name"`
	AlignmentScore float64  `json:"alignment_score"` // 0-100
	Strengths      []string `json:"strengths"`
	Risks          []string `json:"risks"`
	Summary        string   `json:"summary"`
}

type BudgetRecommendation struct {
	Category          string  `json:"category"`
	CurrentAllocated  float64 `json:"current_allocated"`
	RecommendedAmount float64 `json:"recommended_amount"`
	Difference        float64 `json:"difference"`
	Reasoning         string  `json:"reasoning"`
}

type RiskItem struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`   // critical|high|medium|low
	Likelihood  string `json:"likelihood"` // high|medium|low
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

type RiskAssessment struct {
	Risks []RiskItem `json:"risks"`
}

var Priorities = []string{"critical", "high", "medium", "low"}

func IsValidPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}
