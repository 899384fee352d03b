package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/runwayhq/runway-backend/internal/schemas"
	"github.com/runwayhq/runway-backend/internal/types"
	"github.com/runwayhq/runway-backend/internal/validation"
)

const taskPlanSystemPrompt = `You are a production planner for fashion events.
You convert an event brief into a complete task plan.

You must output ONLY a JSON object with these exact fields:
- tasks: array of task objects
- critical_path: array of task titles forming the minimum sequential chain blocking event readiness

Each task object has:
- index: integer, the task's position in the array starting at 0. This is the stable key other tasks reference.
- title: string, 3-200 characters
- description: string, 10-1000 characters
- phase_name: one of the canonical phase names listed in the brief, copied exactly
- priority: one of [critical, high, medium, low]
- estimated_hours: number, greater than 0 and at most 100
- deadline_days_before: integer 0-365, days before the event date this task must be done
- depends_on_indexes: array of integers referencing the index of prerequisite tasks (empty array if none)

CRITICAL RULES:
1. Produce between 120 and 150 tasks covering ALL 14 phases.
2. A task must never depend on itself.
3. critical priority tasks must have deadline_days_before of at least 7.
4. Tasks estimated above 20 hours must be critical or high priority.
5. Use each phase's lead-time window from the brief as guidance for deadline_days_before.
6. Output ONLY the JSON object, no markdown, no explanation.`

// BuildTaskPlanPrompt renders the event brief the model plans against.
// Phase windows are documented as guidance, not enforced per task.
func BuildTaskPlanPrompt(event *types.Event, now time.Time) (string, string) {
	daysUntil := int(schemas.StartOfDay(event.EventDate.UTC()).Sub(schemas.StartOfDay(now.UTC())).Hours() / 24)

	var b strings.Builder
	fmt.Fprintf(&b, "Event brief:\n")
	fmt.Fprintf(&b, "- type: %s\n", event.EventType)
	fmt.Fprintf(&b, "- date: %s (%d days from today)\n", event.EventDate.Format(schemas.DateLayout), daysUntil)
	fmt.Fprintf(&b, "- budget: $%.2f\n", event.Budget)
	fmt.Fprintf(&b, "- expected attendance: %d\n", event.ExpectedAttendance)
	if event.Venue != nil && *event.Venue != "" {
		fmt.Fprintf(&b, "- venue: %s\n", *event.Venue)
	} else {
		fmt.Fprintf(&b, "- venue: not yet booked\n")
	}

	b.WriteString("\nCanonical phases and their lead-time windows (days before event):\n")
	for _, p := range validation.CanonicalPhases {
		fmt.Fprintf(&b, "- %s: %d-%d\n", p.Name, p.MinDays, p.MaxDays)
	}

	b.WriteString("\nProduce the full task plan now.")
	return taskPlanSystemPrompt, b.String()
}

// StripJSONFence removes an optional ```json fenced wrapper from model
// output before parsing.
func StripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
