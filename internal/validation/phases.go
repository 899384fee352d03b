package validation

// PhaseWindow is the canonical lead-time window for one production phase,
// expressed in days before the event. The planner documents these in the
// prompt as guidance; they are not enforced per-task.
type PhaseWindow struct {
	Name    string
	MinDays int
	MaxDays int
}

// CanonicalPhases are the 14 production phases of a fashion event, in
// order-significant lead-time sequence. Task phase_name values must match
// one of these exactly.
var CanonicalPhases = []PhaseWindow{
	{Name: "Concept & Strategy", MinDays: 120, MaxDays: 365},
	{Name: "Venue & Logistics", MinDays: 90, MaxDays: 180},
	{Name: "Designer & Talent", MinDays: 75, MaxDays: 150},
	{Name: "Sponsor Outreach", MinDays: 60, MaxDays: 150},
	{Name: "Marketing & PR", MinDays: 30, MaxDays: 120},
	{Name: "Ticketing & RSVPs", MinDays: 21, MaxDays: 90},
	{Name: "Production Design", MinDays: 30, MaxDays: 75},
	{Name: "Casting & Fittings", MinDays: 14, MaxDays: 60},
	{Name: "Rehearsals", MinDays: 2, MaxDays: 14},
	{Name: "Final Prep", MinDays: 1, MaxDays: 7},
	{Name: "Event Day Setup", MinDays: 0, MaxDays: 1},
	{Name: "Event Execution", MinDays: 0, MaxDays: 0},
	{Name: "Post-Event", MinDays: 0, MaxDays: 0},
	{Name: "Debrief & Reporting", MinDays: 0, MaxDays: 0},
}

var phaseNameSet = func() map[string]bool {
	m := make(map[string]bool, len(CanonicalPhases))
	for _, p := range CanonicalPhases {
		m[p.Name] = true
	}
	return m
}()

func IsCanonicalPhase(name string) bool {
	return phaseNameSet[name]
}

func PhaseNames() []string {
	out := make([]string, 0, len(CanonicalPhases))
	for _, p := range CanonicalPhases {
		out = append(out, p.Name)
	}
	return out
}
