package schemas

import (
	"testing"
	"time"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestValidateEventDraft_EmptyDraftWithStepAndTimestampIsValid(t *testing.T) {
	d := EventDraft{CurrentStep: 1, SavedAt: time.Now()}
	if res := ValidateEventDraft(d); !res.OK {
		t.Fatalf("expected empty draft to pass, got %v", res.Errors)
	}
}

func TestValidateEventDraft_StepBounds(t *testing.T) {
	for _, step := range []int{0, 7, -1} {
		d := EventDraft{CurrentStep: step, SavedAt: time.Now()}
		if res := ValidateEventDraft(d); res.OK {
			t.Fatalf("expected step %d to fail", step)
		}
	}
	for step := 1; step <= 6; step++ {
		d := EventDraft{CurrentStep: step, SavedAt: time.Now()}
		if res := ValidateEventDraft(d); !res.OK {
			t.Fatalf("expected step %d to pass, got %v", step, res.Errors)
		}
	}
}

func TestValidateEventDraft_ZeroSavedAtFails(t *testing.T) {
	d := EventDraft{CurrentStep: 2}
	if res := ValidateEventDraft(d); res.OK {
		t.Fatalf("expected zero saved_at to fail")
	}
}

func TestValidateEventDraft_PresentFieldsStillConstrained(t *testing.T) {
	d := EventDraft{
		CurrentStep: 3,
		SavedAt:     time.Now(),
		Name:               strPtr("ab"),
		Budget:             floatPtr(0),
		ExpectedAttendance: intPtr(0),
	}
	res := ValidateEventDraft(d)
	if res.OK {
		t.Fatalf("expected invalid present fields to fail")
	}
	for _, key := range []string{"name", "budget", "expected_attendance"} {
		if _, ok := res.Errors[key]; !ok {
			t.Fatalf("expected %s error, got %v", key, res.Errors)
		}
	}
}

func TestValidateEventDraft_PastDateAllowedInDraft(t *testing.T) {
	// The date floor is a submission rule, not a draft rule; a draft saved
	// weeks ago may carry a date that has since passed.
	d := EventDraft{
		CurrentStep: 2,
		SavedAt:     time.Now(),
		EventDate:   strPtr("2020-01-01"),
	}
	if res := ValidateEventDraft(d); !res.OK {
		t.Fatalf("expected past date in draft to pass, got %v", res.Errors)
	}

	d.EventDate = strPtr("01/01/2020")
	if res := ValidateEventDraft(d); res.OK {
		t.Fatalf("expected malformed date to fail even in draft")
	}
}

func TestValidateCreateEventRequest_AggregatesAcrossSteps(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	req := CreateEventRequest{
		BasicInfoStep: BasicInfoStep{
			Name:        "x",
			EventType:   "runway_show",
			Description: "short",
		},
		DateVenueStep:        DateVenueStep{EventDate: "2025-01-01"},
		BudgetAttendanceStep: BudgetAttendanceStep{ExpectedAttendance: 0, Budget: 0},
		DeliverablesStep:     DeliverablesStep{},
	}
	res := ValidateCreateEventRequest(req, now)
	if res.OK {
		t.Fatalf("expected aggregate failure")
	}
	for _, key := range []string{"name", "description", "event_date", "expected_attendance", "budget", "deliverables", "terms_accepted"} {
		if _, ok := res.Errors[key]; !ok {
			t.Fatalf("expected error for %s, got %v", key, res.Errors)
		}
	}
}

func TestValidateCreateEventRequest_FullValidRequest(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	req := CreateEventRequest{
		BasicInfoStep: BasicInfoStep{
			Name:        "Fall Lookbook Shoot",
			EventType:   "lookbook_shoot",
			Description: "Editorial lookbook shoot for the fall collection.",
		},
		DateVenueStep:        DateVenueStep{EventDate: "2026-09-15", Venue: strPtr("Studio 9, Brooklyn")},
		BudgetAttendanceStep: BudgetAttendanceStep{ExpectedAttendance: 40, Budget: 85000},
		ModelsCastingStep:    ModelsCastingStep{NumberOfModels: 8, ModelTypes: []string{"editorial"}},
		SponsorsStep:         SponsorsStep{SponsorIDs: []string{"c56a4180-65aa-42ec-a945-5fd21dec0538"}},
		DeliverablesStep:     DeliverablesStep{NeedsLookbook: true, NeedsSocialContent: true, TermsAccepted: true},
	}
	if res := ValidateCreateEventRequest(req, now); !res.OK {
		t.Fatalf("expected valid request, got %v", res.Errors)
	}
}
