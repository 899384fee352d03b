package schemas

import (
	"fmt"
	"strings"
	"time"
)

// EventDraft is the partially-completed wizard state. Every step field is
// optional; only current_step and saved_at are required. Present fields must
// still individually satisfy the same constraints as the full request,
// except the date floor: a draft may carry a date that has since passed and
// is re-checked on submission.
type EventDraft struct {
	Name                *string   `json:"name,omitempty"`
	EventType           *string   `json:"event_type,omitempty"`
	Description         *string   `json:"description,omitempty"`
	EventDate           *string   `json:"event_date,omitempty"`
	Venue               *string   `json:"venue,omitempty"`
	ExpectedAttendance  *int      `json:"expected_attendance,omitempty"`
	Budget              *float64  `json:"budget,omitempty"`
	NumberOfModels      *int      `json:"number_of_models,omitempty"`
	ModelTypes          []string  `json:"model_types,omitempty"`
	CastingDirectorID   *string   `json:"casting_director_id,omitempty"`
	SponsorIDs          []string  `json:"sponsor_ids,omitempty"`
	NeedsRunwayShow     *bool     `json:"needs_runway_show,omitempty"`
	NeedsLookbook       *bool     `json:"needs_lookbook,omitempty"`
	NeedsPressKit       *bool     `json:"needs_press_kit,omitempty"`
	NeedsSocialContent  *bool     `json:"needs_social_content,omitempty"`
	GenerateTasksWithAI *bool     `json:"generate_tasks_with_ai,omitempty"`
	TermsAccepted       *bool     `json:"terms_accepted,omitempty"`
	CurrentStep         int       `json:"current_step"`
	SavedAt             time.Time `json:"saved_at"`
}

func ValidateEventDraft(d EventDraft) Result {
	errs := map[string]string{}
	if d.CurrentStep < StepMin || d.CurrentStep > StepMax {
		errs["current_step"] = fmt.Sprintf("current_step must be between %d and %d", StepMin, StepMax)
	}
	if d.SavedAt.IsZero() {
		errs["saved_at"] = "saved_at must be a valid timestamp"
	}
	if d.Name != nil {
		validateName(errs, "name", *d.Name)
	}
	if d.EventType != nil && !IsValidEventType(*d.EventType) {
		errs["event_type"] = fmt.Sprintf("event_type must be one of: %s", strings.Join(EventTypes, ", "))
	}
	if d.Description != nil {
		validateDescription(errs, "description", *d.Description)
	}
	if d.EventDate != nil {
		if _, parsed := ParseDate(*d.EventDate); !parsed {
			errs["event_date"] = "event_date must be a valid date in YYYY-MM-DD format"
		}
	}
	if d.Venue != nil {
		v := strings.TrimSpace(*d.Venue)
		if len(v) < VenueMinLen || len(v) > VenueMaxLen {
			errs["venue"] = fmt.Sprintf("venue must be between %d and %d characters", VenueMinLen, VenueMaxLen)
		}
	}
	if d.ExpectedAttendance != nil && (*d.ExpectedAttendance < AttendanceMin || *d.ExpectedAttendance > AttendanceMax) {
		errs["expected_attendance"] = fmt.Sprintf("expected_attendance must be between %d and %d", AttendanceMin, AttendanceMax)
	}
	if d.Budget != nil && !IsValidBudget(*d.Budget) {
		errs["budget"] = fmt.Sprintf("budget must be greater than 0 and at most %d", BudgetMax)
	}
	if d.NumberOfModels != nil && (*d.NumberOfModels < 0 || *d.NumberOfModels > ModelCountMax) {
		errs["number_of_models"] = fmt.Sprintf("number_of_models must be between 0 and %d", ModelCountMax)
	}
	if len(d.ModelTypes) > ModelTypesMax {
		errs["model_types"] = fmt.Sprintf("model_types accepts at most %d entries", ModelTypesMax)
	}
	for i, mt := range d.ModelTypes {
		if !IsValidModelType(mt) {
			errs[fmt.Sprintf("model_types.%d", i)] = fmt.Sprintf("model type must be one of: %s", strings.Join(ModelTypes, ", "))
		}
	}
	if d.CastingDirectorID != nil && !IsValidUUID(*d.CastingDirectorID) {
		errs["casting_director_id"] = "casting_director_id must be a valid UUID"
	}
	for i, id := range d.SponsorIDs {
		if !IsValidUUID(id) {
			errs[fmt.Sprintf("sponsor_ids.%d", i)] = "sponsor id must be a valid UUID"
		}
	}
	return failed(errs)
}
