package schemas

import (
	"fmt"
	"strings"
	"time"
)

// Wizard step payloads. Field names and constraints are the wire contract
// with the client wizard; changing either silently invalidates existing
// drafts.

type BasicInfoStep struct {
	Name        string `json:"name"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
}

type DateVenueStep struct {
	EventDate string  `json:"event_date"`
	Venue     *string `json:"venue,omitempty"`
}

type BudgetAttendanceStep struct {
	ExpectedAttendance int     `json:"expected_attendance"`
	Budget             float64 `json:"budget"`
}

type ModelsCastingStep struct {
	NumberOfModels    int      `json:"number_of_models"`
	ModelTypes        []string `json:"model_types"`
	CastingDirectorID *string  `json:"casting_director_id,omitempty"`
}

type SponsorsStep struct {
	SponsorIDs []string `json:"sponsor_ids"`
}

type DeliverablesStep struct {
	NeedsRunwayShow     bool `json:"needs_runway_show"`
	NeedsLookbook       bool `json:"needs_lookbook"`
	NeedsPressKit       bool `json:"needs_press_kit"`
	NeedsSocialContent  bool `json:"needs_social_content"`
	GenerateTasksWithAI bool `json:"generate_tasks_with_ai"`
	TermsAccepted       bool `json:"terms_accepted"`
}

func ValidateBasicInfo(s BasicInfoStep) Result {
	errs := map[string]string{}
	validateName(errs, "name", s.Name)
	if !IsValidEventType(s.EventType) {
		errs["event_type"] = fmt.Sprintf("event_type must be one of: %s", strings.Join(EventTypes, ", "))
	}
	validateDescription(errs, "description", s.Description)
	return failed(errs)
}

// ValidateDateVenue uses now only to derive start-of-today; callers pass
// time.Now() outside tests. Wire dates are zone-less and parse to UTC
// midnight, so today is derived in UTC as well or a server west of UTC
// would reject an event dated today.
func ValidateDateVenue(s DateVenueStep, now time.Time) Result {
	errs := map[string]string{}
	d, parsed := ParseDate(s.EventDate)
	if !parsed {
		errs["event_date"] = "event_date must be a valid date in YYYY-MM-DD format"
	} else if d.Before(StartOfDay(now.UTC())) {
		errs["event_date"] = "event_date must be today or in the future"
	}
	if s.Venue != nil {
		v := strings.TrimSpace(*s.Venue)
		if len(v) < VenueMinLen || len(v) > VenueMaxLen {
			errs["venue"] = fmt.Sprintf("venue must be between %d and %d characters", VenueMinLen, VenueMaxLen)
		}
	}
	return failed(errs)
}

func ValidateBudgetAttendance(s BudgetAttendanceStep) Result {
	errs := map[string]string{}
	if s.ExpectedAttendance < AttendanceMin || s.ExpectedAttendance > AttendanceMax {
		errs["expected_attendance"] = fmt.Sprintf("expected_attendance must be between %d and %d", AttendanceMin, AttendanceMax)
	}
	if !IsValidBudget(s.Budget) {
		errs["budget"] = fmt.Sprintf("budget must be greater than 0 and at most %d", BudgetMax)
	}
	return failed(errs)
}

func ValidateModelsCasting(s ModelsCastingStep) Result {
	errs := map[string]string{}
	if s.NumberOfModels < 0 || s.NumberOfModels > ModelCountMax {
		errs["number_of_models"] = fmt.Sprintf("number_of_models must be between 0 and %d", ModelCountMax)
	}
	if len(s.ModelTypes) > ModelTypesMax {
		errs["model_types"] = fmt.Sprintf("model_types accepts at most %d entries", ModelTypesMax)
	}
	for i, mt := range s.ModelTypes {
		if !IsValidModelType(mt) {
			errs[fmt.Sprintf("model_types.%d", i)] = fmt.Sprintf("model type must be one of: %s", strings.Join(ModelTypes, ", "))
		}
	}
	if s.CastingDirectorID != nil && !IsValidUUID(*s.CastingDirectorID) {
		errs["casting_director_id"] = "casting_director_id must be a valid UUID"
	}
	return failed(errs)
}

func ValidateSponsors(s SponsorsStep) Result {
	errs := map[string]string{}
	for i, id := range s.SponsorIDs {
		if !IsValidUUID(id) {
			errs[fmt.Sprintf("sponsor_ids.%d", i)] = "sponsor id must be a valid UUID"
		}
	}
	return failed(errs)
}

func ValidateDeliverables(s DeliverablesStep) Result {
	errs := map[string]string{}
	if !s.NeedsRunwayShow && !s.NeedsLookbook && !s.NeedsPressKit && !s.NeedsSocialContent {
		errs["deliverables"] = "at least one deliverable must be selected"
	}
	if !s.TermsAccepted {
		errs["terms_accepted"] = "terms must be accepted before submission"
	}
	return failed(errs)
}

func validateName(errs map[string]string, path, v string) {
	n := len(strings.TrimSpace(v))
	if n < NameMinLen || n > NameMaxLen {
		errs[path] = fmt.Sprintf("%s must be between %d and %d characters", path, NameMinLen, NameMaxLen)
	}
}

func validateDescription(errs map[string]string, path, v string) {
	n := len(strings.TrimSpace(v))
	if n < DescriptionMinLen || n > DescriptionMaxLen {
		errs[path] = fmt.Sprintf("%s must be between %d and %d characters", path, DescriptionMinLen, DescriptionMaxLen)
	}
}
