package schemas

import (
	"strings"
	"testing"
	"time"
)

func validBasicInfo() BasicInfoStep {
	return BasicInfoStep{
		Name:        "Spring Runway Show",
		EventType:   "runway_show",
		Description: "Flagship spring collection runway show downtown.",
	}
}

func TestValidateBasicInfo_Valid(t *testing.T) {
	res := ValidateBasicInfo(validBasicInfo())
	if !res.OK {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
}

func TestValidateBasicInfo_NameBounds(t *testing.T) {
	s := validBasicInfo()
	s.Name = "ab"
	if res := ValidateBasicInfo(s); res.OK {
		t.Fatalf("expected 2-char name to fail")
	}

	s.Name = "abc"
	if res := ValidateBasicInfo(s); !res.OK {
		t.Fatalf("expected 3-char name to pass, got %v", res.Errors)
	}

	s.Name = strings.Repeat("a", 200)
	if res := ValidateBasicInfo(s); !res.OK {
		t.Fatalf("expected 200-char name to pass, got %v", res.Errors)
	}

	s.Name = strings.Repeat("a", 201)
	if res := ValidateBasicInfo(s); res.OK {
		t.Fatalf("expected 201-char name to fail")
	}
}

func TestValidateBasicInfo_NameTrimmedBeforeLengthCheck(t *testing.T) {
	s := validBasicInfo()
	s.Name = "  ab  "
	res := ValidateBasicInfo(s)
	if res.OK {
		t.Fatalf("expected padded 2-char name to fail")
	}
	if _, ok := res.Errors["name"]; !ok {
		t.Fatalf("expected error keyed on name, got %v", res.Errors)
	}
}

func TestValidateBasicInfo_EventType(t *testing.T) {
	s := validBasicInfo()
	s.EventType = "gala"
	res := ValidateBasicInfo(s)
	if res.OK {
		t.Fatalf("expected unknown event_type to fail")
	}
	if _, ok := res.Errors["event_type"]; !ok {
		t.Fatalf("expected error keyed on event_type, got %v", res.Errors)
	}
}

func TestValidateBasicInfo_DescriptionBounds(t *testing.T) {
	s := validBasicInfo()
	s.Description = "too short"
	if res := ValidateBasicInfo(s); res.OK {
		t.Fatalf("expected 9-char description to fail")
	}
	s.Description = strings.Repeat("d", 2000)
	if res := ValidateBasicInfo(s); !res.OK {
		t.Fatalf("expected 2000-char description to pass, got %v", res.Errors)
	}
	s.Description = strings.Repeat("d", 2001)
	if res := ValidateBasicInfo(s); res.OK {
		t.Fatalf("expected 2001-char description to fail")
	}
}

func TestValidateDateVenue_TodayIsValidEvenLateInTheDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	res := ValidateDateVenue(DateVenueStep{EventDate: "2026-03-14"}, now)
	if !res.OK {
		t.Fatalf("expected today's date to pass at 23:59, got %v", res.Errors)
	}
}

func TestValidateDateVenue_TodayIsValidOnServersWestOfUTC(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, loc)
	res := ValidateDateVenue(DateVenueStep{EventDate: "2026-03-14"}, now)
	if !res.OK {
		t.Fatalf("expected today's date to pass under a western zone, got %v", res.Errors)
	}
}

func TestValidateDateVenue_YesterdayFails(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC)
	res := ValidateDateVenue(DateVenueStep{EventDate: "2026-03-13"}, now)
	if res.OK {
		t.Fatalf("expected yesterday's date to fail")
	}
}

func TestValidateDateVenue_RejectsMalformedDate(t *testing.T) {
	now := time.Now()
	for _, raw := range []string{"03/14/2026", "2026-3-14", "not-a-date", ""} {
		res := ValidateDateVenue(DateVenueStep{EventDate: raw}, now)
		if res.OK {
			t.Fatalf("expected %q to fail", raw)
		}
	}
}

func TestValidateDateVenue_VenueOptionalButBoundedWhenPresent(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	res := ValidateDateVenue(DateVenueStep{EventDate: "2026-06-01"}, now)
	if !res.OK {
		t.Fatalf("expected absent venue to pass, got %v", res.Errors)
	}
	short := "ab"
	res = ValidateDateVenue(DateVenueStep{EventDate: "2026-06-01", Venue: &short}, now)
	if res.OK {
		t.Fatalf("expected 2-char venue to fail")
	}
}

func TestValidateBudgetAttendance_BudgetBounds(t *testing.T) {
	cases := []struct {
		budget float64
		ok     bool
	}{
		{0, false},
		{0.01, true},
		{10000000, true},
		{10000000.01, false},
		{-1, false},
	}
	for _, c := range cases {
		res := ValidateBudgetAttendance(BudgetAttendanceStep{ExpectedAttendance: 100, Budget: c.budget})
		if res.OK != c.ok {
			t.Fatalf("budget %v: expected ok=%v, got %v (%v)", c.budget, c.ok, res.OK, res.Errors)
		}
	}
}

func TestValidateBudgetAttendance_AttendanceBounds(t *testing.T) {
	cases := []struct {
		attendance int
		ok         bool
	}{
		{0, false},
		{1, true},
		{100000, true},
		{100001, false},
	}
	for _, c := range cases {
		res := ValidateBudgetAttendance(BudgetAttendanceStep{ExpectedAttendance: c.attendance, Budget: 50000})
		if res.OK != c.ok {
			t.Fatalf("attendance %d: expected ok=%v, got %v (%v)", c.attendance, c.ok, res.OK, res.Errors)
		}
	}
}

func TestValidateModelsCasting(t *testing.T) {
	res := ValidateModelsCasting(ModelsCastingStep{NumberOfModels: 20, ModelTypes: []string{"runway", "fit"}})
	if !res.OK {
		t.Fatalf("expected valid casting step, got %v", res.Errors)
	}

	res = ValidateModelsCasting(ModelsCastingStep{NumberOfModels: 501})
	if res.OK {
		t.Fatalf("expected 501 models to fail")
	}

	res = ValidateModelsCasting(ModelsCastingStep{ModelTypes: []string{"underwater"}})
	if res.OK {
		t.Fatalf("expected unknown model type to fail")
	}

	bad := "not-a-uuid"
	res = ValidateModelsCasting(ModelsCastingStep{CastingDirectorID: &bad})
	if res.OK {
		t.Fatalf("expected malformed casting_director_id to fail")
	}
}

func TestValidateSponsors_CollectsPerIndexErrors(t *testing.T) {
	res := ValidateSponsors(SponsorsStep{SponsorIDs: []string{"bad-one", "c56a4180-65aa-42ec-a945-5fd21dec0538", "bad-two"}})
	if res.OK {
		t.Fatalf("expected invalid sponsor ids to fail")
	}
	if _, ok := res.Errors["sponsor_ids.0"]; !ok {
		t.Fatalf("expected error at index 0, got %v", res.Errors)
	}
	if _, ok := res.Errors["sponsor_ids.2"]; !ok {
		t.Fatalf("expected error at index 2, got %v", res.Errors)
	}
	if _, ok := res.Errors["sponsor_ids.1"]; ok {
		t.Fatalf("did not expect error at index 1")
	}
}

func TestValidateDeliverables(t *testing.T) {
	res := ValidateDeliverables(DeliverablesStep{TermsAccepted: true})
	if res.OK {
		t.Fatalf("expected zero deliverables to fail")
	}
	res = ValidateDeliverables(DeliverablesStep{NeedsLookbook: true})
	if res.OK {
		t.Fatalf("expected unaccepted terms to fail")
	}
	res = ValidateDeliverables(DeliverablesStep{NeedsLookbook: true, TermsAccepted: true})
	if !res.OK {
		t.Fatalf("expected valid deliverables step, got %v", res.Errors)
	}
}
