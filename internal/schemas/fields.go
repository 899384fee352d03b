package schemas

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	NameMinLen        = 3
	NameMaxLen        = 200
	DescriptionMinLen = 10
	DescriptionMaxLen = 2000
	VenueMinLen       = 3
	VenueMaxLen       = 200
	AttendanceMin     = 1
	AttendanceMax     = 100000
	BudgetMax         = 10000000
	ModelCountMax     = 500
	ModelTypesMax     = 4
	StepMin           = 1
	StepMax           = 6

	// DateLayout is the wire format for all calendar dates. No time-of-day
	// component is ever carried.
	DateLayout = "2006-01-02"
)

var EventTypes = []string{
	"runway_show",
	"trunk_show",
	"pop_up_shop",
	"lookbook_shoot",
	"press_event",
	"showroom_presentation",
}

var ModelTypes = []string{
	"runway",
	"editorial",
	"commercial",
	"fit",
}

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(s string) bool {
	return emailRE.MatchString(strings.TrimSpace(s))
}

func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func IsValidEventType(s string) bool {
	return contains(EventTypes, s)
}

func IsValidModelType(s string) bool {
	return contains(ModelTypes, s)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ParseDate parses a calendar date in wire format, rejecting anything with a
// time component. The result is midnight UTC; comparisons against a clock
// reading must normalize that reading to UTC first.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartOfDay truncates to midnight in t's location. Date comparisons use
// start-of-today as the lower bound so an event dated today is valid even at
// 23:59.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsValidBudget accepts the half-open interval (0, BudgetMax]. Both bounds of
// the business rule are deliberate: zero rejects, exactly 10,000,000 passes.
func IsValidBudget(v float64) bool {
	return v > 0 && v <= BudgetMax
}
