package schemas

import "time"

// CreateEventRequest is the structural merge of the six wizard steps. It is
// complete only when every sub-schema passes. organization_id and created_by
// are attached server-side from the session, never client-supplied.
type CreateEventRequest struct {
	BasicInfoStep
	DateVenueStep
	BudgetAttendanceStep
	ModelsCastingStep
	SponsorsStep
	DeliverablesStep
}

// ValidateCreateEventRequest re-runs every step schema against the merged
// value. Validation happens here, not at mutation time: merging a step always
// re-validates the whole request.
func ValidateCreateEventRequest(r CreateEventRequest, now time.Time) Result {
	errs := map[string]string{}
	errs = merge(errs, ValidateBasicInfo(r.BasicInfoStep).Errors)
	errs = merge(errs, ValidateDateVenue(r.DateVenueStep, now).Errors)
	errs = merge(errs, ValidateBudgetAttendance(r.BudgetAttendanceStep).Errors)
	errs = merge(errs, ValidateModelsCasting(r.ModelsCastingStep).Errors)
	errs = merge(errs, ValidateSponsors(r.SponsorsStep).Errors)
	errs = merge(errs, ValidateDeliverables(r.DeliverablesStep).Errors)
	return failed(errs)
}
