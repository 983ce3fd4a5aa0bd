package timeclock

import "context"

type TimeClockService interface {
	// Punch records a time-clock event for the calling employee after
	// running it through the sequence validator.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// Status reports the calling employee's live state machine position,
	// current session duration and meal-break reminder flag.
	Status(ctx context.Context) (StatusResponse, error)

	MyPunches(ctx context.Context, filter PunchFilter) (ListPunchesResponse, error)
	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchesResponse, error)

	// CorrectPunch is the administrative timestamp/notes fix-up. The
	// affected day is re-validated against the sequence rules.
	CorrectPunch(ctx context.Context, req CorrectPunchRequest) (PunchResponse, error)

	// HoursSummary returns completed worked hours for one employee over a
	// date range.
	HoursSummary(ctx context.Context, employeeID, startDate, endDate string) (HoursSummaryResponse, error)
}
