package timeclock

import "time"

// PunchType is a single time-clock event kind.
type PunchType string

const (
	PunchClockIn    PunchType = "clock_in"
	PunchClockOut   PunchType = "clock_out"
	PunchLunchStart PunchType = "lunch_start"
	PunchLunchEnd   PunchType = "lunch_end"
	PunchBreakStart PunchType = "break_start"
	PunchBreakEnd   PunchType = "break_end"
)

// ValidPunchTypes returns every recognized punch type.
func ValidPunchTypes() []PunchType {
	return []PunchType{
		PunchClockIn,
		PunchClockOut,
		PunchLunchStart,
		PunchLunchEnd,
		PunchBreakStart,
		PunchBreakEnd,
	}
}

func (t PunchType) Valid() bool {
	for _, v := range ValidPunchTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Punch is one immutable time-clock event. Administrative correction may
// adjust Timestamp and Notes after the fact; everything else is fixed at
// creation and punches are never deleted.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       PunchType
	Timestamp  time.Time
	Latitude   *float64
	Longitude  *float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// SessionState is the employee's position in the punch state machine.
type SessionState string

const (
	StateNone       SessionState = "none"
	StateClockedIn  SessionState = "clocked_in"
	StateOnLunch    SessionState = "on_lunch"
	StateOnBreak    SessionState = "on_break"
	StateClockedOut SessionState = "clocked_out"
)
