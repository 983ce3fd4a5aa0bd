package timeclock

import (
	"fmt"
	"sort"
	"time"
)

// SequenceRules are the timing guards applied on top of the transition
// table. Zero values disable the corresponding guard.
type SequenceRules struct {
	// MinimumShift rejects a clock_out earlier than this after the
	// session's clock_in.
	MinimumShift time.Duration
	// DuplicateWindow rejects a punch whose type matches the employee's
	// most recent punch of the same type within +/- this window.
	DuplicateWindow time.Duration
}

// transitions maps the day's most recent punch type to the types legal next.
var transitions = map[PunchType][]PunchType{
	PunchClockIn:    {PunchLunchStart, PunchBreakStart, PunchClockOut},
	PunchLunchStart: {PunchLunchEnd},
	PunchLunchEnd:   {PunchLunchStart, PunchBreakStart, PunchClockOut},
	PunchBreakStart: {PunchBreakEnd},
	PunchBreakEnd:   {PunchLunchStart, PunchBreakStart, PunchClockOut},
	PunchClockOut:   {PunchClockIn},
}

// AllowedNext returns the punch types legal after last. A nil last means
// nothing has been recorded yet today and only clock_in is allowed.
func AllowedNext(last *PunchType) []PunchType {
	if last == nil {
		return []PunchType{PunchClockIn}
	}
	return transitions[*last]
}

// ValidateNext checks whether punching next at the given time is legal for
// the day's existing punches. It enforces the transition table, the
// duplicate-submission guard and the minimum-shift rule, in that order.
func ValidateNext(dayPunches []Punch, next PunchType, at time.Time, rules SequenceRules) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPunchType, next)
	}

	sorted := sortedByTime(dayPunches)

	var last *PunchType
	if len(sorted) > 0 {
		last = &sorted[len(sorted)-1].Type
	}
	if !containsType(AllowedNext(last), next) {
		if last == nil {
			return fmt.Errorf("%w: the day must start with clock_in, got %s", ErrIllegalPunchSequence, next)
		}
		return fmt.Errorf("%w: cannot %s after %s", ErrIllegalPunchSequence, next, *last)
	}

	if rules.DuplicateWindow > 0 {
		for i := len(sorted) - 1; i >= 0; i-- {
			if sorted[i].Type != next {
				continue
			}
			if absDuration(at.Sub(sorted[i].Timestamp)) <= rules.DuplicateWindow {
				return fmt.Errorf("%w: %s already recorded at %s", ErrDuplicatePunch, next, sorted[i].Timestamp.Format(time.RFC3339))
			}
			break
		}
	}

	if next == PunchClockOut && rules.MinimumShift > 0 {
		if start, open := OpenSessionStart(sorted); open && at.Sub(start) < rules.MinimumShift {
			return fmt.Errorf("%w: minimum shift length is %s", ErrShiftTooShort, rules.MinimumShift)
		}
	}

	return nil
}

// ValidateDay replays the whole day through the transition table. Used after
// an administrative timestamp correction, which can reorder punches.
func ValidateDay(dayPunches []Punch) error {
	sorted := sortedByTime(dayPunches)

	var last *PunchType
	for i := range sorted {
		if !containsType(AllowedNext(last), sorted[i].Type) {
			if last == nil {
				return fmt.Errorf("%w: the day must start with clock_in, got %s", ErrIllegalPunchSequence, sorted[i].Type)
			}
			return fmt.Errorf("%w: cannot %s after %s", ErrIllegalPunchSequence, sorted[i].Type, *last)
		}
		last = &sorted[i].Type
	}

	return nil
}

// DayState derives the state-machine position from the day's last punch.
func DayState(dayPunches []Punch) SessionState {
	sorted := sortedByTime(dayPunches)
	if len(sorted) == 0 {
		return StateNone
	}

	switch sorted[len(sorted)-1].Type {
	case PunchClockIn, PunchLunchEnd, PunchBreakEnd:
		return StateClockedIn
	case PunchLunchStart:
		return StateOnLunch
	case PunchBreakStart:
		return StateOnBreak
	default:
		return StateClockedOut
	}
}

// OpenSessionStart returns the clock_in timestamp of the currently open
// session, if any.
func OpenSessionStart(dayPunches []Punch) (time.Time, bool) {
	var start time.Time
	open := false
	for _, p := range sortedByTime(dayPunches) {
		switch p.Type {
		case PunchClockIn:
			start, open = p.Timestamp, true
		case PunchClockOut:
			open = false
		}
	}
	return start, open
}

// MealBreakReminderDue reports whether the employee has been clocked in for
// at least threshold without any lunch punch today.
func MealBreakReminderDue(dayPunches []Punch, now time.Time, threshold time.Duration) bool {
	if threshold <= 0 {
		return false
	}
	for _, p := range dayPunches {
		if p.Type == PunchLunchStart || p.Type == PunchLunchEnd {
			return false
		}
	}
	start, open := OpenSessionStart(dayPunches)
	return open && now.Sub(start) >= threshold
}

func sortedByTime(punches []Punch) []Punch {
	sorted := make([]Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func containsType(types []PunchType, t PunchType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
