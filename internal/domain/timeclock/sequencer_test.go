package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRules = SequenceRules{
	MinimumShift:    30 * time.Minute,
	DuplicateWindow: 2 * time.Minute,
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2025-03-10T"+clock+":00Z")
	require.NoError(t, err)
	return ts
}

func punchAt(t *testing.T, punchType PunchType, clock string) Punch {
	t.Helper()
	return Punch{
		ID:         string(punchType) + "-" + clock,
		EmployeeID: "emp-1",
		Type:       punchType,
		Timestamp:  at(t, clock),
	}
}

func TestValidateNext_DayMustStartWithClockIn(t *testing.T) {
	for _, punchType := range []PunchType{PunchClockOut, PunchLunchStart, PunchLunchEnd, PunchBreakStart, PunchBreakEnd} {
		err := ValidateNext(nil, punchType, at(t, "09:00"), testRules)
		assert.ErrorIs(t, err, ErrIllegalPunchSequence, "type %s", punchType)
	}

	err := ValidateNext(nil, PunchClockIn, at(t, "09:00"), testRules)
	assert.NoError(t, err)
}

func TestValidateNext_TransitionTable(t *testing.T) {
	cases := []struct {
		name    string
		day     []Punch
		next    PunchType
		nextAt  string
		wantErr error
	}{
		{
			name:   "clock out after clock in",
			day:    []Punch{punchAt(t, PunchClockIn, "09:00")},
			next:   PunchClockOut,
			nextAt: "17:00",
		},
		{
			name:    "double clock in",
			day:     []Punch{punchAt(t, PunchClockIn, "09:00")},
			next:    PunchClockIn,
			nextAt:  "09:30",
			wantErr: ErrIllegalPunchSequence,
		},
		{
			name: "lunch end without lunch start",
			day: []Punch{
				punchAt(t, PunchClockIn, "09:00"),
			},
			next:    PunchLunchEnd,
			nextAt:  "12:00",
			wantErr: ErrIllegalPunchSequence,
		},
		{
			name: "clock out during lunch",
			day: []Punch{
				punchAt(t, PunchClockIn, "09:00"),
				punchAt(t, PunchLunchStart, "12:00"),
			},
			next:    PunchClockOut,
			nextAt:  "12:30",
			wantErr: ErrIllegalPunchSequence,
		},
		{
			name: "break inside lunch",
			day: []Punch{
				punchAt(t, PunchClockIn, "09:00"),
				punchAt(t, PunchLunchStart, "12:00"),
			},
			next:    PunchBreakStart,
			nextAt:  "12:10",
			wantErr: ErrIllegalPunchSequence,
		},
		{
			name: "resume after break then clock out",
			day: []Punch{
				punchAt(t, PunchClockIn, "09:00"),
				punchAt(t, PunchBreakStart, "11:00"),
				punchAt(t, PunchBreakEnd, "11:15"),
			},
			next:   PunchClockOut,
			nextAt: "17:00",
		},
		{
			name: "new session after clock out",
			day: []Punch{
				punchAt(t, PunchClockIn, "09:00"),
				punchAt(t, PunchClockOut, "12:00"),
			},
			next:   PunchClockIn,
			nextAt: "13:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNext(tc.day, tc.next, at(t, tc.nextAt), testRules)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNext_UnknownType(t *testing.T) {
	err := ValidateNext(nil, PunchType("nap_start"), at(t, "09:00"), testRules)
	assert.ErrorIs(t, err, ErrUnknownPunchType)
}

func TestValidateNext_DuplicateWindow(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchBreakStart, "12:00"),
		punchAt(t, PunchBreakEnd, "12:01"),
	}

	// Second break_start two minutes after the first is a double submit.
	err := ValidateNext(day, PunchBreakStart, at(t, "12:02"), testRules)
	assert.ErrorIs(t, err, ErrDuplicatePunch)

	// Outside the window the same punch is a genuine second break.
	err = ValidateNext(day, PunchBreakStart, at(t, "12:10"), testRules)
	assert.NoError(t, err)
}

func TestValidateNext_MinimumShift(t *testing.T) {
	day := []Punch{punchAt(t, PunchClockIn, "09:00")}

	err := ValidateNext(day, PunchClockOut, at(t, "09:10"), testRules)
	assert.ErrorIs(t, err, ErrShiftTooShort)

	err = ValidateNext(day, PunchClockOut, at(t, "09:30"), testRules)
	assert.NoError(t, err)
}

func TestValidateNext_ZeroRulesDisableGuards(t *testing.T) {
	day := []Punch{punchAt(t, PunchClockIn, "09:00")}

	// Immediate clock out passes with no minimum shift configured.
	err := ValidateNext(day, PunchClockOut, at(t, "09:00"), SequenceRules{})
	assert.NoError(t, err)
}

func TestAllowedNext(t *testing.T) {
	assert.Equal(t, []PunchType{PunchClockIn}, AllowedNext(nil))

	lunch := PunchLunchStart
	assert.Equal(t, []PunchType{PunchLunchEnd}, AllowedNext(&lunch))

	out := PunchClockOut
	assert.Equal(t, []PunchType{PunchClockIn}, AllowedNext(&out))
}

func TestValidateDay(t *testing.T) {
	legal := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchLunchStart, "12:00"),
		punchAt(t, PunchLunchEnd, "12:30"),
		punchAt(t, PunchClockOut, "17:30"),
	}
	assert.NoError(t, ValidateDay(legal))

	// The same punches fed out of order still validate: replay sorts by
	// timestamp first.
	shuffled := []Punch{legal[3], legal[0], legal[2], legal[1]}
	assert.NoError(t, ValidateDay(shuffled))

	illegal := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchLunchEnd, "12:00"),
	}
	assert.ErrorIs(t, ValidateDay(illegal), ErrIllegalPunchSequence)
}

func TestDayState(t *testing.T) {
	assert.Equal(t, StateNone, DayState(nil))

	day := []Punch{punchAt(t, PunchClockIn, "09:00")}
	assert.Equal(t, StateClockedIn, DayState(day))

	day = append(day, punchAt(t, PunchLunchStart, "12:00"))
	assert.Equal(t, StateOnLunch, DayState(day))

	day = append(day, punchAt(t, PunchLunchEnd, "12:30"))
	assert.Equal(t, StateClockedIn, DayState(day))

	day = append(day, punchAt(t, PunchClockOut, "17:30"))
	assert.Equal(t, StateClockedOut, DayState(day))
}

func TestMealBreakReminderDue(t *testing.T) {
	threshold := 5 * time.Hour

	day := []Punch{punchAt(t, PunchClockIn, "09:00")}
	assert.False(t, MealBreakReminderDue(day, at(t, "13:00"), threshold))
	assert.True(t, MealBreakReminderDue(day, at(t, "14:00"), threshold))

	// Any lunch punch today suppresses the reminder.
	withLunch := append(day, punchAt(t, PunchLunchStart, "12:00"))
	assert.False(t, MealBreakReminderDue(withLunch, at(t, "15:00"), threshold))

	// A closed session never reminds.
	closed := append(day, punchAt(t, PunchClockOut, "15:00"))
	assert.False(t, MealBreakReminderDue(closed, at(t, "16:00"), threshold))
}
