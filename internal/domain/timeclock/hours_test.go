package timeclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoursForDay_FullShiftWithLunch(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchLunchStart, "13:00"),
		punchAt(t, PunchLunchEnd, "13:30"),
		punchAt(t, PunchClockOut, "17:30"),
	}

	result := HoursForDay(day)
	assert.Equal(t, "8", result.WorkedHours.String())
	assert.Nil(t, result.OpenSessionStart)
}

func TestHoursForDay_BreaksDeducted(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchBreakStart, "10:30"),
		punchAt(t, PunchBreakEnd, "10:45"),
		punchAt(t, PunchLunchStart, "12:00"),
		punchAt(t, PunchLunchEnd, "12:30"),
		punchAt(t, PunchClockOut, "17:00"),
	}

	// 8h span minus 15m break minus 30m lunch.
	result := HoursForDay(day)
	assert.Equal(t, "7.25", result.WorkedHours.String())
}

func TestHoursForDay_OpenSessionContributesNothing(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
	}

	result := HoursForDay(day)
	assert.True(t, result.WorkedHours.IsZero())
	if assert.NotNil(t, result.OpenSessionStart) {
		assert.Equal(t, at(t, "09:00"), *result.OpenSessionStart)
	}
}

func TestHoursForDay_CompletedPlusOpenSession(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "08:00"),
		punchAt(t, PunchClockOut, "12:00"),
		punchAt(t, PunchClockIn, "13:00"),
	}

	// Only the completed morning session counts.
	result := HoursForDay(day)
	assert.Equal(t, "4", result.WorkedHours.String())
	assert.NotNil(t, result.OpenSessionStart)
}

func TestHoursForDay_OpenLunchExcludedFromWorkedTime(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchLunchStart, "12:00"),
	}

	result := HoursForDay(day)
	assert.True(t, result.WorkedHours.IsZero())
	assert.NotNil(t, result.OpenSessionStart)
}

func TestHoursForDay_StrayPunchesIgnored(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchLunchEnd, "08:00"),
		punchAt(t, PunchClockOut, "08:30"),
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchClockOut, "11:00"),
	}

	result := HoursForDay(day)
	assert.Equal(t, "2", result.WorkedHours.String())
}

func TestHoursForDay_PartialHourRounding(t *testing.T) {
	day := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchClockOut, "09:20"),
	}

	// 20 minutes is 0.333... hours, stored as 0.33.
	result := HoursForDay(day)
	assert.Equal(t, "0.33", result.WorkedHours.String())
}

func TestHoursForRange_SumsPerDayFigures(t *testing.T) {
	punches := []Punch{
		punchAt(t, PunchClockIn, "09:00"),
		punchAt(t, PunchClockOut, "17:00"),
	}

	// A second day, four hours.
	nextDay := 24 * time.Hour
	punches = append(punches,
		Punch{EmployeeID: "emp-1", Type: PunchClockIn, Timestamp: at(t, "09:00").Add(nextDay)},
		Punch{EmployeeID: "emp-1", Type: PunchClockOut, Timestamp: at(t, "13:00").Add(nextDay)},
	)

	total := HoursForRange(punches)
	assert.Equal(t, "12", total.String())
}

func TestHoursForRange_Empty(t *testing.T) {
	assert.True(t, HoursForRange(nil).IsZero())
}
