package timeclock

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayHours is the outcome of scanning one employee's punches for one day.
type DayHours struct {
	// WorkedHours counts completed sessions only, net of lunch and break
	// time, rounded to 2 decimal places.
	WorkedHours decimal.Decimal
	// OpenSessionStart is the clock_in of a session that has no clock_out
	// yet. The open session contributes nothing to WorkedHours; live
	// status reports its running duration separately.
	OpenSessionStart *time.Time
}

// HoursForDay scans one day of punches in timestamp order, accruing worked
// time between clock_in/resume markers and break/clock_out boundaries.
// Punches outside a valid accrual context (a stray lunch_end with no open
// break, a clock_out with no session) are ignored rather than rejected;
// historical data predating sequence enforcement contains such rows.
func HoursForDay(dayPunches []Punch) DayHours {
	sorted := sortedByTime(dayPunches)

	var completedMinutes float64
	var sessionMinutes float64
	var marker *time.Time
	var sessionStart *time.Time
	inSession := false

	for i := range sorted {
		ts := sorted[i].Timestamp
		switch sorted[i].Type {
		case PunchClockIn:
			if inSession {
				continue
			}
			inSession = true
			sessionMinutes = 0
			sessionStart = &sorted[i].Timestamp
			marker = &sorted[i].Timestamp

		case PunchLunchStart, PunchBreakStart:
			if marker != nil {
				sessionMinutes += ts.Sub(*marker).Minutes()
				marker = nil
			}

		case PunchLunchEnd, PunchBreakEnd:
			if inSession && marker == nil {
				marker = &sorted[i].Timestamp
			}

		case PunchClockOut:
			if !inSession {
				continue
			}
			if marker != nil {
				sessionMinutes += ts.Sub(*marker).Minutes()
				marker = nil
			}
			completedMinutes += sessionMinutes
			sessionMinutes = 0
			inSession = false
			sessionStart = nil
		}
	}

	result := DayHours{WorkedHours: hoursFromMinutes(completedMinutes)}
	if inSession {
		result.OpenSessionStart = sessionStart
	}
	return result
}

// HoursForRange groups punches by calendar day (UTC), applies HoursForDay to
// each and sums the rounded per-day figures.
func HoursForRange(punches []Punch) decimal.Decimal {
	byDay := make(map[string][]Punch)
	for _, p := range punches {
		day := p.Timestamp.UTC().Format("2006-01-02")
		byDay[day] = append(byDay[day], p)
	}

	total := decimal.Zero
	for _, dayPunches := range byDay {
		total = total.Add(HoursForDay(dayPunches).WorkedHours)
	}
	return total
}

func hoursFromMinutes(minutes float64) decimal.Decimal {
	return decimal.NewFromFloat(minutes / 60).Round(2)
}
