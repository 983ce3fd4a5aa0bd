package timeclock

import (
	"fmt"
	"strings"

	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PunchRequest struct {
	Type      string   `json:"type"`
	Timestamp *string  `json:"timestamp,omitempty"` // RFC3339, defaults to now
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func punchTypeList() string {
	var names []string
	for _, t := range ValidPunchTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !PunchType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("type must be one of: %s", punchTypeList()),
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Type         string   `json:"type"`
	Timestamp    string   `json:"timestamp"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

type PunchFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 200",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CorrectPunchRequest is the administrative fix-up of a recorded punch.
// Only the timestamp and notes may change.
type CorrectPunchRequest struct {
	ID        string  `json:"-"`
	Timestamp *string `json:"timestamp,omitempty"` // RFC3339
	Notes     *string `json:"notes,omitempty"`
}

func (r *CorrectPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp == nil && r.Notes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "at least one of timestamp or notes must be provided",
		})
	}

	if r.Timestamp != nil {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatusResponse struct {
	State                 string         `json:"state"`
	LastPunch             *PunchResponse `json:"last_punch,omitempty"`
	CurrentSessionMinutes *float64       `json:"current_session_minutes,omitempty"`
	MealBreakReminderDue  bool           `json:"meal_break_reminder_due"`
	AllowedNext           []string       `json:"allowed_next"`
}

type HoursSummaryResponse struct {
	EmployeeID  string          `json:"employee_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	WorkedHours decimal.Decimal `json:"worked_hours"`
}

type ListPunchesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Punches    []PunchResponse `json:"punches"`
}
