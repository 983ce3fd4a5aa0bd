package payroll

import (
	"time"

	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRunRequest struct {
	PeriodStart string  `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string  `json:"period_end"`   // YYYY-MM-DD
	PayDate     string  `json:"pay_date"`     // YYYY-MM-DD
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	var periodStart, periodEnd, payDate time.Time

	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start is required",
		})
	} else {
		parsed, valid := validator.IsValidDate(r.PeriodStart)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "period_start",
				Message: "period_start must be in YYYY-MM-DD format",
			})
		}
		periodStart = parsed
	}

	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end is required",
		})
	} else {
		parsed, valid := validator.IsValidDate(r.PeriodEnd)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "period_end",
				Message: "period_end must be in YYYY-MM-DD format",
			})
		}
		periodEnd = parsed
	}

	if validator.IsEmpty(r.PayDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_date",
			Message: "pay_date is required",
		})
	} else {
		parsed, valid := validator.IsValidDate(r.PayDate)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "pay_date",
				Message: "pay_date must be in YYYY-MM-DD format",
			})
		}
		payDate = parsed
	}

	if !periodStart.IsZero() && !periodEnd.IsZero() && !periodEnd.After(periodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be after period_start",
		})
	}

	if !periodEnd.IsZero() && !payDate.IsZero() && payDate.Before(periodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_date",
			Message: "pay_date must not be before period_end",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRunStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateRunStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRunsFilter struct {
	Status *string `json:"status,omitempty"`
	Year   *int    `json:"year,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListRunsFilter) Validate() error {
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
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status != "" {
		if _, valid := NormalizeStatus(*f.Status); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status is not a recognized payroll run status",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePayStubRequest adjusts a stub's non-computed fields. Stubs of
// completed runs are locked; void the run first to make corrections.
type UpdatePayStubRequest struct {
	ID              string           `json:"-"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

func (r *UpdatePayStubRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OtherDeductions == nil && r.Notes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "other_deductions",
			Message: "at least one of other_deductions or notes must be provided",
		})
	}

	if r.OtherDeductions != nil && r.OtherDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "other_deductions",
			Message: "other_deductions must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RunResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	PayDate     string          `json:"pay_date"`
	Status      string          `json:"status"`
	Notes       *string         `json:"notes,omitempty"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	CreatedBy   string          `json:"created_by"`
	ProcessedBy *string         `json:"processed_by,omitempty"`
	ProcessedAt *string         `json:"processed_at,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ListRunsResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Runs       []RunResponse `json:"runs"`
}

type PayStubResponse struct {
	ID              string          `json:"id"`
	PayrollRunID    string          `json:"payroll_run_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeEmail   *string         `json:"employee_email,omitempty"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	FederalTax      decimal.Decimal `json:"federal_tax"`
	StateTax        decimal.Decimal `json:"state_tax"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	Medicare        decimal.Decimal `json:"medicare"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// RunTotals aggregates a run's stubs for the calculation summary.
type RunTotals struct {
	EmployeeCount   int             `json:"employee_count"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

type RunCalculationResponse struct {
	Run    RunResponse       `json:"run"`
	Totals RunTotals         `json:"totals"`
	Stubs  []PayStubResponse `json:"stubs"`
}
