package employee

import (
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	PositionID   *string          `json:"position_id,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	HireDate     *string          `json:"hire_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_rate",
			Message: "overtime_rate must not be negative",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	PositionID   *string          `json:"position_id,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.OvertimeRate != nil && r.OvertimeRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_rate",
			Message: "overtime_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreatePositionRequest struct {
	Name              string           `json:"name"`
	DefaultHourlyRate *decimal.Decimal `json:"default_hourly_rate,omitempty"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.DefaultHourlyRate != nil && r.DefaultHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "default_hourly_rate",
			Message: "default_hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID                string           `json:"id"`
	CompanyID         string           `json:"company_id"`
	Name              string           `json:"name"`
	DefaultHourlyRate *decimal.Decimal `json:"default_hourly_rate,omitempty"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	CompanyID    string           `json:"company_id"`
	PositionID   *string          `json:"position_id,omitempty"`
	PositionName *string          `json:"position_name,omitempty"`
	FullName     string           `json:"full_name"`
	Email        string           `json:"email"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeRate *decimal.Decimal `json:"overtime_rate,omitempty"`
	IsActive     bool             `json:"is_active"`
	HireDate     string           `json:"hire_date"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}
