package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	UserID       *string
	PositionID   *string
	FullName     string
	Email        string
	HourlyRate   *decimal.Decimal
	OvertimeRate *decimal.Decimal
	IsActive     bool
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Joined fields
	PositionName       *string
	PositionHourlyRate *decimal.Decimal
}

// Position is the job-role master record. Its DefaultHourlyRate applies to
// employees without a rate override of their own.
type Position struct {
	ID                string
	CompanyID         string
	Name              string
	DefaultHourlyRate *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var overtimeMultiplier = decimal.NewFromFloat(1.5)

// EffectiveHourlyRate resolves the employee's own rate, falling back to the
// position default. An employee with neither earns zero; payroll does not
// treat that as an error.
func (e Employee) EffectiveHourlyRate() decimal.Decimal {
	if e.HourlyRate != nil && !e.HourlyRate.IsZero() {
		return *e.HourlyRate
	}
	if e.PositionHourlyRate != nil {
		return *e.PositionHourlyRate
	}
	return decimal.Zero
}

// EffectiveOvertimeRate resolves the overtime rate, defaulting to 1.5x the
// effective hourly rate when no override is set.
func (e Employee) EffectiveOvertimeRate() decimal.Decimal {
	if e.OvertimeRate != nil && !e.OvertimeRate.IsZero() {
		return *e.OvertimeRate
	}
	return e.EffectiveHourlyRate().Mul(overtimeMultiplier)
}
