package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
	RunStatusCancelled  RunStatus = "cancelled"
)

func ValidRunStatuses() []RunStatus {
	return []RunStatus{
		RunStatusDraft,
		RunStatusProcessing,
		RunStatusCompleted,
		RunStatusFailed,
		RunStatusCancelled,
	}
}

func (s RunStatus) Valid() bool {
	for _, v := range ValidRunStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// PayrollRun is a pay-period computation for a company. Runs progress
// draft -> processing -> completed; completed runs own immutable stubs.
type PayrollRun struct {
	ID          string
	CompanyID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time
	Status      RunStatus
	Notes       *string
	// TotalCost is the sum of net pay across the run's stubs, written when
	// the run is processed. Zero while the run is draft.
	TotalCost   decimal.Decimal
	CreatedBy   string
	ProcessedBy *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayStub is one employee's pay record within a run. Once the parent run
// is completed the stub is frozen.
type PayStub struct {
	ID                  string
	PayrollRunID        string
	EmployeeID          string
	CompanyID           string
	RegularHours        decimal.Decimal
	OvertimeHours       decimal.Decimal
	HourlyRate          decimal.Decimal
	OvertimeRate        decimal.Decimal
	GrossPay            decimal.Decimal
	FederalTax          decimal.Decimal
	StateTax            decimal.Decimal
	SocialSecurity      decimal.Decimal
	Medicare            decimal.Decimal
	OtherDeductions     decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetPay              decimal.Decimal
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined for listings.
	EmployeeName  *string
	EmployeeEmail *string
}
