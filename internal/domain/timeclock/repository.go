package timeclock

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punches.
// All methods include companyID parameter to prevent cross-company data access.
type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)
	GetByID(ctx context.Context, id string, companyID string) (Punch, error)

	// ListByEmployeeAndRange returns punches with from <= timestamp < to,
	// ordered by timestamp ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Punch, error)

	// ListByCompanyAndRange returns every employee's punches for the range
	// in one query; payroll calculation batches on it.
	ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]Punch, error)

	List(ctx context.Context, companyID string, filter PunchFilter) ([]Punch, int64, error)
	Update(ctx context.Context, p Punch) error
}
