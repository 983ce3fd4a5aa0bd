package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRunRepository defines data access methods for payroll runs.
type PayrollRunRepository interface {
	Create(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollRun, error)

	// GetByIDForUpdate locks the run row for the duration of the enclosing
	// transaction. Processing re-checks the status under this lock.
	GetByIDForUpdate(ctx context.Context, id string, companyID string) (PayrollRun, error)

	List(ctx context.Context, companyID string, filter ListRunsFilter) ([]PayrollRun, int64, error)

	// CountOverlapping counts non-cancelled runs whose period intersects
	// [periodStart, periodEnd], excluding excludeID if non-empty.
	CountOverlapping(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID string) (int64, error)

	UpdateStatus(ctx context.Context, id string, companyID string, status RunStatus) error

	// MarkCompleted sets completed status, the run's total cost and the
	// processed_by/processed_at audit fields in one statement.
	MarkCompleted(ctx context.Context, id string, companyID string, processedBy string, totalCost decimal.Decimal, processedAt time.Time) error

	Delete(ctx context.Context, id string, companyID string) error
}

// PayStubRepository defines data access methods for pay stubs.
type PayStubRepository interface {
	// CreateBatch inserts a run's stubs in one round trip.
	CreateBatch(ctx context.Context, stubs []PayStub) error

	GetByID(ctx context.Context, id string, companyID string) (PayStub, error)
	ListByRunID(ctx context.Context, runID string, companyID string) ([]PayStub, error)
	ListByEmployeeID(ctx context.Context, employeeID string, companyID string, year *int) ([]PayStub, error)
	Update(ctx context.Context, stub PayStub) error
	Delete(ctx context.Context, id string, companyID string) error
	DeleteByRunID(ctx context.Context, runID string, companyID string) error
}
