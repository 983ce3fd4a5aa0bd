package payroll

import "context"

type PayrollService interface {
	// CreateRun opens a draft run after checking the period against
	// existing runs for overlap.
	CreateRun(ctx context.Context, req CreateRunRequest) (RunResponse, error)

	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, filter ListRunsFilter) (ListRunsResponse, error)

	// CalculateRun computes every active employee's stub from the
	// period's punches and returns the preview with run-wide totals.
	// Nothing is persisted; the run must be in draft and calling again is
	// free.
	CalculateRun(ctx context.Context, id string) (RunCalculationResponse, error)

	// ProcessRun finalizes a draft run: within one transaction it locks
	// the run row, re-checks draft status, calculates and persists the
	// stubs, and marks the run completed with its total cost. After
	// commit, employees are notified.
	ProcessRun(ctx context.Context, id string) (RunResponse, error)

	// UpdateRunStatus applies a manual status change, constrained to the
	// legal transition table.
	UpdateRunStatus(ctx context.Context, req UpdateRunStatusRequest) (RunResponse, error)

	// DeleteRun removes a draft run and its stubs. Non-draft runs cannot
	// be deleted.
	DeleteRun(ctx context.Context, id string) error

	GetPayStub(ctx context.Context, id string) (PayStubResponse, error)
	ListRunPayStubs(ctx context.Context, runID string) ([]PayStubResponse, error)
	ListEmployeePayStubs(ctx context.Context, employeeID string, year *int) ([]PayStubResponse, error)

	// UpdatePayStub edits other_deductions/notes and re-derives the
	// stub's totals. Stubs of completed runs are locked.
	UpdatePayStub(ctx context.Context, req UpdatePayStubRequest) (PayStubResponse, error)

	// DeletePayStub removes a single stub. Stubs of completed runs are
	// locked.
	DeletePayStub(ctx context.Context, id string) error

	// PayStubPDF renders a stub as a downloadable PDF document.
	PayStubPDF(ctx context.Context, id string) ([]byte, string, error)
}
