package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/company"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/notification"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID = "co-1"
	testAdminID   = "user-admin"
)

// passthroughTransactor runs the function directly; most tests never fail
// mid-transaction, so there is nothing to roll back.
type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// rollbackTransactor snapshots the in-memory repos before running the
// function and restores them when it fails, the way a real transaction
// discards partial writes on rollback.
type rollbackTransactor struct {
	runs  *fakeRunRepo
	stubs *fakeStubRepo
}

func (tx *rollbackTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	runs := make(map[string]payroll.PayrollRun, len(tx.runs.runs))
	for id, run := range tx.runs.runs {
		runs[id] = run
	}
	stubs := append([]payroll.PayStub(nil), tx.stubs.stubs...)
	stubNextID := tx.stubs.nextID

	if err := fn(ctx); err != nil {
		tx.runs.runs = runs
		tx.stubs.stubs = stubs
		tx.stubs.nextID = stubNextID
		return err
	}
	return nil
}

type fakeRunRepo struct {
	runs   map[string]payroll.PayrollRun
	nextID int
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]payroll.PayrollRun)}
}

func (r *fakeRunRepo) Create(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	r.nextID++
	run.ID = fmt.Sprintf("run-%d", r.nextID)
	run.CreatedAt = time.Now()
	run.UpdatedAt = run.CreatedAt
	r.runs[run.ID] = run
	return run, nil
}

func (r *fakeRunRepo) GetByID(ctx context.Context, id, companyID string) (payroll.PayrollRun, error) {
	run, ok := r.runs[id]
	if !ok || run.CompanyID != companyID {
		return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
	}
	return run, nil
}

func (r *fakeRunRepo) GetByIDForUpdate(ctx context.Context, id, companyID string) (payroll.PayrollRun, error) {
	return r.GetByID(ctx, id, companyID)
}

func (r *fakeRunRepo) List(ctx context.Context, companyID string, filter payroll.ListRunsFilter) ([]payroll.PayrollRun, int64, error) {
	var runs []payroll.PayrollRun
	for _, run := range r.runs {
		if run.CompanyID != companyID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" {
			if status, _ := payroll.NormalizeStatus(*filter.Status); run.Status != status {
				continue
			}
		}
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
	return runs, int64(len(runs)), nil
}

func (r *fakeRunRepo) CountOverlapping(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID string) (int64, error) {
	var count int64
	for _, run := range r.runs {
		if run.CompanyID != companyID || run.Status == payroll.RunStatusCancelled {
			continue
		}
		if excludeID != "" && run.ID == excludeID {
			continue
		}
		if !run.PeriodStart.After(periodEnd) && !run.PeriodEnd.Before(periodStart) {
			count++
		}
	}
	return count, nil
}

func (r *fakeRunRepo) UpdateStatus(ctx context.Context, id, companyID string, status payroll.RunStatus) error {
	run, err := r.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	run.Status = status
	r.runs[id] = run
	return nil
}

func (r *fakeRunRepo) MarkCompleted(ctx context.Context, id, companyID string, processedBy string, totalCost decimal.Decimal, processedAt time.Time) error {
	run, err := r.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	run.Status = payroll.RunStatusCompleted
	run.TotalCost = totalCost
	run.ProcessedBy = &processedBy
	run.ProcessedAt = &processedAt
	r.runs[id] = run
	return nil
}

func (r *fakeRunRepo) Delete(ctx context.Context, id, companyID string) error {
	if _, err := r.GetByID(ctx, id, companyID); err != nil {
		return err
	}
	delete(r.runs, id)
	return nil
}

type fakeStubRepo struct {
	stubs  []payroll.PayStub
	nextID int

	// createBatchErr, when set, fails CreateBatch after the first stub has
	// already been written, like a mid-batch insert error.
	createBatchErr error
}

func (r *fakeStubRepo) CreateBatch(ctx context.Context, stubs []payroll.PayStub) error {
	for i, s := range stubs {
		if r.createBatchErr != nil && i > 0 {
			return r.createBatchErr
		}
		r.nextID++
		s.ID = fmt.Sprintf("stub-%d", r.nextID)
		s.CreatedAt = time.Now()
		s.UpdatedAt = s.CreatedAt
		r.stubs = append(r.stubs, s)
	}
	return nil
}

func (r *fakeStubRepo) GetByID(ctx context.Context, id, companyID string) (payroll.PayStub, error) {
	for _, s := range r.stubs {
		if s.ID == id && s.CompanyID == companyID {
			return s, nil
		}
	}
	return payroll.PayStub{}, payroll.ErrPayStubNotFound
}

func (r *fakeStubRepo) ListByRunID(ctx context.Context, runID, companyID string) ([]payroll.PayStub, error) {
	var out []payroll.PayStub
	for _, s := range r.stubs {
		if s.PayrollRunID == runID && s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStubRepo) ListByEmployeeID(ctx context.Context, employeeID, companyID string, year *int) ([]payroll.PayStub, error) {
	var out []payroll.PayStub
	for _, s := range r.stubs {
		if s.EmployeeID == employeeID && s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStubRepo) Update(ctx context.Context, stub payroll.PayStub) error {
	for i, s := range r.stubs {
		if s.ID == stub.ID {
			r.stubs[i] = stub
			return nil
		}
	}
	return payroll.ErrPayStubNotFound
}

func (r *fakeStubRepo) Delete(ctx context.Context, id, companyID string) error {
	for i, s := range r.stubs {
		if s.ID == id && s.CompanyID == companyID {
			r.stubs = append(r.stubs[:i], r.stubs[i+1:]...)
			return nil
		}
	}
	return payroll.ErrPayStubNotFound
}

func (r *fakeStubRepo) DeleteByRunID(ctx context.Context, runID, companyID string) error {
	kept := r.stubs[:0]
	for _, s := range r.stubs {
		if s.PayrollRunID != runID || s.CompanyID != companyID {
			kept = append(kept, s)
		}
	}
	r.stubs = kept
	return nil
}

type fakePunchRepo struct {
	punches []timeclock.Punch
}

func (r *fakePunchRepo) Create(ctx context.Context, p timeclock.Punch) (timeclock.Punch, error) {
	r.punches = append(r.punches, p)
	return p, nil
}

func (r *fakePunchRepo) GetByID(ctx context.Context, id, companyID string) (timeclock.Punch, error) {
	return timeclock.Punch{}, timeclock.ErrPunchNotFound
}

func (r *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]timeclock.Punch, error) {
	var out []timeclock.Punch
	for _, p := range r.punches {
		if p.EmployeeID == employeeID && p.CompanyID == companyID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePunchRepo) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]timeclock.Punch, error) {
	var out []timeclock.Punch
	for _, p := range r.punches {
		if p.CompanyID == companyID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *fakePunchRepo) List(ctx context.Context, companyID string, filter timeclock.PunchFilter) ([]timeclock.Punch, int64, error) {
	return nil, 0, nil
}

func (r *fakePunchRepo) Update(ctx context.Context, p timeclock.Punch) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id, companyID string) error {
	return nil
}

func (r *fakeEmployeeRepo) LockByID(ctx context.Context, id, companyID string) error {
	if _, err := r.GetByID(ctx, id, companyID); err != nil {
		return err
	}
	return nil
}

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	return c, nil
}

func (fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	return company.Company{ID: id, Name: "Acme Staffing"}, nil
}

// recordingNotifier captures NotifyBatch calls for assertions.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (n *recordingNotifier) NotifyBatch(ctx context.Context, messages []notification.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, messages...)
}

func (n *recordingNotifier) List(ctx context.Context, filter notification.ListFilter) (notification.ListResponse, error) {
	return notification.ListResponse{}, nil
}

func (n *recordingNotifier) MarkRead(ctx context.Context, id string) error { return nil }

func (n *recordingNotifier) MarkAllRead(ctx context.Context) error { return nil }

func (n *recordingNotifier) sent() []notification.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification.Message(nil), n.messages...)
}

// recordingEmailService must be safe for concurrent use: pay-stub emails go
// out on a background goroutine.
type recordingEmailService struct {
	mu   sync.Mutex
	sent []string
}

func (s *recordingEmailService) SendPayStubIssued(to, employeeName, companyName, periodStart, periodEnd, payDate, netPay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    testAdminID,
		"company_id": testCompanyID,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type testEnv struct {
	svc      *PayrollServiceImpl
	runs     *fakeRunRepo
	stubs    *fakeStubRepo
	punches  *fakePunchRepo
	roster   *fakeEmployeeRepo
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		runs:     newFakeRunRepo(),
		stubs:    &fakeStubRepo{},
		punches:  &fakePunchRepo{},
		roster:   &fakeEmployeeRepo{},
		notifier: &recordingNotifier{},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPayrollService(
		passthroughTransactor{},
		env.runs,
		env.stubs,
		env.punches,
		env.roster,
		fakeCompanyRepo{},
		env.notifier,
		&recordingEmailService{},
		40,
		logger,
	)

	env.svc = svc.(*PayrollServiceImpl)
	env.svc.now = func() time.Time {
		return time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	}
	return env
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// seedRoster adds one hourly employee with punches and one without any.
func (env *testEnv) seedRoster() {
	env.roster.employees = []employee.Employee{
		{
			ID:         "emp-1",
			CompanyID:  testCompanyID,
			UserID:     strPtr("user-emp1"),
			FullName:   "Dana Smith",
			Email:      "dana@acme.test",
			HourlyRate: decPtr("10"),
			IsActive:   true,
		},
		{
			ID:        "emp-2",
			CompanyID: testCompanyID,
			FullName:  "Lee Wong",
			Email:     "lee@acme.test",
			IsActive:  true,
		},
	}

	// One full day for emp-1: 09:00 to 17:00 on March 10th.
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	env.punches.punches = []timeclock.Punch{
		{ID: "p-1", EmployeeID: "emp-1", CompanyID: testCompanyID, Type: timeclock.PunchClockIn, Timestamp: day.Add(9 * time.Hour)},
		{ID: "p-2", EmployeeID: "emp-1", CompanyID: testCompanyID, Type: timeclock.PunchClockOut, Timestamp: day.Add(17 * time.Hour)},
	}
}

func (env *testEnv) createDraftRun(t *testing.T, ctx context.Context) payroll.RunResponse {
	t.Helper()
	run, err := env.svc.CreateRun(ctx, payroll.CreateRunRequest{
		PeriodStart: "2025-03-10",
		PeriodEnd:   "2025-03-14",
		PayDate:     "2025-03-20",
	})
	require.NoError(t, err)
	return run
}

func TestCreateRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)

	run := env.createDraftRun(t, ctx)

	assert.Equal(t, "draft", run.Status)
	assert.Equal(t, testAdminID, run.CreatedBy)
	assert.Equal(t, "2025-03-10", run.PeriodStart)
	assert.Nil(t, run.ProcessedAt)
}

func TestCreateRun_RejectsOverlappingPeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	env.createDraftRun(t, ctx)

	_, err := env.svc.CreateRun(ctx, payroll.CreateRunRequest{
		PeriodStart: "2025-03-14",
		PeriodEnd:   "2025-03-21",
		PayDate:     "2025-03-28",
	})
	assert.ErrorIs(t, err, payroll.ErrRunPeriodOverlap)

	// An adjacent, non-overlapping period is fine.
	_, err = env.svc.CreateRun(ctx, payroll.CreateRunRequest{
		PeriodStart: "2025-03-15",
		PeriodEnd:   "2025-03-21",
		PayDate:     "2025-03-28",
	})
	assert.NoError(t, err)
}

func TestCreateRun_RejectsZeroLengthPeriod(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)

	// The pay period must span at least one day.
	_, err := env.svc.CreateRun(ctx, payroll.CreateRunRequest{
		PeriodStart: "2025-03-10",
		PeriodEnd:   "2025-03-10",
		PayDate:     "2025-03-20",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, env.runs.runs)
}

func TestCalculateRun(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	result, err := env.svc.CalculateRun(ctx, run.ID)
	require.NoError(t, err)

	// Every active employee gets a stub, punches or not.
	require.Len(t, result.Stubs, 2)
	assert.Equal(t, 2, result.Totals.EmployeeCount)

	byEmployee := map[string]payroll.PayStubResponse{}
	for _, stub := range result.Stubs {
		byEmployee[stub.EmployeeID] = stub
	}

	// emp-1 worked 8 hours at $10/hr.
	worked := byEmployee["emp-1"]
	assert.Equal(t, "8", worked.RegularHours.String())
	assert.Equal(t, "80", worked.GrossPay.String())
	assert.Equal(t, "19.72", worked.TotalDeductions.String())
	assert.Equal(t, "60.28", worked.NetPay.String())

	idle := byEmployee["emp-2"]
	assert.True(t, idle.GrossPay.IsZero())
	assert.True(t, idle.NetPay.IsZero())

	assert.Equal(t, "80", result.Totals.GrossPay.String())
	assert.Equal(t, "60.28", result.Totals.NetPay.String())

	// The preview never touches storage.
	assert.Empty(t, env.stubs.stubs)
}

func TestCalculateRun_RepeatedCallsAgree(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	first, err := env.svc.CalculateRun(ctx, run.ID)
	require.NoError(t, err)
	second, err := env.svc.CalculateRun(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, env.stubs.stubs)
}

func TestCalculateRun_NonDraftRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	_, err = env.svc.CalculateRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotDraft)
}

func TestCalculateRun_NoActiveEmployees(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.CalculateRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrNoActiveEmployees)
}

func TestProcessRun(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	processed, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, "completed", processed.Status)
	require.NotNil(t, processed.ProcessedAt)
	assert.Equal(t, "2025-03-20T10:00:00Z", *processed.ProcessedAt)
	require.NotNil(t, processed.ProcessedBy)
	assert.Equal(t, testAdminID, *processed.ProcessedBy)

	// Total cost is the sum of net pay across the run's stubs.
	assert.Equal(t, "60.28", processed.TotalCost.String())

	stored, err := env.stubs.ListByRunID(context.Background(), run.ID, testCompanyID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// One completion notice for the admin, one stub notice for emp-1's user.
	// emp-2 has no linked account, so no message for them.
	sent := env.notifier.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, testAdminID, sent[0].UserID)
	assert.Equal(t, notification.TypePayrollRunCompleted, sent[0].Type)
	assert.Equal(t, "user-emp1", sent[1].UserID)
	assert.Equal(t, notification.TypePayStubIssued, sent[1].Type)
}

func TestProcessRun_SecondAttemptRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	_, err = env.svc.ProcessRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotDraft)
}

func TestProcessRun_RollsBackWhenStubInsertFails(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	env.svc.transactor = &rollbackTransactor{runs: env.runs, stubs: env.stubs}
	env.stubs.createBatchErr = errors.New("insert failed")

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.Error(t, err)

	// The failed transaction leaves nothing behind: no stubs, run still
	// draft, nobody notified.
	stored, err := env.runs.GetByID(context.Background(), run.ID, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, payroll.RunStatusDraft, stored.Status)
	assert.Nil(t, stored.ProcessedAt)
	assert.Empty(t, env.stubs.stubs)
	assert.Empty(t, env.notifier.sent())
}

func TestUpdateRunStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	updated, err := env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: run.ID, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)

	// Cancelled is terminal.
	_, err = env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: run.ID, Status: "draft"})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
}

func TestUpdateRunStatus_PendingAliasesDraft(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	require.NoError(t, env.runs.UpdateStatus(context.Background(), run.ID, testCompanyID, payroll.RunStatusProcessing))

	// processing -> draft is illegal, and "pending" means draft.
	_, err := env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: run.ID, Status: "pending"})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
}

func TestUpdateRunStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: run.ID, Status: "archived"})
	assert.ErrorIs(t, err, payroll.ErrUnknownRunStatus)
}

func TestDeleteRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	require.NoError(t, env.svc.DeleteRun(ctx, run.ID))

	_, err := env.svc.GetRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRunNotFound)
}

func TestDeleteRun_NonDraftRejected(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.DeleteRun(ctx, run.ID), payroll.ErrRunNotDraft)
}

// processAndVoidRun processes a run and then marks it failed, which is the
// path that unlocks its stubs for corrections.
func (env *testEnv) processAndVoidRun(t *testing.T, ctx context.Context, runID string) {
	t.Helper()
	_, err := env.svc.ProcessRun(ctx, runID)
	require.NoError(t, err)
	_, err = env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: runID, Status: "failed"})
	require.NoError(t, err)
}

func (env *testEnv) stubForEmployee(t *testing.T, runID, employeeID string) payroll.PayStub {
	t.Helper()
	stored, err := env.stubs.ListByRunID(context.Background(), runID, testCompanyID)
	require.NoError(t, err)
	for _, s := range stored {
		if s.EmployeeID == employeeID {
			return s
		}
	}
	t.Fatalf("no stub for employee %s", employeeID)
	return payroll.PayStub{}
}

func TestUpdatePayStub_RecomputesDerivedTotals(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	env.processAndVoidRun(t, ctx, run.ID)
	stub := env.stubForEmployee(t, run.ID, "emp-1")

	updated, err := env.svc.UpdatePayStub(ctx, payroll.UpdatePayStubRequest{
		ID:              stub.ID,
		OtherDeductions: decPtr("10"),
	})
	require.NoError(t, err)

	// Gross 80: taxes 19.72 plus the $10 adjustment.
	assert.Equal(t, "10", updated.OtherDeductions.String())
	assert.Equal(t, "29.72", updated.TotalDeductions.String())
	assert.Equal(t, "50.28", updated.NetPay.String())
}

func TestUpdatePayStub_LockedAfterProcessing(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	stored, err := env.stubs.ListByRunID(context.Background(), run.ID, testCompanyID)
	require.NoError(t, err)
	require.NotEmpty(t, stored)

	_, err = env.svc.UpdatePayStub(ctx, payroll.UpdatePayStubRequest{
		ID:              stored[0].ID,
		OtherDeductions: decPtr("5"),
	})
	assert.ErrorIs(t, err, payroll.ErrRunCompletedStubLocked)
}

func TestDeletePayStub(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	env.processAndVoidRun(t, ctx, run.ID)
	stub := env.stubForEmployee(t, run.ID, "emp-2")

	require.NoError(t, env.svc.DeletePayStub(ctx, stub.ID))

	_, err := env.svc.GetPayStub(ctx, stub.ID)
	assert.ErrorIs(t, err, payroll.ErrPayStubNotFound)
}

func TestDeletePayStub_LockedWhileRunCompleted(t *testing.T) {
	env := newTestEnv(t)
	env.seedRoster()
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	stub := env.stubForEmployee(t, run.ID, "emp-1")
	assert.ErrorIs(t, env.svc.DeletePayStub(ctx, stub.ID), payroll.ErrRunCompletedStubLocked)
}

func TestListRuns_FiltersByStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := adminContext(t)
	run := env.createDraftRun(t, ctx)

	_, err := env.svc.CreateRun(ctx, payroll.CreateRunRequest{
		PeriodStart: "2025-03-17",
		PeriodEnd:   "2025-03-21",
		PayDate:     "2025-03-28",
	})
	require.NoError(t, err)

	_, err = env.svc.UpdateRunStatus(ctx, payroll.UpdateRunStatusRequest{ID: run.ID, Status: "cancelled"})
	require.NoError(t, err)

	status := "cancelled"
	resp, err := env.svc.ListRuns(ctx, payroll.ListRunsFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, run.ID, resp.Runs[0].ID)
	assert.Equal(t, int64(1), resp.TotalCount)
}
