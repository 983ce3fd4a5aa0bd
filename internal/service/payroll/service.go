package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/company"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/notification"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/email"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/pdf"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	transactor database.Transactor
	payroll.PayrollRunRepository
	payroll.PayStubRepository
	timeclock.PunchRepository
	employee.EmployeeRepository
	company.CompanyRepository

	notificationService notification.NotificationService
	emailService        email.EmailService

	overtimeThreshold decimal.Decimal

	logger *slog.Logger

	// now is swapped in tests.
	now func() time.Time
}

func NewPayrollService(
	transactor database.Transactor,
	runRepo payroll.PayrollRunRepository,
	stubRepo payroll.PayStubRepository,
	punchRepo timeclock.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	notificationService notification.NotificationService,
	emailService email.EmailService,
	overtimeThresholdHours float64,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		transactor:           transactor,
		PayrollRunRepository: runRepo,
		PayStubRepository:    stubRepo,
		PunchRepository:      punchRepo,
		EmployeeRepository:   employeeRepo,
		CompanyRepository:    companyRepo,
		notificationService:  notificationService,
		emailService:         emailService,
		overtimeThreshold:    decimal.NewFromFloat(overtimeThresholdHours),
		logger:               logger,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

type callerClaims struct {
	userID    string
	companyID string
}

func claimsFromContext(ctx context.Context) (callerClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	c := callerClaims{}
	if v, ok := claims["user_id"].(string); ok {
		c.userID = v
	}
	if v, ok := claims["company_id"].(string); ok {
		c.companyID = v
	}

	if c.companyID == "" {
		return callerClaims{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return c, nil
}

func toRunResponse(run payroll.PayrollRun) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:          run.ID,
		CompanyID:   run.CompanyID,
		PeriodStart: run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   run.PeriodEnd.Format("2006-01-02"),
		PayDate:     run.PayDate.Format("2006-01-02"),
		Status:      string(run.Status),
		Notes:       run.Notes,
		TotalCost:   run.TotalCost,
		CreatedBy:   run.CreatedBy,
		ProcessedBy: run.ProcessedBy,
		CreatedAt:   run.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   run.UpdatedAt.Format(time.RFC3339),
	}
	if run.ProcessedAt != nil {
		processedAt := run.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processedAt
	}
	return resp
}

func toStubResponse(s payroll.PayStub) payroll.PayStubResponse {
	createdAt, updatedAt := "", ""
	if !s.CreatedAt.IsZero() {
		createdAt = s.CreatedAt.Format(time.RFC3339)
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt = s.UpdatedAt.Format(time.RFC3339)
	}

	return payroll.PayStubResponse{
		ID:              s.ID,
		PayrollRunID:    s.PayrollRunID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		EmployeeEmail:   s.EmployeeEmail,
		RegularHours:    s.RegularHours,
		OvertimeHours:   s.OvertimeHours,
		HourlyRate:      s.HourlyRate,
		OvertimeRate:    s.OvertimeRate,
		GrossPay:        s.GrossPay,
		FederalTax:      s.FederalTax,
		StateTax:        s.StateTax,
		SocialSecurity:  s.SocialSecurity,
		Medicare:        s.Medicare,
		OtherDeductions: s.OtherDeductions,
		TotalDeductions: s.TotalDeductions,
		NetPay:          s.NetPay,
		Notes:           s.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// CreateRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	overlapping, err := s.PayrollRunRepository.CountOverlapping(ctx, claims.companyID, periodStart, periodEnd, "")
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if overlapping > 0 {
		return payroll.RunResponse{}, payroll.ErrRunPeriodOverlap
	}

	created, err := s.PayrollRunRepository.Create(ctx, payroll.PayrollRun{
		CompanyID:   claims.companyID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PayDate:     payDate,
		Status:      payroll.RunStatusDraft,
		Notes:       req.Notes,
		CreatedBy:   claims.userID,
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(created), nil
}

// GetRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, id, claims.companyID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(run), nil
}

// ListRuns implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRuns(ctx context.Context, filter payroll.ListRunsFilter) (payroll.ListRunsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListRunsResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.ListRunsResponse{}, err
	}

	runs, totalCount, err := s.PayrollRunRepository.List(ctx, claims.companyID, filter)
	if err != nil {
		return payroll.ListRunsResponse{}, err
	}

	resp := payroll.ListRunsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Runs:       make([]payroll.RunResponse, 0, len(runs)),
	}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, toRunResponse(run))
	}

	return resp, nil
}

// computeStubs derives a fresh stub for every active employee from the
// period's punches. Employees with no punches get a zero stub so the run
// covers the whole roster.
func (s *PayrollServiceImpl) computeStubs(ctx context.Context, run payroll.PayrollRun) ([]payroll.PayStub, []employee.Employee, error) {
	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, run.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if len(employees) == 0 {
		return nil, nil, payroll.ErrNoActiveEmployees
	}

	periodEndExclusive := run.PeriodEnd.Add(24 * time.Hour)
	punches, err := s.PunchRepository.ListByCompanyAndRange(ctx, run.CompanyID, run.PeriodStart, periodEndExclusive)
	if err != nil {
		return nil, nil, err
	}

	byEmployee := make(map[string][]timeclock.Punch)
	for _, p := range punches {
		byEmployee[p.EmployeeID] = append(byEmployee[p.EmployeeID], p)
	}

	stubs := make([]payroll.PayStub, 0, len(employees))
	for _, e := range employees {
		worked := timeclock.HoursForRange(byEmployee[e.ID])
		comp := payroll.Compute(worked, e.EffectiveHourlyRate(), e.EffectiveOvertimeRate(), s.overtimeThreshold)

		name, email := e.FullName, e.Email
		stubs = append(stubs, payroll.PayStub{
			PayrollRunID:    run.ID,
			EmployeeID:      e.ID,
			CompanyID:       run.CompanyID,
			EmployeeName:    &name,
			EmployeeEmail:   &email,
			RegularHours:    comp.RegularHours,
			OvertimeHours:   comp.OvertimeHours,
			HourlyRate:      comp.HourlyRate,
			OvertimeRate:    comp.OvertimeRate,
			GrossPay:        comp.GrossPay,
			FederalTax:      comp.Deductions.FederalTax,
			StateTax:        comp.Deductions.StateTax,
			SocialSecurity:  comp.Deductions.SocialSecurity,
			Medicare:        comp.Deductions.Medicare,
			OtherDeductions: comp.Deductions.Other,
			TotalDeductions: comp.Deductions.Total,
			NetPay:          comp.NetPay,
		})
	}

	return stubs, employees, nil
}

func totalsOf(stubs []payroll.PayStubResponse) payroll.RunTotals {
	totals := payroll.RunTotals{
		EmployeeCount:   len(stubs),
		RegularHours:    decimal.Zero,
		OvertimeHours:   decimal.Zero,
		GrossPay:        decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
	}
	for _, stub := range stubs {
		totals.RegularHours = totals.RegularHours.Add(stub.RegularHours)
		totals.OvertimeHours = totals.OvertimeHours.Add(stub.OvertimeHours)
		totals.GrossPay = totals.GrossPay.Add(stub.GrossPay)
		totals.TotalDeductions = totals.TotalDeductions.Add(stub.TotalDeductions)
		totals.NetPay = totals.NetPay.Add(stub.NetPay)
	}
	return totals
}

// CalculateRun implements payroll.PayrollService. The preview is computed in
// memory from the current punches; nothing is written, so calling it again
// just reflects whatever the punches say now.
func (s *PayrollServiceImpl) CalculateRun(ctx context.Context, id string) (payroll.RunCalculationResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.RunCalculationResponse{}, err
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, id, claims.companyID)
	if err != nil {
		return payroll.RunCalculationResponse{}, err
	}
	if run.Status != payroll.RunStatusDraft {
		return payroll.RunCalculationResponse{}, payroll.ErrRunNotDraft
	}

	stubs, _, err := s.computeStubs(ctx, run)
	if err != nil {
		return payroll.RunCalculationResponse{}, err
	}

	resp := payroll.RunCalculationResponse{
		Run:   toRunResponse(run),
		Stubs: make([]payroll.PayStubResponse, 0, len(stubs)),
	}
	for _, stub := range stubs {
		resp.Stubs = append(resp.Stubs, toStubResponse(stub))
	}
	resp.Totals = totalsOf(resp.Stubs)

	return resp, nil
}

// ProcessRun implements payroll.PayrollService. The run row lock plus the
// draft re-check under it guarantee a run is processed exactly once, no
// matter how many admins click the button.
func (s *PayrollServiceImpl) ProcessRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	var run payroll.PayrollRun
	var employees []employee.Employee
	var stubs []payroll.PayStub

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		run, err = s.PayrollRunRepository.GetByIDForUpdate(txCtx, id, claims.companyID)
		if err != nil {
			return err
		}
		if run.Status != payroll.RunStatusDraft {
			return payroll.ErrRunNotDraft
		}

		stubs, employees, err = s.computeStubs(txCtx, run)
		if err != nil {
			return err
		}

		if err := s.PayStubRepository.CreateBatch(txCtx, stubs); err != nil {
			return err
		}

		totalCost := decimal.Zero
		for _, stub := range stubs {
			totalCost = totalCost.Add(stub.NetPay)
		}

		processedAt := s.now()
		if err := s.PayrollRunRepository.MarkCompleted(txCtx, run.ID, run.CompanyID, claims.userID, totalCost, processedAt); err != nil {
			return err
		}

		run.Status = payroll.RunStatusCompleted
		run.TotalCost = totalCost
		run.ProcessedBy = &claims.userID
		run.ProcessedAt = &processedAt
		return nil
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	s.notifyRunCompleted(ctx, claims, run, employees, stubs)

	return toRunResponse(run), nil
}

// notifyRunCompleted fans out post-commit notifications and pay-stub emails.
// Everything here is best effort; the run is already completed.
func (s *PayrollServiceImpl) notifyRunCompleted(ctx context.Context, claims callerClaims, run payroll.PayrollRun, employees []employee.Employee, stubs []payroll.PayStub) {
	period := fmt.Sprintf("%s to %s", run.PeriodStart.Format("2006-01-02"), run.PeriodEnd.Format("2006-01-02"))

	runID := run.ID
	messages := []notification.Message{{
		UserID:     claims.userID,
		CompanyID:  run.CompanyID,
		Type:       notification.TypePayrollRunCompleted,
		Title:      "Payroll run completed",
		Body:       fmt.Sprintf("Payroll for %s has been processed.", period),
		ResourceID: &runID,
	}}

	netByEmployee := make(map[string]decimal.Decimal, len(stubs))
	for _, stub := range stubs {
		netByEmployee[stub.EmployeeID] = stub.NetPay
	}

	for _, e := range employees {
		if e.UserID != nil && *e.UserID != claims.userID {
			messages = append(messages, notification.Message{
				UserID:     *e.UserID,
				CompanyID:  run.CompanyID,
				Type:       notification.TypePayStubIssued,
				Title:      "Your pay stub is ready",
				Body:       fmt.Sprintf("Your pay stub for %s is available.", period),
				ResourceID: &runID,
			})
		}
	}

	s.notificationService.NotifyBatch(ctx, messages)

	companyName := ""
	if c, err := s.CompanyRepository.GetByID(ctx, run.CompanyID); err == nil {
		companyName = c.Name
	}

	go func() {
		for _, e := range employees {
			net, ok := netByEmployee[e.ID]
			if !ok || e.Email == "" {
				continue
			}
			err := s.emailService.SendPayStubIssued(
				e.Email, e.FullName, companyName,
				run.PeriodStart.Format("2006-01-02"),
				run.PeriodEnd.Format("2006-01-02"),
				run.PayDate.Format("2006-01-02"),
				"$"+net.StringFixed(2),
			)
			if err != nil {
				s.logger.Error("failed to send pay stub email",
					slog.String("employee_id", e.ID),
					slog.Any("error", err),
				)
			}
		}
	}()
}

// UpdateRunStatus implements payroll.PayrollService. Manual changes are
// constrained to the legal transition table; processing a run goes through
// ProcessRun, never through here.
func (s *PayrollServiceImpl) UpdateRunStatus(ctx context.Context, req payroll.UpdateRunStatusRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	target, ok := payroll.NormalizeStatus(req.Status)
	if !ok {
		return payroll.RunResponse{}, fmt.Errorf("%w: %q", payroll.ErrUnknownRunStatus, req.Status)
	}

	var run payroll.PayrollRun

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		run, err = s.PayrollRunRepository.GetByIDForUpdate(txCtx, req.ID, claims.companyID)
		if err != nil {
			return err
		}

		if !payroll.CanTransition(run.Status, target) {
			return fmt.Errorf("%w: %s -> %s", payroll.ErrInvalidStatusTransition, run.Status, target)
		}

		if err := s.PayrollRunRepository.UpdateStatus(txCtx, run.ID, run.CompanyID, target); err != nil {
			return err
		}

		run.Status = target
		return nil
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(run), nil
}

// DeleteRun implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteRun(ctx context.Context, id string) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		run, err := s.PayrollRunRepository.GetByIDForUpdate(txCtx, id, claims.companyID)
		if err != nil {
			return err
		}
		if run.Status != payroll.RunStatusDraft {
			return payroll.ErrRunNotDraft
		}

		if err := s.PayStubRepository.DeleteByRunID(txCtx, run.ID, run.CompanyID); err != nil {
			return err
		}
		return s.PayrollRunRepository.Delete(txCtx, run.ID, run.CompanyID)
	})
}

// GetPayStub implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayStub(ctx context.Context, id string) (payroll.PayStubResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayStubResponse{}, err
	}

	stub, err := s.PayStubRepository.GetByID(ctx, id, claims.companyID)
	if err != nil {
		return payroll.PayStubResponse{}, err
	}

	return toStubResponse(stub), nil
}

// ListRunPayStubs implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRunPayStubs(ctx context.Context, runID string) ([]payroll.PayStubResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.PayrollRunRepository.GetByID(ctx, runID, claims.companyID); err != nil {
		return nil, err
	}

	stubs, err := s.PayStubRepository.ListByRunID(ctx, runID, claims.companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayStubResponse, 0, len(stubs))
	for _, stub := range stubs {
		responses = append(responses, toStubResponse(stub))
	}

	return responses, nil
}

// ListEmployeePayStubs implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListEmployeePayStubs(ctx context.Context, employeeID string, year *int) ([]payroll.PayStubResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	stubs, err := s.PayStubRepository.ListByEmployeeID(ctx, employeeID, claims.companyID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayStubResponse, 0, len(stubs))
	for _, stub := range stubs {
		responses = append(responses, toStubResponse(stub))
	}

	return responses, nil
}

// UpdatePayStub implements payroll.PayrollService. Derived totals are
// recomputed from the adjusted deductions so the stub stays internally
// consistent.
func (s *PayrollServiceImpl) UpdatePayStub(ctx context.Context, req payroll.UpdatePayStubRequest) (payroll.PayStubResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayStubResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayStubResponse{}, err
	}

	var updated payroll.PayStub

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		stub, err := s.PayStubRepository.GetByID(txCtx, req.ID, claims.companyID)
		if err != nil {
			return err
		}

		run, err := s.PayrollRunRepository.GetByIDForUpdate(txCtx, stub.PayrollRunID, claims.companyID)
		if err != nil {
			return err
		}
		if run.Status == payroll.RunStatusCompleted || run.Status == payroll.RunStatusProcessing {
			return payroll.ErrRunCompletedStubLocked
		}

		if req.OtherDeductions != nil {
			stub.OtherDeductions = req.OtherDeductions.Round(2)
		}
		if req.Notes != nil {
			stub.Notes = req.Notes
		}

		deductions := payroll.ComputeDeductions(stub.GrossPay, stub.OtherDeductions)
		stub.FederalTax = deductions.FederalTax
		stub.StateTax = deductions.StateTax
		stub.SocialSecurity = deductions.SocialSecurity
		stub.Medicare = deductions.Medicare
		stub.TotalDeductions = deductions.Total
		stub.NetPay = stub.GrossPay.Sub(deductions.Total).Round(2)

		if err := s.PayStubRepository.Update(txCtx, stub); err != nil {
			return err
		}

		updated = stub
		return nil
	})
	if err != nil {
		return payroll.PayStubResponse{}, err
	}

	return toStubResponse(updated), nil
}

// DeletePayStub implements payroll.PayrollService. Stubs whose parent run is
// completed or processing are frozen; voiding a completed run first (failed)
// unlocks its stubs.
func (s *PayrollServiceImpl) DeletePayStub(ctx context.Context, id string) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		stub, err := s.PayStubRepository.GetByID(txCtx, id, claims.companyID)
		if err != nil {
			return err
		}

		run, err := s.PayrollRunRepository.GetByIDForUpdate(txCtx, stub.PayrollRunID, claims.companyID)
		if err != nil {
			return err
		}
		if run.Status == payroll.RunStatusCompleted || run.Status == payroll.RunStatusProcessing {
			return payroll.ErrRunCompletedStubLocked
		}

		return s.PayStubRepository.Delete(txCtx, stub.ID, run.CompanyID)
	})
}

// PayStubPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayStubPDF(ctx context.Context, id string) ([]byte, string, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return nil, "", err
	}

	stub, err := s.PayStubRepository.GetByID(ctx, id, claims.companyID)
	if err != nil {
		return nil, "", err
	}

	run, err := s.PayrollRunRepository.GetByID(ctx, stub.PayrollRunID, claims.companyID)
	if err != nil {
		return nil, "", err
	}

	companyName := ""
	if c, err := s.CompanyRepository.GetByID(ctx, claims.companyID); err == nil {
		companyName = c.Name
	}

	doc := pdf.PayStubDocument{
		CompanyName:     companyName,
		PeriodStart:     run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       run.PeriodEnd.Format("2006-01-02"),
		PayDate:         run.PayDate.Format("2006-01-02"),
		RegularHours:    stub.RegularHours,
		OvertimeHours:   stub.OvertimeHours,
		HourlyRate:      stub.HourlyRate,
		OvertimeRate:    stub.OvertimeRate,
		GrossPay:        stub.GrossPay,
		FederalTax:      stub.FederalTax,
		StateTax:        stub.StateTax,
		SocialSecurity:  stub.SocialSecurity,
		Medicare:        stub.Medicare,
		OtherDeductions: stub.OtherDeductions,
		TotalDeductions: stub.TotalDeductions,
		NetPay:          stub.NetPay,
	}
	if stub.EmployeeName != nil {
		doc.EmployeeName = *stub.EmployeeName
	}
	if stub.EmployeeEmail != nil {
		doc.EmployeeEmail = *stub.EmployeeEmail
	}

	data, err := pdf.RenderPayStub(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("pay-stub-%s.pdf", run.PayDate.Format("2006-01-02"))
	return data, filename, nil
}
