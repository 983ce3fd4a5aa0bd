package timeclock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/notification"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
)

type TimeClockServiceImpl struct {
	transactor database.Transactor
	timeclock.PunchRepository
	employee.EmployeeRepository
	notificationService notification.NotificationService

	rules              timeclock.SequenceRules
	mealBreakThreshold time.Duration

	// now is swapped in tests.
	now func() time.Time
}

func NewTimeClockService(
	transactor database.Transactor,
	punchRepo timeclock.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	notificationService notification.NotificationService,
	rules timeclock.SequenceRules,
	mealBreakThreshold time.Duration,
) timeclock.TimeClockService {
	return &TimeClockServiceImpl{
		transactor:          transactor,
		PunchRepository:     punchRepo,
		EmployeeRepository:  employeeRepo,
		notificationService: notificationService,
		rules:               rules,
		mealBreakThreshold:  mealBreakThreshold,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

type callerClaims struct {
	userID     string
	companyID  string
	employeeID string
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
	if v, ok := claims["employee_id"].(string); ok {
		c.employeeID = v
	}

	if c.companyID == "" {
		return callerClaims{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return c, nil
}

// dayBounds returns the UTC midnight-to-midnight window containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	utc := t.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

func toPunchResponse(p timeclock.Punch) timeclock.PunchResponse {
	return timeclock.PunchResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Type:         string(p.Type),
		Timestamp:    p.Timestamp.UTC().Format(time.RFC3339),
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

// Punch implements timeclock.TimeClockService. The employee row lock
// serializes concurrent submissions per employee, so the sequence check and
// insert behave as one atomic step.
func (s *TimeClockServiceImpl) Punch(ctx context.Context, req timeclock.PunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}
	if claims.employeeID == "" {
		return timeclock.PunchResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	at := s.now()
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, _ := validator.IsValidDateTime(*req.Timestamp)
		at = parsed.UTC()
	}

	var created timeclock.Punch
	var dayPunches []timeclock.Punch

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.EmployeeRepository.LockByID(txCtx, claims.employeeID, claims.companyID); err != nil {
			return err
		}

		dayStart, dayEnd := dayBounds(at)
		punches, err := s.PunchRepository.ListByEmployeeAndRange(txCtx, claims.employeeID, dayStart, dayEnd, claims.companyID)
		if err != nil {
			return err
		}

		if err := timeclock.ValidateNext(punches, timeclock.PunchType(req.Type), at, s.rules); err != nil {
			return err
		}

		created, err = s.PunchRepository.Create(txCtx, timeclock.Punch{
			EmployeeID: claims.employeeID,
			CompanyID:  claims.companyID,
			Type:       timeclock.PunchType(req.Type),
			Timestamp:  at,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}

		dayPunches = append(punches, created)
		return nil
	})
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	s.maybeSendMealBreakReminder(ctx, claims, dayPunches)

	return toPunchResponse(created), nil
}

// maybeSendMealBreakReminder runs after a successful punch. Notification
// failures never affect the punch itself.
func (s *TimeClockServiceImpl) maybeSendMealBreakReminder(ctx context.Context, claims callerClaims, dayPunches []timeclock.Punch) {
	if claims.userID == "" || s.notificationService == nil {
		return
	}
	if !timeclock.MealBreakReminderDue(dayPunches, s.now(), s.mealBreakThreshold) {
		return
	}

	s.notificationService.NotifyBatch(ctx, []notification.Message{{
		UserID:    claims.userID,
		CompanyID: claims.companyID,
		Type:      notification.TypeMealBreakReminder,
		Title:     "Time for a meal break",
		Body:      fmt.Sprintf("You have been clocked in for over %.0f hours without a lunch break.", s.mealBreakThreshold.Hours()),
	}})
}

// Status implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) Status(ctx context.Context) (timeclock.StatusResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}
	if claims.employeeID == "" {
		return timeclock.StatusResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	now := s.now()
	dayStart, dayEnd := dayBounds(now)
	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, claims.employeeID, dayStart, dayEnd, claims.companyID)
	if err != nil {
		return timeclock.StatusResponse{}, err
	}

	resp := timeclock.StatusResponse{
		State:                string(timeclock.DayState(punches)),
		MealBreakReminderDue: timeclock.MealBreakReminderDue(punches, now, s.mealBreakThreshold),
	}

	var last *timeclock.PunchType
	if len(punches) > 0 {
		lastPunch := toPunchResponse(punches[len(punches)-1])
		resp.LastPunch = &lastPunch
		last = &punches[len(punches)-1].Type
	}

	for _, t := range timeclock.AllowedNext(last) {
		resp.AllowedNext = append(resp.AllowedNext, string(t))
	}

	if start, open := timeclock.OpenSessionStart(punches); open {
		minutes := now.Sub(start).Minutes()
		resp.CurrentSessionMinutes = &minutes
	}

	return resp, nil
}

// MyPunches implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) MyPunches(ctx context.Context, filter timeclock.PunchFilter) (timeclock.ListPunchesResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.ListPunchesResponse{}, err
	}
	if claims.employeeID == "" {
		return timeclock.ListPunchesResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	filter.EmployeeID = &claims.employeeID
	return s.listPunches(ctx, claims.companyID, filter)
}

// ListPunches implements timeclock.TimeClockService. Role checks happen in
// middleware; the service only scopes to the caller's company.
func (s *TimeClockServiceImpl) ListPunches(ctx context.Context, filter timeclock.PunchFilter) (timeclock.ListPunchesResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.ListPunchesResponse{}, err
	}

	return s.listPunches(ctx, claims.companyID, filter)
}

func (s *TimeClockServiceImpl) listPunches(ctx context.Context, companyID string, filter timeclock.PunchFilter) (timeclock.ListPunchesResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeclock.ListPunchesResponse{}, err
	}

	punches, totalCount, err := s.PunchRepository.List(ctx, companyID, filter)
	if err != nil {
		return timeclock.ListPunchesResponse{}, err
	}

	resp := timeclock.ListPunchesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    make([]timeclock.PunchResponse, 0, len(punches)),
	}
	for _, p := range punches {
		resp.Punches = append(resp.Punches, toPunchResponse(p))
	}

	return resp, nil
}

// CorrectPunch implements timeclock.TimeClockService. The affected days are
// replayed through the sequence rules before the change commits; a
// correction that would leave an illegal day is rejected whole.
func (s *TimeClockServiceImpl) CorrectPunch(ctx context.Context, req timeclock.CorrectPunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	var updated timeclock.Punch

	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		p, err := s.PunchRepository.GetByID(txCtx, req.ID, claims.companyID)
		if err != nil {
			return err
		}

		if err := s.EmployeeRepository.LockByID(txCtx, p.EmployeeID, claims.companyID); err != nil {
			return err
		}

		oldTimestamp := p.Timestamp
		if req.Timestamp != nil {
			parsed, _ := validator.IsValidDateTime(*req.Timestamp)
			p.Timestamp = parsed.UTC()
		}
		if req.Notes != nil {
			p.Notes = req.Notes
		}

		days := map[time.Time]bool{}
		oldDay, _ := dayBounds(oldTimestamp)
		newDay, _ := dayBounds(p.Timestamp)
		days[oldDay] = true
		days[newDay] = true

		for dayStart := range days {
			punches, err := s.PunchRepository.ListByEmployeeAndRange(txCtx, p.EmployeeID, dayStart, dayStart.Add(24*time.Hour), claims.companyID)
			if err != nil {
				return err
			}

			// Rebuild the day as it would look after the correction.
			var replayed []timeclock.Punch
			for _, existing := range punches {
				if existing.ID == p.ID {
					continue
				}
				replayed = append(replayed, existing)
			}
			moved, _ := dayBounds(p.Timestamp)
			if moved.Equal(dayStart) {
				replayed = append(replayed, p)
			}

			if err := timeclock.ValidateDay(replayed); err != nil {
				return fmt.Errorf("%w: %v", timeclock.ErrCorrectionBreaksDay, err)
			}
		}

		if err := s.PunchRepository.Update(txCtx, p); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if err != nil {
		return timeclock.PunchResponse{}, err
	}

	return toPunchResponse(updated), nil
}

// HoursSummary implements timeclock.TimeClockService.
func (s *TimeClockServiceImpl) HoursSummary(ctx context.Context, employeeID, startDate, endDate string) (timeclock.HoursSummaryResponse, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return timeclock.HoursSummaryResponse{}, err
	}

	var errs validator.ValidationErrors
	start, validStart := validator.IsValidDate(startDate)
	if !validStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, validEnd := validator.IsValidDate(endDate)
	if !validEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if validStart && validEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if len(errs) > 0 {
		return timeclock.HoursSummaryResponse{}, errs
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, claims.companyID); err != nil {
		return timeclock.HoursSummaryResponse{}, err
	}

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end.Add(24*time.Hour), claims.companyID)
	if err != nil {
		return timeclock.HoursSummaryResponse{}, err
	}

	return timeclock.HoursSummaryResponse{
		EmployeeID:  employeeID,
		StartDate:   startDate,
		EndDate:     endDate,
		WorkedHours: timeclock.HoursForRange(punches),
	}, nil
}
