package response

import (
	"errors"
	"net/http"

	"github.com/paycheck-labs/payroll-backend-go/internal/domain/auth"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/company"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/notification"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/user"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Time clock domain errors
	case errors.Is(err, timeclock.ErrIllegalPunchSequence):
		Conflict(w, err.Error())
	case errors.Is(err, timeclock.ErrDuplicatePunch):
		Conflict(w, err.Error())
	case errors.Is(err, timeclock.ErrShiftTooShort):
		Conflict(w, err.Error())
	case errors.Is(err, timeclock.ErrUnknownPunchType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timeclock.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, timeclock.ErrCorrectionBreaksDay):
		Conflict(w, err.Error())

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrPayStubNotFound):
		NotFound(w, "Pay stub not found")
	case errors.Is(err, payroll.ErrRunPeriodOverlap):
		Conflict(w, "Payroll run period overlaps an existing run")
	case errors.Is(err, payroll.ErrRunNotDraft):
		Conflict(w, "Payroll run is not in draft status")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrUnknownRunStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrRunCompletedStubLocked):
		Conflict(w, "Pay stub belongs to a completed run and cannot be modified")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "Company has no active employees", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
