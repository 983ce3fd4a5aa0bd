package payroll

import "errors"

var (
	ErrPayrollRunNotFound      = errors.New("payroll run not found")
	ErrPayStubNotFound         = errors.New("pay stub not found")
	ErrRunPeriodOverlap        = errors.New("payroll run period overlaps an existing run")
	ErrRunNotDraft             = errors.New("payroll run is not in draft status")
	ErrInvalidStatusTransition = errors.New("invalid payroll run status transition")
	ErrUnknownRunStatus        = errors.New("unknown payroll run status")
	ErrRunCompletedStubLocked  = errors.New("pay stub belongs to a completed run and cannot be modified")
	ErrNoActiveEmployees       = errors.New("company has no active employees")
)
