package timeclock

import "errors"

var (
	ErrIllegalPunchSequence = errors.New("punch violates the time-clock sequence")
	ErrDuplicatePunch       = errors.New("duplicate punch submitted within the guard window")
	ErrShiftTooShort        = errors.New("clock out is too soon after clock in")
	ErrUnknownPunchType     = errors.New("unknown punch type")
	ErrPunchNotFound        = errors.New("punch not found")
	ErrCorrectionBreaksDay  = errors.New("correction would make the day's punch sequence illegal")
)
