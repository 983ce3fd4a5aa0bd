package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered in this company")
	ErrPositionNotFound = errors.New("position not found")
)
