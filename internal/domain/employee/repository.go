package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods include companyID parameter to prevent cross-company data access.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, id string, companyID string) error

	// LockByID takes a row lock on the employee inside the current
	// transaction. Punch creation serializes on it per employee.
	LockByID(ctx context.Context, id string, companyID string) error
}

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string, companyID string) (Position, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Position, error)
}
