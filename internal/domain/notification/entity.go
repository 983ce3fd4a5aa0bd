package notification

import "time"

type Type string

const (
	TypePayStubIssued        Type = "pay_stub_issued"
	TypeMealBreakReminder    Type = "meal_break_reminder"
	TypePayrollRunCompleted  Type = "payroll_run_completed"
)

type Notification struct {
	ID        string
	UserID    string
	CompanyID string
	Type      Type
	Title     string
	Message   string
	// ResourceID points at the record the notification is about (pay stub,
	// payroll run), if any.
	ResourceID *string
	ReadAt     *time.Time
	CreatedAt  time.Time
}

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
