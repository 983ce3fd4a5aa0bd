package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
)

type payStubRepository struct {
	db *database.DB
}

func NewPayStubRepository(db *database.DB) payroll.PayStubRepository {
	return &payStubRepository{db: db}
}

const payStubColumns = `
	ps.id, ps.payroll_run_id, ps.employee_id, ps.company_id,
	ps.regular_hours, ps.overtime_hours, ps.hourly_rate, ps.overtime_rate,
	ps.gross_pay, ps.federal_tax, ps.state_tax, ps.social_security, ps.medicare,
	ps.other_deductions, ps.total_deductions, ps.net_pay, ps.notes,
	ps.created_at, ps.updated_at
`

func scanPayStub(row pgx.Row, withEmployee bool) (payroll.PayStub, error) {
	var s payroll.PayStub
	dest := []any{
		&s.ID, &s.PayrollRunID, &s.EmployeeID, &s.CompanyID,
		&s.RegularHours, &s.OvertimeHours, &s.HourlyRate, &s.OvertimeRate,
		&s.GrossPay, &s.FederalTax, &s.StateTax, &s.SocialSecurity, &s.Medicare,
		&s.OtherDeductions, &s.TotalDeductions, &s.NetPay, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &s.EmployeeName, &s.EmployeeEmail)
	}
	return s, row.Scan(dest...)
}

// CreateBatch implements payroll.PayStubRepository using a pgx batch so a
// full company's stubs insert in one round trip.
func (r *payStubRepository) CreateBatch(ctx context.Context, stubs []payroll.PayStub) error {
	if len(stubs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_stubs (
			payroll_run_id, employee_id, company_id,
			regular_hours, overtime_hours, hourly_rate, overtime_rate,
			gross_pay, federal_tax, state_tax, social_security, medicare,
			other_deductions, total_deductions, net_pay, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	batch := &pgx.Batch{}
	for _, s := range stubs {
		batch.Queue(query,
			s.PayrollRunID, s.EmployeeID, s.CompanyID,
			s.RegularHours, s.OvertimeHours, s.HourlyRate, s.OvertimeRate,
			s.GrossPay, s.FederalTax, s.StateTax, s.SocialSecurity, s.Medicare,
			s.OtherDeductions, s.TotalDeductions, s.NetPay, s.Notes,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range stubs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert pay stub batch: %w", err)
		}
	}

	return nil
}

// GetByID implements payroll.PayStubRepository.
func (r *payStubRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.PayStub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payStubColumns + `, e.full_name, e.email
		FROM pay_stubs ps
		JOIN employees e ON e.id = ps.employee_id
		WHERE ps.id = $1 AND ps.company_id = $2
	`

	stub, err := scanPayStub(q.QueryRow(ctx, query, id, companyID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayStub{}, payroll.ErrPayStubNotFound
		}
		return payroll.PayStub{}, fmt.Errorf("failed to get pay stub: %w", err)
	}

	return stub, nil
}

// ListByRunID implements payroll.PayStubRepository.
func (r *payStubRepository) ListByRunID(ctx context.Context, runID string, companyID string) ([]payroll.PayStub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payStubColumns + `, e.full_name, e.email
		FROM pay_stubs ps
		JOIN employees e ON e.id = ps.employee_id
		WHERE ps.payroll_run_id = $1 AND ps.company_id = $2
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, runID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay stubs by run: %w", err)
	}
	defer rows.Close()

	return collectPayStubs(rows)
}

// ListByEmployeeID implements payroll.PayStubRepository, optionally limited
// to one calendar year of pay dates.
func (r *payStubRepository) ListByEmployeeID(ctx context.Context, employeeID string, companyID string, year *int) ([]payroll.PayStub, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payStubColumns + `, e.full_name, e.email
		FROM pay_stubs ps
		JOIN employees e ON e.id = ps.employee_id
		JOIN payroll_runs pr ON pr.id = ps.payroll_run_id
		WHERE ps.employee_id = $1
		  AND ps.company_id = $2
		  AND ($3::int IS NULL OR EXTRACT(YEAR FROM pr.pay_date) = $3)
		ORDER BY pr.pay_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay stubs by employee: %w", err)
	}
	defer rows.Close()

	return collectPayStubs(rows)
}

// Update implements payroll.PayStubRepository. Only adjustable fields and
// the derived totals are written.
func (r *payStubRepository) Update(ctx context.Context, stub payroll.PayStub) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_stubs
		SET other_deductions = $3, total_deductions = $4, net_pay = $5,
		    notes = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		stub.ID, stub.CompanyID,
		stub.OtherDeductions, stub.TotalDeductions, stub.NetPay, stub.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update pay stub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayStubNotFound
	}

	return nil
}

// Delete implements payroll.PayStubRepository.
func (r *payStubRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM pay_stubs
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete pay stub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayStubNotFound
	}

	return nil
}

// DeleteByRunID implements payroll.PayStubRepository. Deleting a run removes
// its stubs wholesale.
func (r *payStubRepository) DeleteByRunID(ctx context.Context, runID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM pay_stubs
		WHERE payroll_run_id = $1 AND company_id = $2
	`

	if _, err := q.Exec(ctx, query, runID, companyID); err != nil {
		return fmt.Errorf("failed to delete pay stubs: %w", err)
	}

	return nil
}

func collectPayStubs(rows pgx.Rows) ([]payroll.PayStub, error) {
	var stubs []payroll.PayStub
	for rows.Next() {
		stub, err := scanPayStub(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay stub: %w", err)
		}
		stubs = append(stubs, stub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pay stubs: %w", err)
	}

	return stubs, nil
}
