package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

const payrollRunColumns = `
	id, company_id, period_start, period_end, pay_date, status, notes,
	total_cost, created_by, processed_by, processed_at, created_at, updated_at
`

func scanPayrollRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.CompanyID, &run.PeriodStart, &run.PeriodEnd, &run.PayDate,
		&run.Status, &run.Notes, &run.TotalCost, &run.CreatedBy,
		&run.ProcessedBy, &run.ProcessedAt, &run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}

// Create implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) Create(ctx context.Context, newRun payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (
			company_id, period_start, period_end, pay_date, status, notes, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newRun.CompanyID,
		newRun.PeriodStart,
		newRun.PeriodEnd,
		newRun.PayDate,
		newRun.Status,
		newRun.Notes,
		newRun.CreatedBy,
	).Scan(&newRun.ID, &newRun.CreatedAt, &newRun.UpdatedAt)

	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return newRun, nil
}

// GetByID implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

// GetByIDForUpdate implements payroll.PayrollRunRepository. Must run inside
// a transaction; concurrent processors of the same run serialize here.
func (r *payrollRunRepository) GetByIDForUpdate(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollRunColumns + `
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`

	run, err := scanPayrollRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to lock payroll run: %w", err)
	}

	return run, nil
}

// List implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) List(ctx context.Context, companyID string, filter payroll.ListRunsFilter) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.Status != nil && *filter.Status != "" {
		status, _ := payroll.NormalizeStatus(*filter.Status)
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argPos))
		args = append(args, status)
		argPos++
	}
	if filter.Year != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("EXTRACT(YEAR FROM period_start) = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}

	where := strings.Join(whereClauses, " AND ")

	countQuery := `SELECT COUNT(*) FROM payroll_runs WHERE ` + where

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+payrollRunColumns+`
		FROM payroll_runs
		WHERE %s
		ORDER BY period_start DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanPayrollRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll runs: %w", err)
	}

	return runs, totalCount, nil
}

// CountOverlapping implements payroll.PayrollRunRepository. Cancelled runs
// do not block a new run over the same period.
func (r *payrollRunRepository) CountOverlapping(ctx context.Context, companyID string, periodStart, periodEnd time.Time, excludeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM payroll_runs
		WHERE company_id = $1
		  AND period_start <= $3
		  AND period_end >= $2
		  AND status != 'cancelled'
		  AND NULLIF($4, '')::uuid IS DISTINCT FROM id
	`

	var count int64
	err := q.QueryRow(ctx, query, companyID, periodStart, periodEnd, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping runs: %w", err)
	}

	return count, nil
}

// UpdateStatus implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) UpdateStatus(ctx context.Context, id string, companyID string, status payroll.RunStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID, status)
	if err != nil {
		return fmt.Errorf("failed to update payroll run status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRunNotFound
	}

	return nil
}

// MarkCompleted implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) MarkCompleted(ctx context.Context, id string, companyID string, processedBy string, totalCost decimal.Decimal, processedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'completed', total_cost = $3, processed_by = $4,
		    processed_at = $5, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID, totalCost, processedBy, processedAt)
	if err != nil {
		return fmt.Errorf("failed to mark payroll run completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRunNotFound
	}

	return nil
}

// Delete implements payroll.PayrollRunRepository. Stubs cascade via foreign
// key; services still delete them explicitly so the intent shows in the
// transaction.
func (r *payrollRunRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRunNotFound
	}

	return nil
}
