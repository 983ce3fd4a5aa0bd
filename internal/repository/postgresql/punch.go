package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timeclock.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `
	tp.id, tp.employee_id, tp.company_id, tp.punch_type, tp.punched_at,
	tp.latitude, tp.longitude, tp.notes, tp.created_at, tp.updated_at
`

func scanPunch(row pgx.Row) (timeclock.Punch, error) {
	var p timeclock.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Type, &p.Timestamp,
		&p.Latitude, &p.Longitude, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements timeclock.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, newPunch timeclock.Punch) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_punches (
			employee_id, company_id, punch_type, punched_at, latitude, longitude, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newPunch.EmployeeID,
		newPunch.CompanyID,
		newPunch.Type,
		newPunch.Timestamp,
		newPunch.Latitude,
		newPunch.Longitude,
		newPunch.Notes,
	).Scan(&newPunch.ID, &newPunch.CreatedAt, &newPunch.UpdatedAt)

	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return newPunch, nil
}

// GetByID implements timeclock.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string, companyID string) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_punches tp
		WHERE tp.id = $1 AND tp.company_id = $2
	`

	result, err := scanPunch(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeclock.Punch{}, timeclock.ErrPunchNotFound
		}
		return timeclock.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}

	return result, nil
}

// ListByEmployeeAndRange implements timeclock.PunchRepository. The range is
// half-open: from <= punched_at < to.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_punches tp
		WHERE tp.employee_id = $1
		  AND tp.company_id = $2
		  AND tp.punched_at >= $3
		  AND tp.punched_at < $4
		ORDER BY tp.punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by employee: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// ListByCompanyAndRange implements timeclock.PunchRepository.
func (r *punchRepository) ListByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM time_punches tp
		WHERE tp.company_id = $1
		  AND tp.punched_at >= $2
		  AND tp.punched_at < $3
		ORDER BY tp.employee_id, tp.punched_at ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by company: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows)
}

// List implements timeclock.PunchRepository with pagination and a joined
// employee name for administrative listings.
func (r *punchRepository) List(ctx context.Context, companyID string, filter timeclock.PunchFilter) ([]timeclock.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"tp.company_id = $1"}
	args := []any{companyID}
	argPos := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("tp.employee_id = $%d", argPos))
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("tp.punched_at >= $%d::date", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("tp.punched_at < ($%d::date + INTERVAL '1 day')", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}

	where := strings.Join(whereClauses, " AND ")

	countQuery := `SELECT COUNT(*) FROM time_punches tp WHERE ` + where

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+punchColumns+`, e.full_name AS employee_name
		FROM time_punches tp
		JOIN employees e ON e.id = tp.employee_id
		WHERE %s
		ORDER BY tp.punched_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []timeclock.Punch
	for rows.Next() {
		var p timeclock.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Type, &p.Timestamp,
			&p.Latitude, &p.Longitude, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, totalCount, nil
}

// Update implements timeclock.PunchRepository. Only timestamp and notes are
// mutable; punch type and ownership never change after creation.
func (r *punchRepository) Update(ctx context.Context, p timeclock.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_punches
		SET punched_at = $3, notes = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, p.ID, p.CompanyID, p.Timestamp, p.Notes)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}

	return nil
}

func collectPunches(rows pgx.Rows) ([]timeclock.Punch, error) {
	var punches []timeclock.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}
