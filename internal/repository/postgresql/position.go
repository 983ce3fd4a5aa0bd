package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) employee.PositionRepository {
	return &positionRepository{db: db}
}

// Create implements employee.PositionRepository.
func (p *positionRepository) Create(ctx context.Context, newPosition employee.Position) (employee.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO positions (company_id, name, default_hourly_rate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newPosition.CompanyID,
		newPosition.Name,
		newPosition.DefaultHourlyRate,
	).Scan(&newPosition.ID, &newPosition.CreatedAt, &newPosition.UpdatedAt)

	if err != nil {
		return employee.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return newPosition, nil
}

// GetByID implements employee.PositionRepository.
func (p *positionRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, name, default_hourly_rate, created_at, updated_at
		FROM positions
		WHERE id = $1 AND company_id = $2
	`

	var result employee.Position
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&result.ID, &result.CompanyID, &result.Name, &result.DefaultHourlyRate,
		&result.CreatedAt, &result.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Position{}, employee.ErrPositionNotFound
		}
		return employee.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return result, nil
}

// ListByCompanyID implements employee.PositionRepository.
func (p *positionRepository) ListByCompanyID(ctx context.Context, companyID string) ([]employee.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, name, default_hourly_rate, created_at, updated_at
		FROM positions
		WHERE company_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []employee.Position
	for rows.Next() {
		var pos employee.Position
		err := rows.Scan(
			&pos.ID, &pos.CompanyID, &pos.Name, &pos.DefaultHourlyRate,
			&pos.CreatedAt, &pos.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, pos)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}
