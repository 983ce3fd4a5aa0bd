package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/company"
	"github.com/paycheck-labs/payroll-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepository) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newCompany.Name,
	).Scan(&newCompany.ID, &newCompany.CreatedAt, &newCompany.UpdatedAt)

	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return newCompany, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var result company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Name, &result.CreatedAt, &result.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return result, nil
}
