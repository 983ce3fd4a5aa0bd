package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	employee.PositionRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	positionRepo employee.PositionRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		PositionRepository: positionRepo,
	}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		PositionID:   e.PositionID,
		PositionName: e.PositionName,
		FullName:     e.FullName,
		Email:        e.Email,
		HourlyRate:   e.HourlyRate,
		OvertimeRate: e.OvertimeRate,
		IsActive:     e.IsActive,
		HireDate:     e.HireDate.Format("2006-01-02"),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PositionID != nil {
		if _, err := s.PositionRepository.GetByID(ctx, *req.PositionID, companyID); err != nil {
			if errors.Is(err, employee.ErrPositionNotFound) {
				return employee.EmployeeResponse{}, employee.ErrPositionNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check position: %w", err)
		}
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", *req.HireDate)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		CompanyID:    companyID,
		PositionID:   req.PositionID,
		FullName:     req.FullName,
		Email:        req.Email,
		HourlyRate:   req.HourlyRate,
		OvertimeRate: req.OvertimeRate,
		IsActive:     true,
		HireDate:     hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.PositionID != nil {
		if _, err := s.PositionRepository.GetByID(ctx, *req.PositionID, companyID); err != nil {
			if errors.Is(err, employee.ErrPositionNotFound) {
				return employee.EmployeeResponse{}, employee.ErrPositionNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check position: %w", err)
		}
	}

	if err := s.EmployeeRepository.Update(ctx, companyID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.EmployeeRepository.Deactivate(ctx, id, companyID)
}

func toPositionResponse(p employee.Position) employee.PositionResponse {
	return employee.PositionResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		Name:              p.Name,
		DefaultHourlyRate: p.DefaultHourlyRate,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}

// CreatePosition implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreatePosition(ctx context.Context, req employee.CreatePositionRequest) (employee.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PositionResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return employee.PositionResponse{}, err
	}

	created, err := s.PositionRepository.Create(ctx, employee.Position{
		CompanyID:         companyID,
		Name:              req.Name,
		DefaultHourlyRate: req.DefaultHourlyRate,
	})
	if err != nil {
		return employee.PositionResponse{}, err
	}

	return toPositionResponse(created), nil
}

// ListPositions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListPositions(ctx context.Context) ([]employee.PositionResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := s.PositionRepository.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, toPositionResponse(p))
	}

	return responses, nil
}
