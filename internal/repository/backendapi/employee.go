package backendapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/backend"
)

type employeeRepositoryImpl struct {
	client *backend.Client
}

func NewEmployeeRepository(client *backend.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e, err := r.client.EmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return employee.Employee{}, fmt.Errorf("employee with email %s: %w", email, employee.ErrEmployeeNotFound)
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return toEmployee(*e), nil
}

// GetProfile implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetProfile(ctx context.Context, email string) (employee.Profile, error) {
	p, err := r.client.ProfileWithHierarchy(ctx, email)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return employee.Profile{}, fmt.Errorf("profile for %s: %w", email, employee.ErrEmployeeNotFound)
		}
		return employee.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return employee.Profile{
		Employee: toEmployee(p.Employee),
		Managers: toNodes(p.ManagerHierarchy),
	}, nil
}

// GetManagerHierarchy implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetManagerHierarchy(ctx context.Context, email string) ([]*employee.Node, error) {
	hs, err := r.client.ManagerHierarchyByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, fmt.Errorf("hierarchy for %s: %w", email, employee.ErrEmployeeNotFound)
		}
		return nil, fmt.Errorf("failed to get manager hierarchy: %w", err)
	}
	return toNodes(hs), nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	es, err := r.client.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]employee.Employee, 0, len(es))
	for _, e := range es {
		out = append(out, toEmployee(e))
	}
	return out, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	e, err := r.client.CreateEmployee(ctx, backend.CreateEmployeeRequest{
		EmployeeName: req.EmployeeName,
		Email:        req.Email,
		ReportsTo:    req.ReportsTo,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return toEmployee(*e), nil
}
