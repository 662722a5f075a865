package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, email string) (employee.Profile, error) {
	if validator.IsEmpty(email) {
		return employee.Profile{}, employee.ErrEmailRequired
	}
	email = strings.TrimSpace(email)
	if !validator.IsValidEmail(email) {
		return employee.Profile{}, employee.ErrInvalidEmail
	}

	profile, err := s.employeeRepo.GetProfile(ctx, email)
	if err == nil {
		return profile, nil
	}
	slog.Debug("Combined profile lookup failed, falling back", "email", email, "error", err)

	var (
		emp      employee.Employee
		managers []*employee.Node
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emp, err = s.employeeRepo.GetByEmail(gctx, email)
		return err
	})
	g.Go(func() error {
		nodes, err := s.employeeRepo.GetManagerHierarchy(gctx, email)
		if err != nil {
			// the page still works without a manager chain
			slog.Warn("Failed to load manager hierarchy", "email", email, "error", err)
			return nil
		}
		managers = nodes
		return nil
	})
	if err := g.Wait(); err != nil {
		return employee.Profile{}, err
	}

	return employee.Profile{Employee: emp, Managers: managers}, nil
}

// GetHierarchy implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetHierarchy(ctx context.Context, email string, expanded *employee.ExpandSet) (employee.HierarchyResponse, error) {
	profile, err := s.GetProfile(ctx, email)
	if err != nil {
		return employee.HierarchyResponse{}, err
	}
	if expanded == nil {
		expanded = &employee.ExpandSet{}
	}

	chain := profile.Chain()
	resp := employee.HierarchyResponse{
		Employee: employee.NewEmployeeResponse(profile.Employee),
		Chain:    make([]employee.EmployeeResponse, 0, len(chain)),
		Rows:     []employee.TreeRowResponse{},
	}
	for _, e := range chain {
		resp.Chain = append(resp.Chain, employee.NewEmployeeResponse(e))
	}
	for _, row := range expanded.Visible(profile.Managers) {
		resp.Rows = append(resp.Rows, employee.TreeRowResponse{
			ID:       row.ID,
			Name:     row.Name,
			Email:    row.Email,
			Depth:    row.Depth,
			Marker:   string(row.Marker),
			Expanded: row.Expanded,
			Current:  strings.EqualFold(row.Email, profile.Employee.Email),
		})
	}
	return resp, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.NewEmployeeResponse(e))
	}
	return out, nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("create employee %s: %w", req.Email, err)
	}
	slog.Info("Employee created", "employee_id", created.ID, "email", created.Email)
	return employee.NewEmployeeResponse(created), nil
}
