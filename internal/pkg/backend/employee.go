package backend

import (
	"context"
	"net/url"
)

// Dashboard fetches employee, manager chain, timesheets and logs for a week.
// weekStarting must be MM/DD/YYYY.
func (c *Client) Dashboard(ctx context.Context, email, weekStarting string) (*Dashboard, error) {
	var out Dashboard
	q := url.Values{"email": {email}, "week_starting": {weekStarting}}
	if err := c.get(ctx, "/api/employees/dashboard", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployeeByEmail looks an employee up by email
func (c *Client) EmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	var out Employee
	if err := c.get(ctx, "/api/employees/by-email", url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ManagerHierarchyByEmail returns the manager chain, nearest manager first
func (c *Client) ManagerHierarchyByEmail(ctx context.Context, email string) ([]HierarchyNode, error) {
	var out []HierarchyNode
	if err := c.get(ctx, "/api/employees/manager-hierarchy-by-email", url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfileWithHierarchy returns the employee and manager chain in one call
func (c *Client) ProfileWithHierarchy(ctx context.Context, email string) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/api/employees/profile-with-hierarchy", url.Values{"email": {email}}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEmployees returns every employee
func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.get(ctx, "/api/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee registers a new employee
func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.post(ctx, "/api/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
