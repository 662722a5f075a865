package employee

import (
	"context"
)

// EmployeeService backs the profile header and the hierarchy viewer
type EmployeeService interface {
	// GetProfile loads the employee and manager chain, falling back to two
	// separate lookups when the combined endpoint is unavailable
	GetProfile(ctx context.Context, email string) (Profile, error)

	// GetHierarchy renders the manager tree for a viewer's expand set
	GetHierarchy(ctx context.Context, email string, expanded *ExpandSet) (HierarchyResponse, error)

	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
}
