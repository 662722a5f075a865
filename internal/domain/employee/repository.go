package employee

import "context"

// EmployeeRepository reads and writes employees held by the timesheet backend
type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetProfile returns the employee and their manager chain in one call
	GetProfile(ctx context.Context, email string) (Profile, error)

	// GetManagerHierarchy returns managers nearest first, each possibly with subordinates
	GetManagerHierarchy(ctx context.Context, email string) ([]*Node, error)

	List(ctx context.Context) ([]Employee, error)

	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
}
