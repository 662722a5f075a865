package employee

import (
	"github.com/cmlabs-hris/timesheet-portal/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeName string `json:"employee_name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=100"`
	ReportsTo    *int64 `json:"reports_to,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validator.Struct(r)
}

type EmployeeResponse struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	ReportsTo    *int64 `json:"reports_to"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeName: e.Name,
		Email:        e.Email,
		ReportsTo:    e.ReportsTo,
	}
}

type TreeRowResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"employee_name"`
	Email    string `json:"email"`
	Depth    int    `json:"depth"`
	Marker   string `json:"marker"`
	Expanded bool   `json:"expanded"`
	Current  bool   `json:"current"`
}

type HierarchyResponse struct {
	Employee EmployeeResponse   `json:"employee"`
	Chain    []EmployeeResponse `json:"chain"`
	Rows     []TreeRowResponse  `json:"rows"`
}

type ToggleNodeRequest struct {
	NodeID int64 `json:"node_id" validate:"required,gt=0"`
}

func (r *ToggleNodeRequest) Validate() error {
	return validator.Struct(r)
}
