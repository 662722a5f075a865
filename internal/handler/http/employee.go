package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/response"
)

// EmployeeHandler serves the manager hierarchy viewer
type EmployeeHandler interface {
	Hierarchy(w http.ResponseWriter, r *http.Request)
	ToggleNode(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// Hierarchy implements EmployeeHandler. The expand state lives on the page
// session; ?email= views another employee's tree with the same state.
func (h *employeeHandlerImpl) Hierarchy(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		email = sess.Employee.Email
	}

	resp, err := h.employeeService.GetHierarchy(r.Context(), email, &sess.Expanded)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ToggleNode implements EmployeeHandler
func (h *employeeHandlerImpl) ToggleNode(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req employee.ToggleNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.Expanded.Toggle(req.NodeID)

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		email = sess.Employee.Email
	}

	resp, err := h.employeeService.GetHierarchy(r.Context(), email, &sess.Expanded)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
