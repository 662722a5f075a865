package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/admin"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the admin browse page
type AdminHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListTimesheets(w http.ResponseWriter, r *http.Request)
	TimesheetDailyLogs(w http.ResponseWriter, r *http.Request)
	EmployeeOverview(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService    admin.AdminService
	employeeService employee.EmployeeService
}

func NewAdminHandler(adminService admin.AdminService, employeeService employee.EmployeeService) AdminHandler {
	return &adminHandlerImpl{
		adminService:    adminService,
		employeeService: employeeService,
	}
}

// ListEmployees implements AdminHandler
func (h *adminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// CreateEmployee implements AdminHandler
func (h *adminHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// ListTimesheets implements AdminHandler. ?employee_name= narrows to one employee.
func (h *adminHandlerImpl) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("employee_name"))

	var (
		list []admin.TimesheetResponse
		err  error
	)
	if name != "" {
		list, err = h.adminService.TimesheetsByEmployee(r.Context(), name)
	} else {
		list, err = h.adminService.ListTimesheets(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// TimesheetDailyLogs implements AdminHandler
func (h *adminHandlerImpl) TimesheetDailyLogs(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(w, timesheet.ErrInvalidTimesheetID)
		return
	}

	detail, err := h.adminService.DailyLogsForTimesheet(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// EmployeeOverview implements AdminHandler
func (h *adminHandlerImpl) EmployeeOverview(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("employee_name"))
	if name == "" {
		response.HandleError(w, timesheet.ErrEmployeeNameRequired)
		return
	}

	overview, err := h.adminService.EmployeeOverview(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
