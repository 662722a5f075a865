package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// WorklogHandler serves the employee week page. Every route except
// ChangeHistory runs behind middleware.RequireSession.
type WorklogHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	LoadWeek(w http.ResponseWriter, r *http.Request)
	OpenWeek(w http.ResponseWriter, r *http.Request)
	SetTime(w http.ResponseWriter, r *http.Request)
	FocusTime(w http.ResponseWriter, r *http.Request)
	SetDescription(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	SaveWeek(w http.ResponseWriter, r *http.Request)
	ChangeHistory(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.WorklogService
}

func NewWorklogHandler(worklogService worklog.WorklogService) WorklogHandler {
	return &worklogHandlerImpl{worklogService: worklogService}
}

// sessionOrFail pulls the session placed by RequireSession
func sessionOrFail(w http.ResponseWriter, r *http.Request) (*worklog.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.HandleError(w, worklog.ErrSessionRequired)
		return nil, false
	}
	return sess, true
}

// GetWeek implements WorklogHandler
func (h *worklogHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}
	response.Success(w, h.worklogService.View(sess))
}

// LoadWeek implements WorklogHandler
func (h *worklogHandlerImpl) LoadWeek(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req worklog.WeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	week, err := h.worklogService.LoadWeek(r.Context(), sess, req.WeekStarting)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// OpenWeek implements WorklogHandler
func (h *worklogHandlerImpl) OpenWeek(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req worklog.WeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	week, err := h.worklogService.OpenWeek(r.Context(), sess, req.WeekStarting)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// SetTime implements WorklogHandler
func (h *worklogHandlerImpl) SetTime(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req worklog.SetTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.worklogService.SetTime(r.Context(), sess, chi.URLParam(r, "date"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// FocusTime implements WorklogHandler
func (h *worklogHandlerImpl) FocusTime(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req worklog.FocusTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.worklogService.FocusTime(r.Context(), sess, chi.URLParam(r, "date"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetDescription implements WorklogHandler
func (h *worklogHandlerImpl) SetDescription(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req worklog.SetDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.worklogService.SetDescription(r.Context(), sess, chi.URLParam(r, "date"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SaveDay implements WorklogHandler
func (h *worklogHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.worklogService.SaveDay(r.Context(), sess, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if resp.Created {
		response.Created(w, "Log saved successfully!", resp)
		return
	}
	response.Success(w, resp)
}

// SaveWeek implements WorklogHandler
func (h *worklogHandlerImpl) SaveWeek(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	resp, err := h.worklogService.SaveWeek(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ChangeHistory implements WorklogHandler
func (h *worklogHandlerImpl) ChangeHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(w, worklog.ErrInvalidLogID)
		return
	}

	items, err := h.worklogService.ChangeHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
