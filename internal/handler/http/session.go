package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/notification"
	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// SessionHandler opens and closes page sessions and streams their toasts
type SessionHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	Events(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	worklogService worklog.WorklogService
	notifService   notification.Service
	keepalive      time.Duration
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(worklogService worklog.WorklogService, notifService notification.Service) SessionHandler {
	return &sessionHandlerImpl{
		worklogService: worklogService,
		notifService:   notifService,
		keepalive:      30 * time.Second,
	}
}

// Start implements SessionHandler. An empty body falls back to the default employee.
func (h *sessionHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req worklog.StartSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.worklogService.StartSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Session started", resp)
}

// End implements SessionHandler
func (h *sessionHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.worklogService.EndSession(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	h.notifService.Drop(id)

	response.SuccessWithMessage(w, "Session ended", nil)
}

// Events streams toasts for one page session over SSE
func (h *sessionHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.worklogService.GetSession(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.HandleError(w, notification.ErrStreamingUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	toasts, cleanup := h.notifService.Subscribe(r.Context(), id)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"session_id\":%q}\n\n", id)
	flusher.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	for {
		select {
		case toast, ok := <-toasts:
			if !ok {
				return
			}
			data, err := json.Marshal(toast)
			if err != nil {
				slog.Warn("Failed to encode toast", "session_id", id, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: toast\ndata: %s\n\n", data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
