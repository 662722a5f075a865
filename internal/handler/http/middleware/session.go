package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/timesheet-portal/internal/domain/worklog"
	"github.com/cmlabs-hris/timesheet-portal/internal/handler/http/response"
)

// SessionHeader carries the page session id on every week and hierarchy call
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionKey contextKey = "worklog_session"

// SessionLookup resolves a session id into live page state
type SessionLookup interface {
	GetSession(ctx context.Context, id string) (*worklog.Session, error)
}

// RequireSession resolves the page session from the X-Session-ID header,
// falling back to the session_id query parameter.
func RequireSession(sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(SessionHeader))
			if id == "" {
				id = strings.TrimSpace(r.URL.Query().Get("session_id"))
			}
			if id == "" {
				response.HandleError(w, worklog.ErrSessionRequired)
				return
			}

			sess, err := sessions.GetSession(r.Context(), id)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireSession
func SessionFromContext(ctx context.Context) (*worklog.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*worklog.Session)
	return sess, ok && sess != nil
}
