package server

import (
	"context"
	"net/http"

	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyLocale stores the locale resolved by the dispatcher
	ContextKeyLocale ContextKey = "locale"
	// ContextKeySession stores the verified session, when one is present
	ContextKeySession ContextKey = "session"
)

// localeFromContext returns the dispatcher-resolved locale, or Default for
// requests that bypassed the dispatcher (API routes).
func localeFromContext(ctx context.Context) locale.Locale {
	if loc, ok := ctx.Value(ContextKeyLocale).(locale.Locale); ok {
		return loc
	}
	return locale.Default
}

// RequireSession is middleware for API routes that need an authenticated
// caller. API clients get a JSON 401, never a redirect.
func (s *Server) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.sessions.FromRequest(r)
		if !sess.Valid() {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeySession, sess)
		next(w, r.WithContext(ctx))
	}
}

// sessionFromContext returns the session stored by the dispatcher or
// RequireSession, or nil.
func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ContextKeySession).(*session.Session)
	return sess
}
