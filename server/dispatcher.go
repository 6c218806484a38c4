package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jobatlas/jobatlas/gate"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/session"
)

// ServeHTTP runs every request through the locale/authorization dispatch
// rules before the mux sees it. Each rule is terminal: the first one that
// applies decides the response.
//
//  1. Excluded paths (API, static assets, health) bypass localization and
//     gating entirely.
//  2. The locale is resolved from the path prefix.
//  3. Protected paths without a live session are sent to the sign-in page,
//     carrying the original path so sign-in can return the user there.
//  4. Localizable paths without a locale prefix are redirected to their
//     locale-qualified form.
//  5. Everything else is dispatched with the prefix stripped and the locale
//     and session attached to the request context.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if isExcludedPath(r.URL.Path) {
		s.mux.ServeHTTP(w, r)
		return
	}

	loc, stripped, hadPrefix := locale.Resolve(r.URL.Path)
	sess := s.sessions.FromRequest(r)

	if d := gate.Authorize(sess, r.URL.Path); !d.Allowed {
		http.Redirect(w, r, locale.Prefix(loc, d.RedirectTarget), http.StatusSeeOther)
		return
	}

	if !hadPrefix {
		target := locale.Prefix(s.preferredLocale(r, sess), r.URL.Path)
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		return
	}

	ctx := context.WithValue(r.Context(), ContextKeyLocale, loc)
	if sess != nil {
		ctx = context.WithValue(ctx, ContextKeySession, sess)
	}
	r2 := r.Clone(ctx)
	r2.URL.Path = stripped
	s.mux.ServeHTTP(w, r2)
}

// isExcludedPath reports whether path is outside the localized page tree:
// API endpoints, anything with a dotted segment (static assets), and the
// health check.
func isExcludedPath(path string) bool {
	if strings.HasPrefix(path, "/api/") || path == RouteHealth {
		return true
	}
	for _, seg := range strings.Split(path, "/") {
		if strings.Contains(seg, ".") {
			return true
		}
	}
	return false
}

// preferredLocale picks the locale for a canonicalising redirect: the
// signed-in user's preference first, then the Accept-Language header.
func (s *Server) preferredLocale(r *http.Request, sess *session.Session) locale.Locale {
	if sess.Valid() && sess.Locale != "" {
		return sess.Locale
	}
	return locale.FromAcceptLanguage(r.Header.Get("Accept-Language"))
}
