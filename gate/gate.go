// Package gate decides whether a request may reach its target path.
// Authorize is a pure function of (session, path): it never creates or
// destroys sessions and performs no I/O, which keeps the authorization
// rules directly unit-testable.
package gate

import (
	"net/url"
	"strings"

	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/session"
)

// SignInPath is the page an unauthenticated request is sent to. The
// dispatcher applies the locale prefix.
const SignInPath = "/auth/signin"

// CallbackParam carries the originally requested path through the sign-in
// redirect so the user lands back where they intended.
const CallbackParam = "callbackUrl"

// protectedSegments are the path segments that mark a route as requiring a
// valid session. Membership is tested on the path with any locale prefix
// stripped: protection is locale-independent.
var protectedSegments = map[string]struct{}{
	"profile":    {},
	"assessment": {},
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	// RedirectTarget is set when Allowed is false. It is not locale-prefixed.
	RedirectTarget string
}

// Allow is the decision for paths that need no session or whose session
// checked out.
var Allow = Decision{Allowed: true}

// IsProtected reports whether path (locale prefix already irrelevant, it is
// stripped here) contains a protected segment.
func IsProtected(path string) bool {
	_, stripped, _ := locale.Resolve(path)
	for _, seg := range strings.Split(stripped, "/") {
		if _, ok := protectedSegments[seg]; ok {
			return true
		}
	}
	return false
}

// Authorize decides whether the request carrying s may reach path. A nil or
// otherwise invalid session counts as absent. Unprotected paths are always
// allowed, regardless of session state.
func Authorize(s *session.Session, path string) Decision {
	if !IsProtected(path) {
		return Allow
	}
	if s.Valid() {
		return Allow
	}
	q := url.Values{CallbackParam: {path}}
	return Decision{RedirectTarget: SignInPath + "?" + q.Encode()}
}
