package gate_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/jobatlas/jobatlas/gate"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/session"
	"github.com/stretchr/testify/require"
)

func liveSession() *session.Session {
	return &session.Session{
		UserID:    "user-1",
		Locale:    locale.English,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// requireDenyTarget asserts that d denies with a sign-in target whose
// callbackUrl parameter round-trips to wantCallback.
func requireDenyTarget(t *testing.T, d gate.Decision, wantCallback string) {
	t.Helper()
	require.False(t, d.Allowed)

	target, err := url.Parse(d.RedirectTarget)
	require.NoError(t, err)
	require.Equal(t, gate.SignInPath, target.Path)
	require.Equal(t, wantCallback, target.Query().Get(gate.CallbackParam))
}

func TestIsProtected(t *testing.T) {
	t.Run("protected segments", func(t *testing.T) {
		for _, path := range []string{
			"/profile",
			"/profile/settings",
			"/assessment",
			"/en/profile",
			"/fr/assessment/intro",
		} {
			require.True(t, gate.IsProtected(path), path)
		}
	})

	t.Run("open paths", func(t *testing.T) {
		for _, path := range []string{
			"/",
			"/en",
			"/auth/signin",
			"/pt/auth/signup",
			"/jobs/1111",
			"/profiles-of-courage", // segment must match exactly
		} {
			require.False(t, gate.IsProtected(path), path)
		}
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("open path allows regardless of session", func(t *testing.T) {
		require.True(t, gate.Authorize(nil, "/auth/signin").Allowed)
		require.True(t, gate.Authorize(liveSession(), "/auth/signin").Allowed)
	})

	t.Run("protected path with live session allows", func(t *testing.T) {
		require.True(t, gate.Authorize(liveSession(), "/en/profile").Allowed)
	})

	t.Run("protected path without session denies", func(t *testing.T) {
		requireDenyTarget(t, gate.Authorize(nil, "/profile"), "/profile")
	})

	t.Run("expired session counts as absent", func(t *testing.T) {
		expired := liveSession()
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		requireDenyTarget(t, gate.Authorize(expired, "/fr/assessment"), "/fr/assessment")
	})

	t.Run("redirect preserves the original path shape", func(t *testing.T) {
		requireDenyTarget(t, gate.Authorize(nil, "/pt/profile/settings"), "/pt/profile/settings")
	})

	t.Run("query metacharacters in the path stay inside callbackUrl", func(t *testing.T) {
		// A request for /profile/q%26a%3Fx arrives here already decoded.
		requireDenyTarget(t, gate.Authorize(nil, "/profile/q&a?x"), "/profile/q&a?x")
	})
}
