package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/session"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-0123456789")

func TestIssueAndVerify(t *testing.T) {
	m := session.NewManager(testSecret, time.Hour)

	token, err := m.Issue("user-1", locale.French)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	s, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", s.UserID)
	require.Equal(t, locale.French, s.Locale)
	require.True(t, s.Valid())
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := session.NewManager(testSecret, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		s, err := m.Verify(raw)
		require.Error(t, err, raw)
		require.Nil(t, s, raw)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := session.NewManager(testSecret, time.Hour)
	other := session.NewManager([]byte("another-secret"), time.Hour)

	token, err := other.Issue("user-1", locale.English)
	require.NoError(t, err)

	s, err := m.Verify(token)
	require.Error(t, err)
	require.Nil(t, s)
}

func TestVerifyRejectsExpired(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	m := session.NewManager(testSecret, time.Hour, session.WithNowFunc(past))

	token, err := m.Issue("user-1", locale.English)
	require.NoError(t, err)

	s, err := m.Verify(token)
	require.Error(t, err)
	require.Nil(t, s)
}

func TestFromRequest(t *testing.T) {
	m := session.NewManager(testSecret, time.Hour)

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/profile", nil)
		require.Nil(t, m.FromRequest(r))
	})

	t.Run("invalid cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/profile", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
		require.Nil(t, m.FromRequest(r))
	})

	t.Run("valid cookie", func(t *testing.T) {
		token, err := m.Issue("user-1", locale.Portuguese)
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/profile", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		s := m.FromRequest(r)
		require.NotNil(t, s)
		require.Equal(t, "user-1", s.UserID)
	})
}

func TestNilSessionIsInvalid(t *testing.T) {
	var s *session.Session
	require.False(t, s.Valid())
}
