// Package session issues and verifies the signed cookie that proves an
// authenticated identity. Sessions are stateless HS256 JWTs; the server
// never stores them, it only inspects validity.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_token"

// Session is the verified content of a session token.
type Session struct {
	UserID    string
	Locale    locale.Locale
	ExpiresAt time.Time
}

// Valid reports whether s represents a live authenticated session. A nil
// Session (absent or unverifiable token) is never valid.
func (s *Session) Valid() bool {
	if s == nil || s.UserID == "" {
		return false
	}
	return s.ExpiresAt.After(time.Now())
}

type claims struct {
	jwt.RegisteredClaims
	Locale string `json:"locale,omitempty"`
}

// Manager signs and verifies session tokens.
type Manager struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithNowFunc overrides the clock (primarily for testing).
func WithNowFunc(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = now
	}
}

// NewManager creates a Manager signing tokens with secret, valid for ttl.
func NewManager(secret []byte, ttl time.Duration, options ...ManagerOption) *Manager {
	m := &Manager{
		secret:  secret,
		ttl:     ttl,
		nowFunc: time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new session token for userID carrying the user's locale
// preference.
func (m *Manager) Issue(userID string, loc locale.Locale) (string, error) {
	now := m.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Locale: string(loc),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", apperrors.Wrapf(err, "session sign")
	}
	return signed, nil
}

// Verify parses and validates a raw token. Any token that fails signature,
// structure, or expiry checks yields an error; callers treat that as an
// absent session.
func (m *Manager) Verify(raw string) (*Session, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.Wrapf(err, "session parse")
	}
	if !token.Valid || c.Subject == "" || c.ExpiresAt == nil {
		return nil, apperrors.ErrSessionInvalid
	}
	return &Session{
		UserID:    c.Subject,
		Locale:    locale.Parse(c.Locale),
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// FromRequest extracts the session from the request cookie. It returns nil
// when the cookie is missing or the token does not verify.
func (m *Manager) FromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	s, err := m.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	return s
}
