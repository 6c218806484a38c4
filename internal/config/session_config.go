package config

import "time"

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() []byte {
	return []byte(GetEnv("SESSION_SECRET", "dev-only-session-secret"))
}

// GetSessionTTL parses SESSION_TTL as a Go duration, defaulting to 30 days.
func (Session) GetSessionTTL() time.Duration {
	ttl, err := time.ParseDuration(GetEnv("SESSION_TTL", "720h"))
	if err != nil {
		return 720 * time.Hour
	}
	return ttl
}

func (s Session) GetSecureCookies() bool {
	return EnvVars{}.GetEnv() != "DEV"
}
