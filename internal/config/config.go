package config

import (
	"time"

	"github.com/jobatlas/jobatlas/avatar"
)

type Config interface {
	EnvConfig
	DatabaseConfig
	SessionConfig
	StorageConfig
	OidcConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type DatabaseConfig interface {
	GetDatabaseDSN() string
}

type SessionConfig interface {
	GetSessionSecret() []byte
	GetSessionTTL() time.Duration
	GetSecureCookies() bool
}

type StorageConfig interface {
	GetStorage() avatar.Storage
}

type OidcConfig interface {
	GetGoogleClientID() string
	GetGoogleClientSecret() string
	GetOidcIssuer() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Database
	Session
	Storage
	Oidc
	Cors
}

func New() Config {
	return mainConfig{}
}
