package config

type Database struct{}

var _ DatabaseConfig = Database{}

// GetDatabaseDSN returns the Postgres connection string. An empty value
// means run against the in-memory stores.
func (Database) GetDatabaseDSN() string {
	return GetEnv("DATABASE_URL", "")
}
