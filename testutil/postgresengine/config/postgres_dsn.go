package config

import "os"

const (
	envTestDSN        = "PRICING_POSTGRES_DSN"
	envTestReplicaDSN = "PRICING_POSTGRES_REPLICA_DSN"
)

// PostgresTestDSN returns the DSN for the test database, or an empty string if none is configured.
func PostgresTestDSN() string {
	return os.Getenv(envTestDSN)
}

// PostgresReplicaDSN returns the DSN for the replica test database.
func PostgresReplicaDSN() string {
	if dsn := os.Getenv(envTestReplicaDSN); dsn != "" {
		return dsn
	}

	return PostgresTestDSN()
}

// HasTestDSN reports whether a test database is configured.
func HasTestDSN() bool {
	return PostgresTestDSN() != ""
}
