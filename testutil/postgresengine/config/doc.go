// Package config provides PostgreSQL database configuration for storage testing.
//
// This package contains factory functions for creating database connections
// with the supported PostgreSQL adapters (pgx.Pool, sql.DB, sqlx.DB).
// The DSN is read from PRICING_POSTGRES_DSN; an optional read replica is read
// from PRICING_POSTGRES_REPLICA_DSN and falls back to the primary DSN.
package config
