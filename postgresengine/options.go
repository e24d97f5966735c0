package postgresengine

import (
	"errors"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

var ErrEmptyTableName = errors.New("empty table name supplied")
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// Option defines a functional option for configuring CartDatabase and BookCatalog.
type Option func(*engine) error

// WithCartTableName sets the table name used by CartDatabase.
func WithCartTableName(tableName string) Option {
	return func(e *engine) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		e.cartTableName = tableName

		return nil
	}
}

// WithBooksTableName sets the table name used by BookCatalog for the catalog.
func WithBooksTableName(tableName string) Option {
	return func(e *engine) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		e.booksTableName = tableName

		return nil
	}
}

// WithPurchasesTableName sets the table name used by BookCatalog to record purchases.
func WithPurchasesTableName(tableName string) Option {
	return func(e *engine) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		e.purchasesTableName = tableName

		return nil
	}
}

// WithLogger sets the logger.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: purchases recorded (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: failures that cause an operation to fail.
func WithLogger(logger pricing.Logger) Option {
	return func(e *engine) error {
		e.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector, which receives statement durations and database errors.
func WithMetrics(collector pricing.MetricsCollector) Option {
	return func(e *engine) error {
		e.metricsCollector = collector
		return nil
	}
}
